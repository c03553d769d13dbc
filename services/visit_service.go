package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

const (
	visitKeyPrefix = "visits:"
	visitDayLayout = "2006-01-02"
	visitKeyTTL    = 7 * 24 * time.Hour
)

// VisitCounter считает заходы на страницы в redis: ключ visits:<page>:<YYYY-MM-DD>.
// Flush переносит накопленные значения в таблицу page_visits.
type VisitCounter struct {
	rdb *redis.Client
	now func() time.Time
}

func NewVisitCounter(rdb *redis.Client) *VisitCounter {
	return &VisitCounter{rdb: rdb, now: time.Now}
}

func visitKey(page string, day time.Time) string {
	return visitKeyPrefix + page + ":" + day.Format(visitDayLayout)
}

func parseVisitKey(key string) (page, day string, ok bool) {
	rest := strings.TrimPrefix(key, visitKeyPrefix)
	i := strings.LastIndex(rest, ":")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	page, day = rest[:i], rest[i+1:]
	if _, err := time.Parse(visitDayLayout, day); err != nil {
		return "", "", false
	}
	return page, day, true
}

// Track увеличивает счётчик страницы за текущий день. На nil-счётчике ничего не делает.
func (vc *VisitCounter) Track(ctx context.Context, page string) error {
	if vc == nil || vc.rdb == nil {
		return nil
	}
	key := visitKey(page, vc.now())
	_, err := vc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, visitKeyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("track visit %s: %w", page, err)
	}
	return nil
}

// Flush забирает счётчики из redis (обнуляя их) и прибавляет к page_visits.
// Возвращает число обновлённых записей.
func (vc *VisitCounter) Flush(ctx context.Context, db *gorm.DB) (int, error) {
	if vc == nil || vc.rdb == nil {
		return 0, nil
	}

	var keys []string
	iter := vc.rdb.Scan(ctx, 0, visitKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan visit keys: %w", err)
	}

	today := vc.now().Format(visitDayLayout)
	flushed := 0
	for _, key := range keys {
		page, day, ok := parseVisitKey(key)
		if !ok {
			continue
		}
		n, err := vc.take(ctx, key, day != today)
		if err != nil {
			return flushed, err
		}
		if n == 0 {
			continue
		}
		if err := addPageVisits(db.WithContext(ctx), page, day, n); err != nil {
			vc.restore(ctx, key, n)
			return flushed, err
		}
		flushed++
	}
	return flushed, nil
}

// take атомарно читает и обнуляет счётчик. Ключи прошедших дней удаляются.
func (vc *VisitCounter) take(ctx context.Context, key string, finished bool) (int64, error) {
	var get *redis.StringCmd
	_, err := vc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.GetSet(ctx, key, 0)
		if finished {
			pipe.Del(ctx, key)
		} else {
			pipe.Expire(ctx, key, visitKeyTTL)
		}
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("take %s: %w", key, err)
	}
	n, err := get.Int64()
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

// restore возвращает снятое значение, чтобы не потерять заходы.
// Ключ прошедшего дня take уже удалил, поэтому TTL ставится заново.
func (vc *VisitCounter) restore(ctx context.Context, key string, n int64) {
	_, err := vc.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrBy(ctx, key, n)
		pipe.Expire(ctx, key, visitKeyTTL)
		return nil
	})
	if err != nil {
		utils.LogError(fmt.Errorf("restore %d visits to %s: %w", n, key, err), "[VISITS CRON] flush")
	}
}

func addPageVisits(db *gorm.DB, page, day string, n int64) error {
	var visit models.PageVisit
	result := db.Where("page = ? AND day = ?", page, day).First(&visit)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		visit = models.PageVisit{Page: page, Day: day, Count: n}
		if err := db.Create(&visit).Error; err != nil {
			return fmt.Errorf("create page visit %s/%s: %w", page, day, err)
		}
		return nil
	} else if result.Error != nil {
		return fmt.Errorf("find page visit %s/%s: %w", page, day, result.Error)
	}

	visit.Count += n
	if err := db.Save(&visit).Error; err != nil {
		return fmt.Errorf("update page visit %s/%s: %w", page, day, err)
	}
	return nil
}

// Visits возвращает сохранённые заходы на страницу по дням, новые первыми
func Visits(ctx context.Context, db *gorm.DB, page string) ([]models.PageVisit, error) {
	var visits []models.PageVisit
	err := db.WithContext(ctx).Where("page = ?", page).Order("day DESC").Find(&visits).Error
	return visits, err
}
