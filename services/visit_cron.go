package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

// StartVisitFlushCron по расписанию schedule переносит счётчики посещений из redis в базу.
// Вызывающий останавливает планировщик через Stop().
func StartVisitFlushCron(db *gorm.DB, counter *VisitCounter, schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { flushVisits(db, counter) }); err != nil {
		return nil, fmt.Errorf("invalid visit flush schedule %q: %w", schedule, err)
	}
	c.Start()
	log.Printf("[VISITS CRON] Scheduler started (%s)", schedule)
	return c, nil
}

func flushVisits(db *gorm.DB, counter *VisitCounter) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := counter.Flush(ctx, db)
	if err != nil {
		utils.LogError(err, "[VISITS CRON] flush")
		return
	}
	if n > 0 {
		log.Printf("[VISITS CRON] Flushed %d counters", n)
	}
}
