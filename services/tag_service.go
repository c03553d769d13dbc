package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

var ErrTagNotFound = errors.New("tag not found")

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// Popular возвращает limit тегов с наибольшим числом постов
func (s *TagService) Popular(ctx context.Context, limit int) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Scopes(PopularTags).Limit(limit).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	return tags, nil
}

// All возвращает все теги по алфавиту
func (s *TagService) All(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.WithContext(ctx).Order(models.TagDefaultOrder).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("all tags: %w", err)
	}
	return tags, nil
}

// ByTitle ищет тег по заголовку без учёта регистра (теги хранятся в нижнем регистре)
func (s *TagService) ByTitle(ctx context.Context, title string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.WithContext(ctx).
		Where("title = ?", models.NormalizeTagTitle(title)).
		Take(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", title, err)
	}
	return &tag, nil
}
