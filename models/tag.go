package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

const TagTitleMaxLen = 20

const TagDefaultOrder = "title ASC"

var (
	ErrEmptyTagTitle   = errors.New("tag title must not be empty")
	ErrTagTitleTooLong = errors.New("tag title must be at most 20 characters")
)

type Tag struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"type:VARCHAR(20);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []Post `gorm:"many2many:post_tags;"`

	PostsCount int64 `gorm:"->;-:migration"`
}

// NormalizeTagTitle приводит заголовок тега к хранимому виду
func NormalizeTagTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	t.Title = NormalizeTagTitle(t.Title)
	if t.Title == "" {
		return ErrEmptyTagTitle
	}
	if utf8.RuneCountInString(t.Title) > TagTitleMaxLen {
		return ErrTagTitleTooLong
	}
	return nil
}
