package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCommentWithoutPost   = errors.New("comment must belong to a post")
	ErrCommentWithoutAuthor = errors.New("comment must have an author")
)

// Comment комментарий к посту. Порядок по умолчанию: сначала старые.
type Comment struct {
	gorm.Model
	PostID uint `gorm:"not null;index"`
	Post   Post `gorm:"foreignKey:PostID"`

	AuthorID uint `gorm:"not null;index"`
	Author   User `gorm:"foreignKey:AuthorID"`

	Text        string    `gorm:"type:TEXT;not null"`
	PublishedAt time.Time `gorm:"not null;index"`
}

const CommentDefaultOrder = "published_at ASC"

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.PostID == 0 && c.Post.ID == 0 {
		return ErrCommentWithoutPost
	}
	if c.AuthorID == 0 && c.Author.ID == 0 && c.Author.Username == "" {
		return ErrCommentWithoutAuthor
	}
	if c.PublishedAt.IsZero() {
		c.PublishedAt = time.Now()
	}
	return nil
}
