package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

var (
	ErrPostWithoutAuthor = errors.New("post author is required")
	ErrAuthorNotStaff    = errors.New("post author must be a staff user")
)

// Post пост блога. Порядок по умолчанию: сначала свежие.
type Post struct {
	gorm.Model
	Title       string    `gorm:"type:VARCHAR(200);not null"`
	Text        string    `gorm:"type:TEXT;not null"`
	Slug        string    `gorm:"type:VARCHAR(200);uniqueIndex;not null"`
	Image       string    `gorm:"type:VARCHAR(255)"`
	PublishedAt time.Time `gorm:"not null;index"`

	AuthorID uint `gorm:"not null;index"`
	Author   User `gorm:"foreignKey:AuthorID"`

	Likes    []User    `gorm:"many2many:post_likes;"`
	Tags     []Tag     `gorm:"many2many:post_tags;"`
	Comments []Comment `gorm:"foreignKey:PostID"`

	// Вычисляемые поля, заполняются запросами из services
	LikesCount    int64 `gorm:"->;-:migration"`
	CommentsCount int64 `gorm:"-"`
}

// BeforeCreate проверяет автора и заполняет пустые slug и дату публикации.
// Автор проверяется только при создании, как ограничение выбора в форме.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if err := p.checkAuthor(tx); err != nil {
		return err
	}
	if p.Slug == "" {
		slug, err := generateUniqueSlug(tx, utils.Slugify(p.Title))
		if err != nil {
			return fmt.Errorf("generate slug: %w", err)
		}
		p.Slug = slug
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now()
	}
	return nil
}

func (p *Post) checkAuthor(tx *gorm.DB) error {
	authorID := p.AuthorID
	if authorID == 0 {
		authorID = p.Author.ID
	}
	if authorID == 0 {
		if p.Author.Username != "" && p.Author.IsStaff {
			// новый автор будет создан вместе с постом
			return nil
		}
		return ErrPostWithoutAuthor
	}
	var count int64
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(&User{}).
		Where("id = ? AND is_staff = ?", authorID, true).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrAuthorNotStaff
	}
	return nil
}

// generateUniqueSlug подбирает свободный slug: base, base-2, base-3, ...
// Удалённые (soft delete) посты тоже занимают slug из-за уникального индекса.
func generateUniqueSlug(tx *gorm.DB, base string) (string, error) {
	slug := base
	i := 1
	for {
		var count int64
		err := tx.Session(&gorm.Session{NewDB: true}).
			Unscoped().
			Model(&Post{}).
			Where("slug = ?", slug).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		i++
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
