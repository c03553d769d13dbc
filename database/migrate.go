package database

import (
	"github.com/KozhevnikovM/devman-sensive-blog/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
		&models.Comment{},
		&models.PageVisit{},
	); err != nil {
		return err
	}

	// Индексы под запросы популярности: подсчёт лайков и тегов по post_id / tag_id
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_post_likes_post_id ON post_likes(post_id)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_post_tags_tag_id ON post_tags(tag_id)`).Error; err != nil {
		return err
	}

	return nil
}
