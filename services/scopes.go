package services

import "gorm.io/gorm"

// WithLikesCount добавляет к постам колонку likes_count (число уникальных лайков).
// Лайки удалённых пользователей не считаются.
func WithLikesCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, COUNT(DISTINCT likers.id) AS likes_count").
		Joins("LEFT JOIN post_likes ON post_likes.post_id = posts.id").
		Joins("LEFT JOIN users AS likers ON likers.id = post_likes.user_id AND likers.deleted_at IS NULL").
		Group("posts.id")
}

// PopularPosts сортирует посты по числу лайков. При равенстве порядок остаётся за базой.
func PopularPosts(db *gorm.DB) *gorm.DB {
	return WithLikesCount(db).Order("likes_count DESC")
}

// PopularTags добавляет к тегам posts_count и сортирует по нему. Удалённые посты не считаются.
func PopularTags(db *gorm.DB) *gorm.DB {
	return db.Select("tags.*, COUNT(posts.id) AS posts_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Joins("LEFT JOIN posts ON posts.id = post_tags.post_id AND posts.deleted_at IS NULL").
		Group("tags.id").
		Order("posts_count DESC")
}
