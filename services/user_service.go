package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

// UserService ставит лайки. Повторный лайк не создаёт дубля:
// у post_likes составной первичный ключ (post_id, user_id).
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Like(ctx context.Context, post *models.Post, users ...models.User) error {
	if len(users) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Model(post).Association("Likes").Append(users)
}
