package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Popular возвращает limit самых залайканных постов с авторами и тегами
func (s *PostService) Popular(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Scopes(PopularPosts).
		Preload("Author").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("popular posts: %w", err)
	}
	if err := s.AttachTags(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Fresh возвращает limit последних постов с числом комментариев
func (s *PostService) Fresh(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Scopes(WithLikesCount).
		Preload("Author").
		Order("posts.published_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fresh posts: %w", err)
	}
	return posts, s.attachAll(ctx, posts)
}

// ByTag возвращает limit последних постов с тегом tagID с числом комментариев
func (s *PostService) ByTag(ctx context.Context, tagID uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Scopes(WithLikesCount).
		Joins("JOIN post_tags AS filter_tags ON filter_tags.post_id = posts.id AND filter_tags.tag_id = ?", tagID).
		Preload("Author").
		Order("posts.published_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("posts by tag %d: %w", tagID, err)
	}
	return posts, s.attachAll(ctx, posts)
}

// BySlug находит пост с числом лайков, автором и тегами. ErrPostNotFound если поста нет.
func (s *PostService) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Scopes(WithLikesCount).
		Preload("Author").
		Where("posts.slug = ?", slug).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("post %q: %w", slug, err)
	}

	posts := []models.Post{post}
	if err := s.AttachTags(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// Comments возвращает комментарии поста с авторами, от старых к новым
func (s *PostService) Comments(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order(models.CommentDefaultOrder).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (s *PostService) attachAll(ctx context.Context, posts []models.Post) error {
	if err := s.AttachTags(ctx, posts); err != nil {
		return err
	}
	return s.AttachCommentsCount(ctx, posts)
}

// AttachCommentsCount одним GROUP BY запросом проставляет CommentsCount всем постам
func (s *PostService) AttachCommentsCount(ctx context.Context, posts []models.Post) error {
	ids := postIDs(posts)
	if len(ids) == 0 {
		return nil
	}

	var rows []struct {
		PostID        uint
		CommentsCount int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS comments_count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("count comments: %w", err)
	}

	idToComments := make(map[uint]int64, len(rows))
	for _, r := range rows {
		idToComments[r.PostID] = r.CommentsCount
	}
	for i := range posts {
		posts[i].CommentsCount = idToComments[posts[i].ID]
	}
	return nil
}

// AttachTags загружает теги постов с PostsCount. Теги каждого поста идут по популярности.
func (s *PostService) AttachTags(ctx context.Context, posts []models.Post) error {
	ids := postIDs(posts)
	if len(ids) == 0 {
		return nil
	}

	var links []struct {
		PostID uint
		TagID  uint
	}
	err := s.db.WithContext(ctx).
		Table("post_tags").
		Select("post_id, tag_id").
		Where("post_id IN ?", ids).
		Scan(&links).Error
	if err != nil {
		return fmt.Errorf("load post tags: %w", err)
	}

	linked := make(map[uint]map[uint]bool, len(posts))
	var tagIDs []uint
	seen := make(map[uint]bool)
	for _, l := range links {
		if linked[l.PostID] == nil {
			linked[l.PostID] = make(map[uint]bool)
		}
		linked[l.PostID][l.TagID] = true
		if !seen[l.TagID] {
			seen[l.TagID] = true
			tagIDs = append(tagIDs, l.TagID)
		}
	}

	var tags []models.Tag
	if len(tagIDs) > 0 {
		err = s.db.WithContext(ctx).
			Scopes(PopularTags).
			Where("tags.id IN ?", tagIDs).
			Find(&tags).Error
		if err != nil {
			return fmt.Errorf("load popular tags: %w", err)
		}
	}

	for i := range posts {
		postTags := []models.Tag{}
		for _, tag := range tags {
			if linked[posts[i].ID][tag.ID] {
				postTags = append(postTags, tag)
			}
		}
		posts[i].Tags = postTags
	}
	return nil
}

func postIDs(posts []models.Post) []uint {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

// AddTags привязывает к посту теги по заголовкам, создавая недостающие.
// Заголовки нормализуются хуком модели, повторная привязка дублей не создаёт.
func (s *PostService) AddTags(ctx context.Context, post *models.Post, titles ...string) error {
	if len(titles) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]models.Tag, 0, len(titles))
		for _, title := range titles {
			tag := models.Tag{Title: title}
			if err := tx.Where("title = ?", models.NormalizeTagTitle(title)).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("tag %q: %w", title, err)
			}
			tags = append(tags, tag)
		}
		return tx.Model(post).Association("Tags").Append(tags)
	})
}
