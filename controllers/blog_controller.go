package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
	"github.com/KozhevnikovM/devman-sensive-blog/services"
	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

const (
	PopularPostsLimit = 5
	FreshPostsLimit   = 5
	PopularTagsLimit  = 5
	TagPostsLimit     = 20

	ContactsPage = "contacts"

	teaserLength = 200
)

type BlogController struct {
	db       *gorm.DB
	posts    *services.PostService
	tags     *services.TagService
	mediaURL string
}

func NewBlogController(db *gorm.DB, mediaURL string) *BlogController {
	return &BlogController{
		db:       db,
		posts:    services.NewPostService(db),
		tags:     services.NewTagService(db),
		mediaURL: mediaURL,
	}
}

// GET /
func (bc *BlogController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	popularPosts, err := bc.posts.Popular(ctx, PopularPostsLimit)
	if err != nil {
		ServerError(c, err, "index: popular posts")
		return
	}
	freshPosts, err := bc.posts.Fresh(ctx, FreshPostsLimit)
	if err != nil {
		ServerError(c, err, "index: fresh posts")
		return
	}
	popularTags, err := bc.tags.Popular(ctx, PopularTagsLimit)
	if err != nil {
		ServerError(c, err, "index: popular tags")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"most_popular_posts": bc.serializePosts(popularPosts, false),
		"page_posts":         bc.serializePosts(freshPosts, true),
		"popular_tags":       serializeTags(popularTags),
	})
}

// GET /posts/:slug/
func (bc *BlogController) PostDetail(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := bc.posts.BySlug(ctx, c.Param("slug"))
	if errors.Is(err, services.ErrPostNotFound) {
		bc.NotFound(c)
		return
	}
	if err != nil {
		ServerError(c, err, "post detail: post")
		return
	}
	comments, err := bc.posts.Comments(ctx, post.ID)
	if err != nil {
		ServerError(c, err, "post detail: comments")
		return
	}
	popularTags, err := bc.tags.Popular(ctx, PopularTagsLimit)
	if err != nil {
		ServerError(c, err, "post detail: popular tags")
		return
	}
	popularPosts, err := bc.posts.Popular(ctx, PopularPostsLimit)
	if err != nil {
		ServerError(c, err, "post detail: popular posts")
		return
	}

	serializedComments := make([]gin.H, 0, len(comments))
	for _, comment := range comments {
		serializedComments = append(serializedComments, gin.H{
			"text":         comment.Text,
			"published_at": comment.PublishedAt,
			"author":       comment.Author.Username,
		})
	}

	c.HTML(http.StatusOK, "post-details.html", gin.H{
		"post": gin.H{
			"title":        post.Title,
			"text":         post.Text,
			"author":       post.Author.Username,
			"comments":     serializedComments,
			"likes_amount": post.LikesCount,
			"image_url":    bc.imageURL(post.Image),
			"published_at": post.PublishedAt,
			"slug":         post.Slug,
			"tags":         serializeTags(post.Tags),
		},
		"popular_tags":       serializeTags(popularTags),
		"most_popular_posts": bc.serializePosts(popularPosts, false),
	})
}

// GET /tags/:tag_title/
func (bc *BlogController) TagFilter(c *gin.Context) {
	ctx := c.Request.Context()

	tag, err := bc.tags.ByTitle(ctx, c.Param("tag_title"))
	if errors.Is(err, services.ErrTagNotFound) {
		bc.NotFound(c)
		return
	}
	if err != nil {
		ServerError(c, err, "tag filter: tag")
		return
	}
	popularTags, err := bc.tags.Popular(ctx, PopularTagsLimit)
	if err != nil {
		ServerError(c, err, "tag filter: popular tags")
		return
	}
	popularPosts, err := bc.posts.Popular(ctx, PopularPostsLimit)
	if err != nil {
		ServerError(c, err, "tag filter: popular posts")
		return
	}
	relatedPosts, err := bc.posts.ByTag(ctx, tag.ID, TagPostsLimit)
	if err != nil {
		ServerError(c, err, "tag filter: related posts")
		return
	}

	c.HTML(http.StatusOK, "posts-list.html", gin.H{
		"tag":                tag.Title,
		"popular_tags":       serializeTags(popularTags),
		"posts":              bc.serializePosts(relatedPosts, true),
		"most_popular_posts": bc.serializePosts(popularPosts, false),
	})
}

// GET /contacts/
// Страница статическая, счётчик просмотров берётся из page_visits и не ломает её при ошибке.
func (bc *BlogController) Contacts(c *gin.Context) {
	var total int64
	visits, err := services.Visits(c.Request.Context(), bc.db, ContactsPage)
	if err != nil {
		utils.LogError(err, "contacts: visits")
	}
	for _, v := range visits {
		total += v.Count
	}
	c.HTML(http.StatusOK, "contacts.html", gin.H{"visits_total": total})
}

// NotFound отдаёт страницу 404 со списком всех тегов. Используется и как NoRoute-обработчик.
func (bc *BlogController) NotFound(c *gin.Context) {
	tags, err := bc.tags.All(c.Request.Context())
	if err != nil {
		utils.LogError(err, "not found: all tags")
	}
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"path": c.Request.URL.Path,
		"tags": serializeTags(tags),
	})
}

func (bc *BlogController) serializePosts(posts []models.Post, withComments bool) []gin.H {
	items := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		items = append(items, bc.serializePost(p, withComments))
	}
	return items
}

func (bc *BlogController) serializePost(p models.Post, withComments bool) gin.H {
	firstTagTitle := ""
	if len(p.Tags) > 0 {
		firstTagTitle = p.Tags[0].Title
	}
	item := gin.H{
		"title":           p.Title,
		"teaser_text":     utils.Truncate(p.Text, teaserLength),
		"author":          p.Author.Username,
		"image_url":       bc.imageURL(p.Image),
		"published_at":    p.PublishedAt,
		"slug":            p.Slug,
		"tags":            serializeTags(p.Tags),
		"first_tag_title": firstTagTitle,
	}
	if withComments {
		item["comments_amount"] = p.CommentsCount
	}
	return item
}

func serializeTags(tags []models.Tag) []gin.H {
	items := make([]gin.H, 0, len(tags))
	for _, t := range tags {
		items = append(items, gin.H{
			"title":          t.Title,
			"posts_with_tag": t.PostsCount,
		})
	}
	return items
}

// imageURL склеивает MEDIA_URL и путь картинки; пустая картинка даёт пустой url
func (bc *BlogController) imageURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimSuffix(bc.mediaURL, "/") + "/" + strings.TrimPrefix(image, "/")
}
