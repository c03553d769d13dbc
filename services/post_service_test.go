package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

func TestPopularRanksByDistinctLikes(t *testing.T) {
	f := newFixture(t)
	f.post("two", 1, 2)
	f.post("none", 2, 0)
	f.post("five", 3, 5)
	f.post("one", 4, 1)

	posts, err := NewPostService(f.db).Popular(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"five", "two", "one", "none"}, titles(posts))
	assert.EqualValues(t, 5, posts[0].LikesCount)
	assert.EqualValues(t, 0, posts[3].LikesCount)
	assert.Equal(t, "editor", posts[0].Author.Username)
}

func TestLikesOfDeletedUsersAreNotCounted(t *testing.T) {
	f := newFixture(t)
	f.post("three", 1, 3)
	f.post("two", 2, 2)
	require.NoError(t, f.db.Delete(&f.readers[0]).Error)
	require.NoError(t, f.db.Delete(&f.readers[1]).Error)

	posts, err := NewPostService(f.db).Popular(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "two"}, titles(posts))
	assert.EqualValues(t, 1, posts[0].LikesCount)
	assert.EqualValues(t, 0, posts[1].LikesCount)
}

func TestPopularRespectsLimit(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 7; i++ {
		f.post(fmt.Sprintf("p%d", i), i, i)
	}

	posts, err := NewPostService(f.db).Popular(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"p6", "p5", "p4", "p3", "p2"}, titles(posts))
}

func TestPopularSkipsDeletedPosts(t *testing.T) {
	f := newFixture(t)
	gone := f.post("gone", 1, 5)
	f.post("kept", 2, 1)
	require.NoError(t, f.db.Delete(&gone).Error)

	posts, err := NewPostService(f.db).Popular(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, titles(posts))
}

func TestFreshOrdersByPublicationAndCountsComments(t *testing.T) {
	f := newFixture(t)
	old := f.post("old", 1, 3)
	mid := f.post("mid", 2, 0)
	f.post("new", 3, 1)
	f.comment(old, "a", 1)
	f.comment(old, "b", 2)
	deleted := f.comment(mid, "c", 3)
	require.NoError(t, f.db.Delete(&deleted).Error)

	posts, err := NewPostService(f.db).Fresh(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"new", "mid", "old"}, titles(posts))
	assert.EqualValues(t, 0, posts[0].CommentsCount)
	assert.EqualValues(t, 0, posts[1].CommentsCount)
	assert.EqualValues(t, 2, posts[2].CommentsCount)
	assert.EqualValues(t, 3, posts[2].LikesCount)
}

func TestAttachTagsOrdersTagsByPopularity(t *testing.T) {
	f := newFixture(t)
	f.post("a", 1, 0, "rare", "common")
	f.post("b", 2, 0, "common")
	f.post("c", 3, 0, "common", "middle")
	f.post("d", 4, 0, "middle")
	f.post("e", 5, 0)

	posts, err := NewPostService(f.db).Fresh(context.Background(), 5)
	require.NoError(t, err)
	byTitle := map[string]models.Post{}
	for _, p := range posts {
		byTitle[p.Title] = p
	}

	assert.Equal(t, []string{"common", "rare"}, tagTitles(byTitle["a"].Tags))
	assert.Equal(t, []string{"common", "middle"}, tagTitles(byTitle["c"].Tags))
	assert.NotNil(t, byTitle["e"].Tags)
	assert.Empty(t, byTitle["e"].Tags)

	assert.EqualValues(t, 3, byTitle["a"].Tags[0].PostsCount)
	assert.EqualValues(t, 1, byTitle["a"].Tags[1].PostsCount)
	assert.EqualValues(t, 2, byTitle["c"].Tags[1].PostsCount)
}

func TestAttachOnEmptySet(t *testing.T) {
	f := newFixture(t)
	svc := NewPostService(f.db)

	assert.NoError(t, svc.AttachTags(context.Background(), nil))
	assert.NoError(t, svc.AttachCommentsCount(context.Background(), []models.Post{}))
}

func TestBySlug(t *testing.T) {
	f := newFixture(t)
	f.post("Первый пост", 1, 3, "go", "web")
	f.post("other", 2, 0, "go")

	svc := NewPostService(f.db)
	post, err := svc.BySlug(context.Background(), "pervyy-post")
	require.NoError(t, err)

	assert.Equal(t, "Первый пост", post.Title)
	assert.EqualValues(t, 3, post.LikesCount)
	assert.Equal(t, "editor", post.Author.Username)
	assert.Equal(t, []string{"go", "web"}, tagTitles(post.Tags))

	_, err = svc.BySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCommentsAreOldestFirstWithAuthors(t *testing.T) {
	f := newFixture(t)
	p := f.post("p", 1, 0)
	other := f.post("other", 2, 0)
	f.comment(p, "second", 20)
	f.comment(p, "first", 10)
	f.comment(other, "elsewhere", 5)

	comments, err := NewPostService(f.db).Comments(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "reader0", comments[0].Author.Username)
}

func TestByTagFiltersAndLimits(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 22; i++ {
		f.post(fmt.Sprintf("tagged%02d", i), i, i%3, "go")
	}
	f.post("untagged", 100, 0, "rust")
	go1 := f.tag("go")

	posts, err := NewPostService(f.db).ByTag(context.Background(), go1.ID, 20)
	require.NoError(t, err)

	require.Len(t, posts, 20)
	assert.Equal(t, "tagged21", posts[0].Title)
	assert.Equal(t, "tagged02", posts[19].Title)
	for _, p := range posts {
		assert.Equal(t, []string{"go"}, tagTitles(p.Tags))
		assert.EqualValues(t, 22, p.Tags[0].PostsCount)
	}
}

func TestAddTagsNormalizesAndDeduplicates(t *testing.T) {
	f := newFixture(t)
	p := f.post("p", 1, 0)
	svc := NewPostService(f.db)

	require.NoError(t, svc.AddTags(context.Background(), &p, "Go", "WEB"))
	require.NoError(t, svc.AddTags(context.Background(), &p, "go "))

	var tags []models.Tag
	require.NoError(t, f.db.Model(&p).Order("title").Association("Tags").Find(&tags))
	assert.Equal(t, []string{"go", "web"}, tagTitles(tags))

	var total int64
	f.db.Model(&models.Tag{}).Count(&total)
	assert.EqualValues(t, 2, total)
}
