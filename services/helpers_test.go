package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/database"
	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t       *testing.T
	db      *gorm.DB
	author  models.User
	readers []models.User
	tags    map[string]models.Tag
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)

	f := &fixture{t: t, db: db, tags: map[string]models.Tag{}}
	f.author = models.User{Username: "editor", IsStaff: true}
	require.NoError(t, db.Create(&f.author).Error)
	for i := 0; i < 8; i++ {
		u := models.User{Username: fmt.Sprintf("reader%d", i)}
		require.NoError(t, db.Create(&u).Error)
		f.readers = append(f.readers, u)
	}
	return f
}

func (f *fixture) tag(title string) models.Tag {
	f.t.Helper()
	if tag, ok := f.tags[title]; ok {
		return tag
	}
	tag := models.Tag{Title: title}
	require.NoError(f.t, f.db.Create(&tag).Error)
	f.tags[title] = tag
	return tag
}

// post создаёт пост, опубликованный через age часов после baseTime, с likes лайками
func (f *fixture) post(title string, age int, likes int, tags ...string) models.Post {
	f.t.Helper()
	p := models.Post{
		Title:       title,
		Text:        "Text of " + title,
		AuthorID:    f.author.ID,
		PublishedAt: baseTime.Add(time.Duration(age) * time.Hour),
	}
	require.NoError(f.t, f.db.Create(&p).Error)
	if likes > 0 {
		require.NoError(f.t, f.db.Model(&p).Association("Likes").Append(f.readers[:likes]))
	}
	for _, tagTitle := range tags {
		tag := f.tag(tagTitle)
		require.NoError(f.t, f.db.Model(&p).Association("Tags").Append(&tag))
	}
	return p
}

func (f *fixture) comment(p models.Post, text string, age int) models.Comment {
	f.t.Helper()
	c := models.Comment{
		PostID:      p.ID,
		AuthorID:    f.readers[0].ID,
		Text:        text,
		PublishedAt: baseTime.Add(time.Duration(age) * time.Minute),
	}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c
}

func titles(posts []models.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func tagTitles(tags []models.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Title)
	}
	return out
}
