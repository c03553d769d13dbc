package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/KozhevnikovM/devman-sensive-blog/models"
)

type demoPost struct {
	title  string
	text   string
	image  string
	tags   []string
	likers int
}

var demoPosts = []demoPost{
	{
		title:  "Поход по Карелии",
		text:   "Неделя на байдарках среди озёр и сосен. Рассказываем про маршрут, снаряжение и стоянки.",
		image:  "karelia.jpg",
		tags:   []string{"Путешествия", "Природа"},
		likers: 4,
	},
	{
		title:  "Лучшая шаурма района",
		text:   "Мы обошли двенадцать киосков и выбрали тот, куда вернёмся ещё не раз.",
		image:  "shawarma.jpg",
		tags:   []string{"Еда", "Город"},
		likers: 3,
	},
	{
		title:  "Утренняя пробежка по набережной",
		text:   "Пять километров вдоль реки до того, как город проснётся.",
		tags:   []string{"Спорт", "Город"},
		likers: 1,
	},
	{
		title:  "Что почитать в дороге",
		text:   "Подборка из десяти книг, которые помещаются в рюкзак и не отпускают до последней страницы.",
		image:  "books.jpg",
		tags:   []string{"Книги", "Путешествия"},
		likers: 2,
	},
	{
		title: "Грибной сезон открыт",
		text:  "Где искать белые в сентябре и как не перепутать их с ложными.",
		image: "mushrooms.jpg",
		tags:  []string{"Природа", "Еда", "Путешествия"},
	},
	{
		title:  "Велодорожки нового района",
		text:   "Проверили, насколько удобно добираться до центра на велосипеде.",
		tags:   []string{"Город", "Спорт"},
		likers: 2,
	},
}

// SeedDemo проверяет таблицу posts и, если она пуста, заполняет блог демонстрационными данными
func SeedDemo(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Уже есть посты, ничего не делаем
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		postService := NewPostService(tx)
		userService := NewUserService(tx)

		author := models.User{Username: "editor", IsStaff: true}
		if err := tx.Create(&author).Error; err != nil {
			return fmt.Errorf("seed author: %w", err)
		}

		readers := []models.User{
			{Username: "anna"},
			{Username: "boris"},
			{Username: "vera"},
			{Username: "gleb"},
		}
		if err := tx.Create(&readers).Error; err != nil {
			return fmt.Errorf("seed readers: %w", err)
		}

		now := time.Now()
		posts := make([]models.Post, len(demoPosts))
		for i, d := range demoPosts {
			posts[i] = models.Post{
				Title:       d.title,
				Text:        d.text,
				Image:       d.image,
				AuthorID:    author.ID,
				PublishedAt: now.Add(-time.Duration(len(demoPosts)-i) * 24 * time.Hour),
			}
			if err := tx.Create(&posts[i]).Error; err != nil {
				return fmt.Errorf("seed post %q: %w", d.title, err)
			}
			if err := postService.AddTags(ctx, &posts[i], d.tags...); err != nil {
				return fmt.Errorf("seed tags of %q: %w", d.title, err)
			}
			if err := userService.Like(ctx, &posts[i], readers[:d.likers]...); err != nil {
				return fmt.Errorf("seed likes of %q: %w", d.title, err)
			}
		}

		comments := []models.Comment{
			{PostID: posts[0].ID, AuthorID: readers[0].ID, Text: "Мечтаю туда съездить!"},
			{PostID: posts[0].ID, AuthorID: readers[1].ID, Text: "А сколько стоила аренда байдарки?"},
			{PostID: posts[1].ID, AuthorID: readers[2].ID, Text: "Согласна, там лучшая."},
			{PostID: posts[3].ID, AuthorID: readers[3].ID, Text: "Добавьте Паустовского."},
			{PostID: posts[3].ID, AuthorID: readers[0].ID, Text: "Спасибо за подборку"},
			{PostID: posts[3].ID, AuthorID: readers[1].ID, Text: "Половину уже читал."},
		}
		for i := range comments {
			comments[i].PublishedAt = now.Add(-time.Duration(len(comments)-i) * time.Hour)
		}
		if err := tx.Create(&comments).Error; err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
		return nil
	})
}
