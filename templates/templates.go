package templates

import (
	"embed"
	"html/template"
	"net/url"
	"time"

	"github.com/KozhevnikovM/devman-sensive-blog/utils"
)

//go:embed *.html
var files embed.FS

// FuncMap общий для всех страниц
var FuncMap = template.FuncMap{
	"formatDate": FormatDate,
	"postURL":    PostURL,
	"tagURL":     TagURL,
	"plural":     utils.PluralRu,
	"hasKey":     HasKey,
}

var months = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatDate: "1 марта 2024" в локальном часовом поясе сайта
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.Local()
	return t.Format("2") + " " + months[t.Month()-1] + " " + t.Format("2006")
}

// HasKey отличает отсутствующее поле от нулевого значения
func HasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

func PostURL(slug string) string {
	return "/posts/" + url.PathEscape(slug) + "/"
}

func TagURL(title string) string {
	return "/tags/" + url.PathEscape(title) + "/"
}

// Load разбирает все встроенные шаблоны; имя шаблона совпадает с именем файла
func Load() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(files, "*.html")
}
