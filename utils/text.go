package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "sh", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			b.WriteRune(r)
			continue
		}
		if m, ok := translit[r]; ok {
			b.WriteString(m)
			continue
		}
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Slugify превращает заголовок в url-часть: "Привет, мир!" -> "privet-mir"
func Slugify(title string) string {
	base := nonAlnum.ReplaceAllString(transliterate(title), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return "post"
	}
	return base
}

// Truncate обрезает строку до n символов (не байт)
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
