package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":         "hello-world",
		"Привет мир":            "privet-mir",
		"  Щука и ёж  ":         "shuka-i-ezh",
		"Go 1.21 released":      "go-121-released",
		"!!!":                   "post",
		"":                      "post",
		"already-slugged_value": "already-slugged-value",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestTruncateKeepsAngleBrackets(t *testing.T) {
	text := "Сравним: 2<3 и x<y, а дальше ещё много текста про неравенства."
	assert.Equal(t, text, Truncate(text, 200))
	assert.Equal(t, "Сравним: 2<3 и x<y", Truncate(text, 18))
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "При", Truncate("Привет", 3))
	assert.Equal(t, "short", Truncate("short", 200))
	assert.Equal(t, "", Truncate("anything", 0))

	long := strings.Repeat("я", 250)
	assert.Len(t, []rune(Truncate(long, 200)), 200)
}
