package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralRu(t *testing.T) {
	forms := func(n int64) string { return PluralRu(n, "лайк", "лайка", "лайков") }

	assert.Equal(t, "лайков", forms(0))
	assert.Equal(t, "лайк", forms(1))
	assert.Equal(t, "лайка", forms(3))
	assert.Equal(t, "лайков", forms(5))
	assert.Equal(t, "лайков", forms(11))
	assert.Equal(t, "лайков", forms(114))
	assert.Equal(t, "лайк", forms(21))
	assert.Equal(t, "лайка", forms(102))
}
