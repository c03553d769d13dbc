package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorWritesCallerAndContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitLogger(dir))
	t.Cleanup(func() {
		ErrorLogger = nil
		PanicLogger = nil
	})

	LogError(errors.New("boom"), "render index")
	LogPanic("oops", "HTTP Request")

	data, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger_test.go")
	assert.Contains(t, string(data), "render index: boom")

	data, err = os.ReadFile(filepath.Join(dir, "panics.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "HTTP Request: oops")
}

func TestLogErrorWithoutInit(t *testing.T) {
	ErrorLogger = nil
	assert.NotPanics(t, func() { LogError(errors.New("boom"), "no logger") })
}
