package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyPreservesExtension(t *testing.T) {
	key := ObjectKey("demo.mp3")

	assert.True(t, strings.HasPrefix(key, "media/"))
	assert.True(t, strings.HasSuffix(key, ".mp3"))
}

func TestObjectKeyUsesLastExtension(t *testing.T) {
	key := ObjectKey("archive.tar.gz")

	assert.True(t, strings.HasSuffix(key, ".gz"))
	assert.False(t, strings.Contains(key, ".tar."))
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey("README")

	assert.True(t, strings.HasPrefix(key, "media/"))
	assert.False(t, strings.Contains(strings.TrimPrefix(key, "media/"), "."))
}

func TestObjectKeyNeverRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := ObjectKey("demo.mp3")
		assert.False(t, seen[key], "duplicate key generated: %s", key)
		seen[key] = true
	}
}
