package storage

import (
	"path/filepath"

	"github.com/google/uuid"
)

// mediaPrefix namespaces every stored media object inside the bucket.
const mediaPrefix = "media/"

// ObjectKey derives a collision-resistant storage key from the uploaded file's
// original name. The original extension is preserved; a name without one yields
// a key without a suffix.
func ObjectKey(originalName string) string {
	return mediaPrefix + uuid.New().String() + filepath.Ext(originalName)
}
