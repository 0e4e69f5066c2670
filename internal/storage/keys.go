package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeriveKey builds a collision-resistant storage key from the actor id,
// a random token, a time component, and the original file extension.
// Two uploads of the same file by the same actor at the same instant
// still receive distinct keys through the random token.
func DeriveKey(actorID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s_%s_%d%s", actorID, uuid.New().String(), time.Now().UnixNano(), ext)
}
