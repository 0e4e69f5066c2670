package repositories

import "github.com/abcmusiclibrary/backend/internal/models"

// ContentFilter narrows content listings. Zero values mean "no filter".
// Offset and Limit are assumed already clamped by the service layer.
type ContentFilter struct {
	// GenreOrCategory matches the genre column for sheet music and the
	// category column for lessons.
	GenreOrCategory string
	Difficulty      models.Difficulty
	// Search is a case-insensitive substring match over the kind's text
	// fields (title+composer for sheet music, title+description for lessons).
	Search string
	// OwnerID, when set, restricts results to that owner.
	OwnerID string
	// PublishedOnly restricts results to published items.
	PublishedOnly bool
	Offset        int
	Limit         int
}
