package domain

import (
	"fmt"
	"strings"
	"time"
)

// SupportedPhotoType is the only MIME type the gallery accepts.
const SupportedPhotoType = "image/png"

// Photo is a gallery entry owned by exactly one user. As with posts, IDs
// are unique only within the owning user's gallery.
//
// CreateDat keeps the upstream field name; callers and persisted fixtures
// rely on it.
type Photo struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreateDat   time.Time `json:"createDat"`
	Comments    []Comment `json:"comments"`
}

// Validate checks the upload payload: positive ID, supported MIME type
// (ErrUnsupportedType), non-blank description, and a valid date.
func (p *Photo) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: photo id must be positive", ErrInvalidID)
	}
	if p.Type != SupportedPhotoType {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, p.Type)
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrInvalidDescription
	}
	if p.CreateDat.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Clone returns a deep copy of the photo, comments included.
func (p *Photo) Clone() Photo {
	out := *p
	out.Comments = CloneComments(p.Comments)
	return out
}

// ClonePhotos deep-copies a gallery collection.
func ClonePhotos(photos []Photo) []Photo {
	out := make([]Photo, len(photos))
	for i := range photos {
		out[i] = photos[i].Clone()
	}
	return out
}
