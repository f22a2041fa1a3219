package memory

import (
	"fmt"

	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/store"
)

// findPhoto returns a pointer into the owner's gallery, valid only while
// the lock is held.
func findPhoto(u *domain.User, photoID int) *domain.Photo {
	for i := range u.Images {
		if u.Images[i].ID == photoID {
			return &u.Images[i]
		}
	}
	return nil
}

// UploadPhoto implements store.GalleryStore. Unlike posts, the owner is
// resolved before the payload is validated; the gallery has always reported
// the unknown user first. Returns a copy of the stored photo.
func (r *Registry) UploadPhoto(userID int, photo domain.Photo) (*domain.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return nil, store.ErrUserNotFound
	}
	if err := photo.Validate(); err != nil {
		return nil, err
	}
	if findPhoto(u, photo.ID) != nil {
		return nil, store.ErrDuplicateID
	}

	rec := photo.Clone()
	rec.Comments = []domain.Comment{}
	u.Images = append(u.Images, rec)
	r.logger.Debug("photo uploaded", "userId", userID, "photoId", photo.ID)

	out := rec.Clone()
	return &out, nil
}

// GetPhotoByID implements store.GalleryStore.
func (r *Registry) GetPhotoByID(userID, photoID int) (*domain.Photo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return nil, false
	}
	p := findPhoto(u, photoID)
	if p == nil {
		return nil, false
	}
	rec := p.Clone()
	return &rec, true
}

// GetPhotosByUser implements store.GalleryStore.
func (r *Registry) GetPhotosByUser(userID int) []domain.Photo {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return []domain.Photo{}
	}
	return domain.ClonePhotos(u.Images)
}

// GetPhotosByRangeDate implements store.GalleryStore. Parse failures are
// reported as ErrInvalidDateFormat, the gallery's own kind for the
// condition the post store reports as ErrInvalidDate.
func (r *Registry) GetPhotosByRangeDate(userID int, start, end string) ([]domain.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return []domain.Photo{}, nil
	}

	startT, err := domain.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, start)
	}
	endT, err := domain.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDateFormat, end)
	}
	if startT.After(endT) {
		return nil, store.ErrInvalidRange
	}

	out := make([]domain.Photo, 0)
	for i := range u.Images {
		created := u.Images[i].CreateDat
		if !created.Before(startT) && !created.After(endT) {
			out = append(out, u.Images[i].Clone())
		}
	}
	return out, nil
}

// DeletePhoto implements store.GalleryStore.
func (r *Registry) DeletePhoto(userID, photoID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.findUser(userID)
	if u == nil {
		return store.ErrUserNotFound
	}
	for i := range u.Images {
		if u.Images[i].ID == photoID {
			u.Images = append(u.Images[:i], u.Images[i+1:]...)
			return nil
		}
	}
	return store.ErrPhotoNotFound
}
