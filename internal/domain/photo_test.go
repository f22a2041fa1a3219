package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhotoValidate(t *testing.T) {
	valid := Photo{ID: 1, Type: SupportedPhotoType, Description: "sunset", CreateDat: time.Now()}

	t.Run("valid photo", func(t *testing.T) {
		p := valid
		assert.NoError(t, p.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Photo)
		wantErr error
	}{
		{"zero id", func(p *Photo) { p.ID = 0 }, ErrInvalidID},
		{"jpeg rejected", func(p *Photo) { p.Type = "image/jpeg" }, ErrUnsupportedType},
		{"empty type rejected", func(p *Photo) { p.Type = "" }, ErrUnsupportedType},
		{"blank description", func(p *Photo) { p.Description = "  " }, ErrInvalidDescription},
		{"zero date", func(p *Photo) { p.CreateDat = time.Time{} }, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), tt.wantErr)
		})
	}
}
