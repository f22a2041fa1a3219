package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		ID:       1,
		Name:     "Carlos",
		UserName: "Carlinhos",
		Password: "12345",
		Email:    "carlos@gmail.com",
	}
}

func TestUserValidate(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u := validUser()
		assert.NoError(t, u.Validate())
	})

	t.Run("name is optional", func(t *testing.T) {
		u := validUser()
		u.Name = ""
		assert.NoError(t, u.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		cases := map[string]func(*User){
			"id":       func(u *User) { u.ID = 0 },
			"userName": func(u *User) { u.UserName = "" },
			"password": func(u *User) { u.Password = "" },
			"email":    func(u *User) { u.Email = "" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				u := validUser()
				mutate(&u)
				assert.ErrorIs(t, u.Validate(), ErrInvalidInput)
			})
		}
	})

	t.Run("email without at sign", func(t *testing.T) {
		u := validUser()
		u.Email = "carlosgmail.com"
		assert.ErrorIs(t, u.Validate(), ErrInvalidEmail)
	})
}

func TestUserClone(t *testing.T) {
	u := validUser()
	u.Posts = []Post{{ID: 1, Content: "x", Category: "c", Comments: []Comment{{ID: 1, Content: "hi", AuthorID: 1}}}}
	u.Images = []Photo{{ID: 1, Type: SupportedPhotoType, Description: "d"}}

	clone := u.Clone()
	require.Equal(t, u, clone)

	clone.Posts[0].Content = "mutated"
	clone.Posts[0].Comments[0].Content = "mutated"
	clone.Images[0].Description = "mutated"

	assert.Equal(t, "x", u.Posts[0].Content)
	assert.Equal(t, "hi", u.Posts[0].Comments[0].Content)
	assert.Equal(t, "d", u.Images[0].Description)
}
