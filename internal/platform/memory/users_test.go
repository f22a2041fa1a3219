package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yancdev/socialcore/internal/domain"
	"github.com/yancdev/socialcore/internal/store"
)

func TestCreateUser(t *testing.T) {
	t.Run("create then get round-trips with empty collections", func(t *testing.T) {
		r := newTestRegistry(t)
		in := domain.User{ID: 1, Name: "Carlos", UserName: "Carlinhos", Password: "12345", Email: "carlos@gmail.com"}
		require.NoError(t, r.CreateUser(in))

		got, ok := r.GetUserByID(1)
		require.True(t, ok)

		want := in
		want.Posts = []domain.Post{}
		want.Images = []domain.Photo{}
		assert.Equal(t, want, *got)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.CreateUser(domain.User{ID: 1, UserName: "x", Password: "y"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, r.GetAllUsers())
	})

	t.Run("email without at sign rejected", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.CreateUser(domain.User{ID: 1, UserName: "x", Password: "y", Email: "xgmail.com"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("duplicate id", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		err := r.CreateUser(domain.User{ID: 1, UserName: "other", Password: "pw", Email: "other@example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateID)
	})

	t.Run("case-variant username collides", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		err := r.CreateUser(domain.User{ID: 2, UserName: "CARLOS", Password: "pw", Email: "two@example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateUsername)
	})

	t.Run("case-variant email collides", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		err := r.CreateUser(domain.User{ID: 2, UserName: "other", Password: "pw", Email: "CARLOS@Example.com"})
		assert.ErrorIs(t, err, store.ErrDuplicateEmail)
	})
}

func TestLogInUser(t *testing.T) {
	r := newTestRegistry(t)
	seedUser(t, r, 1, "carlos")

	t.Run("success with case-variant username", func(t *testing.T) {
		assert.NoError(t, r.LogInUser("CARLOS", "pw-carlos"))
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, r.LogInUser("nobody", "pw"), store.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, r.LogInUser("carlos", "wrong"), store.ErrInvalidPassword)
	})
}

func TestGetAllUsersIsDefensive(t *testing.T) {
	r := newTestRegistry(t)
	seedUser(t, r, 1, "carlos")
	require.NoError(t, r.CreatePost(1, domain.Post{ID: 1, Content: "x", Category: "c", CreatedAt: mustDate(t, "2025/01/10")}))

	all := r.GetAllUsers()
	require.Len(t, all, 1)
	all[0].UserName = "mutated"
	all[0].Posts[0].Content = "mutated"

	got, ok := r.GetUserByID(1)
	require.True(t, ok)
	assert.Equal(t, "carlos", got.UserName)
	assert.Equal(t, "x", got.Posts[0].Content)
}

func TestGetUserByID(t *testing.T) {
	r := newTestRegistry(t)
	seedUser(t, r, 1, "carlos")

	_, ok := r.GetUserByID(99)
	assert.False(t, ok)

	got, ok := r.GetUserByID(1)
	require.True(t, ok)
	assert.Equal(t, "carlos", got.UserName)
}

func TestGetUsersByName(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.CreateUser(domain.User{ID: 1, Name: "Carlos Silva", UserName: "carlos", Password: "pw", Email: "c@example.com"}))
	require.NoError(t, r.CreateUser(domain.User{ID: 2, Name: "Ana Carla", UserName: "ana", Password: "pw", Email: "a@example.com"}))
	require.NoError(t, r.CreateUser(domain.User{ID: 3, Name: "Bruno", UserName: "bruno", Password: "pw", Email: "b@example.com"}))

	got := r.GetUsersByName("carl")
	require.Len(t, got, 2)
	for _, u := range got {
		assert.Empty(t, u.Password, "password must be stripped from name search results")
	}
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	assert.Empty(t, r.GetUsersByName("zeta"))
}

func TestUpdateUser(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		r := newTestRegistry(t)
		err := r.UpdateUser(9, store.NameUpdate("x"))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("immutable fields", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		assert.ErrorIs(t, r.UpdateUser(1, store.UserUpdate{Field: store.FieldID, Value: "2"}), store.ErrImmutableField)
		assert.ErrorIs(t, r.UpdateUser(1, store.UserUpdate{Field: store.FieldEmail, Value: "x@y"}), store.ErrImmutableField)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		err := r.UpdateUser(1, store.UserUpdate{Field: "points", Value: "10"})
		assert.ErrorIs(t, err, store.ErrInvalidField)
	})

	t.Run("mutable fields update in place", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		require.NoError(t, r.UpdateUser(1, store.NameUpdate("Carlos A.")))
		require.NoError(t, r.UpdateUser(1, store.UserNameUpdate("carlinhos")))
		require.NoError(t, r.UpdateUser(1, store.PasswordUpdate("new-pw")))

		got, ok := r.GetUserByID(1)
		require.True(t, ok)
		assert.Equal(t, "Carlos A.", got.Name)
		assert.Equal(t, "carlinhos", got.UserName)
		assert.Equal(t, "new-pw", got.Password)
	})

	t.Run("username collision with another user", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		seedUser(t, r, 2, "ana")
		err := r.UpdateUser(2, store.UserNameUpdate("CARLOS"))
		assert.ErrorIs(t, err, store.ErrDuplicateUsername)
	})

	t.Run("user may keep its own username", func(t *testing.T) {
		r := newTestRegistry(t)
		seedUser(t, r, 1, "carlos")
		assert.NoError(t, r.UpdateUser(1, store.UserNameUpdate("Carlos")))
	})
}

func TestDeleteUser(t *testing.T) {
	r := newTestRegistry(t)
	seedUser(t, r, 1, "carlos")

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, r.DeleteUser(9), store.ErrUserNotFound)
		assert.Len(t, r.GetAllUsers(), 1)
	})

	t.Run("delete discards embedded content", func(t *testing.T) {
		require.NoError(t, r.CreatePost(1, domain.Post{ID: 1, Content: "x", Category: "c", CreatedAt: mustDate(t, "2025/01/10")}))
		require.NoError(t, r.DeleteUser(1))

		_, ok := r.GetUserByID(1)
		assert.False(t, ok)
		assert.Empty(t, r.SearchPosts(1))
	})
}
