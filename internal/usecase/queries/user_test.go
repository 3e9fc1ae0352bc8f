//go:build unit

package queries_test

import (
	"context"
	"testing"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/queries"
	"event-reservation/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	uow := memuow.New()
	q := queries.NewUserQueries(uow)
	seeded := uow.SeedUser("Juan", "juan", "juan@example.com", user.RoleUser)

	t.Run("found", func(t *testing.T) {
		got, err := q.GetCurrentUser(context.Background(), seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, seeded, *got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := q.GetCurrentUser(context.Background(), uuid.New())

		require.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}

func TestUserQueries_ListUsers(t *testing.T) {
	uow := memuow.New()
	q := queries.NewUserQueries(uow)
	first := uow.SeedUser("First", "first", "first@example.com", user.RoleUser)
	admin := uow.SeedUser("Admin", "admin", "admin@example.com", user.RoleAdmin)
	third := uow.SeedUser("Third", "third", "third@example.com", user.RoleUser)

	t.Run("admin gets every user in creation order", func(t *testing.T) {
		users, err := q.ListUsers(context.Background(), actorOf(admin))

		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, first.ID, users[0].ID)
		assert.Equal(t, admin.ID, users[1].ID)
		assert.Equal(t, third.ID, users[2].ID)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		_, err := q.ListUsers(context.Background(), actorOf(first))

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("anonymous is denied", func(t *testing.T) {
		_, err := q.ListUsers(context.Background(), nil)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})
}
