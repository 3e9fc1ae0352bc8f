//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"event-reservation/internal/infra"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestUserFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserReadQueries)
			q.On("FindUserByID", mock.Anything, mock.Anything, testUser.ID).Return(tt.mockReturn, tt.mockError)

			got, err := NewUserReadStore(q, nil).FindByID(context.Background(), testUser.ID)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, testUser.ID, got.ID)
				assert.Equal(t, testUser.Username, got.Username)
				assert.Equal(t, testUser.Role, got.Role)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserList(t *testing.T) {
	first := builder.NewUserBuilder().WithUsername("first").BuildInfra()
	second := builder.NewUserBuilder().WithUsername("second").WithRole("admin").BuildInfra()

	q := new(MockUserReadQueries)
	q.On("ListUsers", mock.Anything, mock.Anything).Return([]sqlc.Users{first, second}, nil)

	got, err := NewUserReadStore(q, nil).List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Username)
	assert.Equal(t, "admin", got[1].Role)
}
