package queries

import (
	"context"

	"event-reservation/internal/infra"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/readmodel"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.Mark(errs.New("current user not found"), errs.ErrNotFound)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error)
	ListUsers(ctx context.Context, actor *shared.Actor) ([]readmodel.UserRM, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error) {
	u, err := q.uow.Reads().Users().FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListUsers returns every user ordered by creation. Admin only.
func (q *userQueriesImpl) ListUsers(ctx context.Context, actor *shared.Actor) ([]readmodel.UserRM, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrAccessDenied
	}
	return q.uow.Reads().Users().List(ctx)
}
