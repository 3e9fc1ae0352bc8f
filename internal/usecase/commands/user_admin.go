package commands

import (
	"context"

	"event-reservation/internal/domain/user"
	reqdto "event-reservation/internal/handler/dto/request"
	"event-reservation/internal/infra"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	UserUpdatedMessage  = "User updated successfully."
	UserDeletedMessage  = "User deleted successfully."
	UserPromotedMessage = "User promoted to admin successfully."
)

var (
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrUserOperationFailed = errs.New("user operation failed")
)

type UserAdminCommands interface {
	Update(ctx context.Context, actor *shared.Actor, targetID uuid.UUID, req reqdto.UpdateUserRequest) error
	Destroy(ctx context.Context, actor *shared.Actor, targetID uuid.UUID) error
	Promote(ctx context.Context, actor *shared.Actor, targetID uuid.UUID) error
}

type userAdminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserAdminUseCase(uow shared.UnitOfWork) UserAdminCommands {
	return &userAdminUseCaseImpl{uow: uow}
}

// Update applies only the provided fields.
func (uc *userAdminUseCaseImpl) Update(ctx context.Context, actor *shared.Actor, targetID uuid.UUID, req reqdto.UpdateUserRequest) error {
	if !actor.IsAdmin() {
		return errs.ErrAccessDenied
	}

	changes, err := toUserChanges(req)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.findTarget(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if changes.IsEmpty() {
			return nil
		}
		u.ApplyChanges(changes)
		return uc.save(ctx, tx, u)
	})
}

func (uc *userAdminUseCaseImpl) Destroy(ctx context.Context, actor *shared.Actor, targetID uuid.UUID) error {
	if !actor.IsAdmin() {
		return errs.ErrAccessDenied
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, targetID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrUserOperationFailed)
		}
		return nil
	})
}

// Promote is idempotent; an admin target is left untouched.
func (uc *userAdminUseCaseImpl) Promote(ctx context.Context, actor *shared.Actor, targetID uuid.UUID) error {
	if !actor.IsAdmin() {
		return errs.ErrAccessDenied
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.findTarget(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if u.IsAdmin() {
			return nil
		}
		u.Promote()
		return uc.save(ctx, tx, u)
	})
}

func (uc *userAdminUseCaseImpl) findTarget(ctx context.Context, tx shared.Tx, id uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrUserOperationFailed)
	}
	return u, nil
}

func (uc *userAdminUseCaseImpl) save(ctx context.Context, tx shared.Tx, u *user.User) error {
	if err := tx.Users().Update(ctx, u); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.FieldError("email", "The username or email has already been taken.")
		default:
			return errs.Mark(err, ErrUserOperationFailed)
		}
	}
	return nil
}

func toUserChanges(req reqdto.UpdateUserRequest) (user.Changes, error) {
	verr := errs.NewValidationError()
	var changes user.Changes

	if req.Username != nil {
		name, err := user.NewUsername(*req.Username)
		if err != nil {
			verr.Add("username", "The username field must not be greater than 255 characters.")
		} else {
			changes.Username = &name
		}
	}
	if req.Email != nil {
		email, err := user.NewEmail(*req.Email)
		if err != nil {
			verr.Add("email", "The email field must be a valid email address.")
		} else {
			changes.Email = &email
		}
	}
	if req.Role != nil {
		role, err := user.NewRole(*req.Role)
		if err != nil {
			verr.Add("role", "The selected role is invalid.")
		} else {
			changes.Role = &role
		}
	}

	return changes, verr.OrNil()
}
