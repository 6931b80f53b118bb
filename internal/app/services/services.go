package services

import (
	"context"
	"errors"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// Actor identifies the authenticated caller for ownership checks
type Actor struct {
	UserID int64
	Role   models.RoleType
}

// IsAdmin reports whether the actor bypasses institute ownership checks
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// instituteScope resolves the institute an actor may mutate. Admins get 0,
// meaning every institute.
func instituteScope(ctx context.Context, userRepo *repositories.UserRepository, actor Actor) (int64, error) {
	switch actor.Role {
	case models.RoleAdmin:
		return 0, nil
	case models.RoleDirector:
		director, err := userRepo.GetDirectorByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrDirectorNotFound) {
				return 0, apperrors.ErrPermissionDenied
			}
			return 0, err
		}
		if !director.IsActive() {
			return 0, apperrors.ErrPermissionDenied
		}
		return director.InstituteID, nil
	case models.RoleManager:
		manager, err := userRepo.GetManagerByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrManagerNotFound) {
				return 0, apperrors.ErrPermissionDenied
			}
			return 0, err
		}
		if !manager.IsActive() {
			return 0, apperrors.ErrPermissionDenied
		}
		return manager.InstituteID, nil
	}
	return 0, apperrors.ErrPermissionDenied
}

// resolveInstituteID fills in the actor's own institute when the caller did
// not name one. Admins operate across institutes and must name the target.
func resolveInstituteID(ctx context.Context, userRepo *repositories.UserRepository, actor Actor, instituteID int64) (int64, error) {
	if instituteID != 0 {
		return instituteID, nil
	}
	scope, err := instituteScope(ctx, userRepo, actor)
	if err != nil {
		return 0, err
	}
	if scope == 0 {
		return 0, apperrors.NewBadRequestError("instituteId is required")
	}
	return scope, nil
}

// checkInstituteScope verifies the actor may mutate rows of the institute
func checkInstituteScope(ctx context.Context, userRepo *repositories.UserRepository, actor Actor, instituteID int64) error {
	scope, err := instituteScope(ctx, userRepo, actor)
	if err != nil {
		return err
	}
	if scope != 0 && scope != instituteID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
