package services

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/db"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/auth"
	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// ManagerService handles hostel manager accounts and assignments
type ManagerService struct {
	userRepo   *repositories.UserRepository
	hostelRepo *repositories.HostelRepository
	database   *db.PostgresDB
	logger     zerolog.Logger
}

// NewManagerService creates a new ManagerService instance
func NewManagerService(
	userRepo *repositories.UserRepository,
	hostelRepo *repositories.HostelRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *ManagerService {
	return &ManagerService{
		userRepo:   userRepo,
		hostelRepo: hostelRepo,
		database:   database,
		logger:     logger.With().Str("service", "manager").Logger(),
	}
}

// checkManagerWrite verifies the actor may manage manager accounts of the
// institute. Only directors and admins may.
func (s *ManagerService) checkManagerWrite(ctx context.Context, actor Actor, instituteID int64) error {
	if actor.Role != models.RoleDirector && actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	return checkInstituteScope(ctx, s.userRepo, actor, instituteID)
}

// checkHostelInInstitute verifies the hostel belongs to the institute.
func (s *ManagerService) checkHostelInInstitute(ctx context.Context, hostelID, instituteID int64) error {
	hostel, err := s.hostelRepo.GetByID(ctx, hostelID)
	if err != nil {
		return err
	}
	if hostel.InstituteID != instituteID {
		return apperrors.NewBadRequestError("hostel does not belong to the institute")
	}
	return nil
}

// CreateManager creates a manager account and profile in one transaction.
// Manager accounts are staff-created, so they start active with no email
// verification round trip.
func (s *ManagerService) CreateManager(ctx context.Context, actor Actor, instituteID int64, req *dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	instituteID, err := resolveInstituteID(ctx, s.userRepo, actor, instituteID)
	if err != nil {
		return nil, err
	}
	if err := s.checkManagerWrite(ctx, actor, instituteID); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.CheckPasswordStrength(req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}
	if !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("invalid pincode format")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.HostelID != nil {
		if err := s.checkHostelInInstitute(ctx, *req.HostelID, instituteID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  models.RoleManager,
		IsActive:  true,
	}
	manager := &models.HostelManager{
		InstituteID:            instituteID,
		HostelID:               req.HostelID,
		Designation:            req.Designation,
		ContactNumber:          req.ContactNumber,
		AlternateContactNumber: req.AlternateContactNumber,
		Address:                req.Address,
		City:                   req.City,
		State:                  req.State,
		Pincode:                req.Pincode,
		StartDate:              time.Now(),
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = userID
		manager.UserID = userID
		return s.userRepo.CreateManagerTx(ctx, tx, manager)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("manager_id", manager.ID).
		Int64("user_id", user.ID).
		Int64("institute_id", instituteID).
		Msg("Hostel manager created")

	manager.User = user
	resp := dto.FromManager(manager)
	return &resp, nil
}

// GetManagerByID returns one manager with the account attached.
func (s *ManagerService) GetManagerByID(ctx context.Context, actor Actor, id int64) (*dto.ManagerResponse, error) {
	manager, err := s.userRepo.GetManagerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, manager.InstituteID); err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetUserByID(ctx, manager.UserID); err == nil {
		manager.User = user
	}
	resp := dto.FromManager(manager)
	return &resp, nil
}

// ListManagers returns the managers of an institute.
func (s *ManagerService) ListManagers(ctx context.Context, actor Actor, instituteID int64) ([]dto.ManagerResponse, error) {
	instituteID, err := resolveInstituteID(ctx, s.userRepo, actor, instituteID)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, instituteID); err != nil {
		return nil, err
	}

	managers, err := s.userRepo.ListManagersByInstitute(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ManagerResponse, 0, len(managers))
	for _, manager := range managers {
		if user, err := s.userRepo.GetUserByID(ctx, manager.UserID); err == nil {
			manager.User = user
		}
		resp = append(resp, dto.FromManager(manager))
	}
	return resp, nil
}

// AssignHostel moves a manager to a hostel, or unassigns with a nil hostel.
// A hostel holds at most one active manager.
func (s *ManagerService) AssignHostel(ctx context.Context, actor Actor, managerID int64, hostelID *int64) (*dto.ManagerResponse, error) {
	manager, err := s.userRepo.GetManagerByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if err := s.checkManagerWrite(ctx, actor, manager.InstituteID); err != nil {
		return nil, err
	}
	if !manager.IsActive() {
		return nil, apperrors.NewInvalidStateError("manager assignment has already ended")
	}
	if hostelID != nil {
		if err := s.checkHostelInInstitute(ctx, *hostelID, manager.InstituteID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.AssignManagerHostel(ctx, managerID, hostelID); err != nil {
		return nil, err
	}

	manager.HostelID = hostelID
	resp := dto.FromManager(manager)
	return &resp, nil
}

// EndAssignment closes a manager's tenure. The account stays but can no
// longer act on the institute.
func (s *ManagerService) EndAssignment(ctx context.Context, actor Actor, managerID int64) error {
	manager, err := s.userRepo.GetManagerByID(ctx, managerID)
	if err != nil {
		return err
	}
	if err := s.checkManagerWrite(ctx, actor, manager.InstituteID); err != nil {
		return err
	}
	return s.userRepo.EndManagerAssignment(ctx, managerID)
}
