package services

import (
	"context"
	"fmt"
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

// DirectorService handles director registration and institute founding
type DirectorService struct {
	userRepo      *repositories.UserRepository
	instituteRepo *repositories.InstituteRepository
	database      *db.PostgresDB
	logger        zerolog.Logger
}

// NewDirectorService creates a new DirectorService
func NewDirectorService(
	userRepo *repositories.UserRepository,
	instituteRepo *repositories.InstituteRepository,
	database *db.PostgresDB,
	logger zerolog.Logger,
) *DirectorService {
	return &DirectorService{
		userRepo:      userRepo,
		instituteRepo: instituteRepo,
		database:      database,
		logger:        logger,
	}
}

// RegisterDirector creates the institute, the director's user account and the
// director profile in a single transaction. Nothing is committed if any step
// fails. The account is active immediately since founding an institute is a
// vetted back-office action, not a public signup.
func (s *DirectorService) RegisterDirector(ctx context.Context, req *dto.RegisterDirectorRequest) (*dto.RegisterDirectorResponse, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.CheckPasswordStrength(req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			"password must be at least 8 characters and contain a letter and a digit")
	}
	if !validation.IsValidPincode(req.Institute.Pincode) || !validation.IsValidPincode(req.Pincode) {
		return nil, apperrors.NewBadRequestError("pincode must be 6 digits")
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	exists, err = s.instituteRepo.NameExists(ctx, req.Institute.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking institute name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrInstituteAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	institute := &models.Institute{
		Name:          strings.TrimSpace(req.Institute.Name),
		Address:       req.Institute.Address,
		City:          req.Institute.City,
		State:         req.Institute.State,
		Pincode:       req.Institute.Pincode,
		ContactEmail:  req.Institute.ContactEmail,
		ContactNumber: req.Institute.ContactNumber,
		Website:       req.Institute.Website,
	}

	user := &models.User{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  models.RoleDirector,
		IsActive:  true,
	}

	director := &models.Director{
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
		if err := s.instituteRepo.CreateTx(ctx, tx, institute); err != nil {
			return err
		}

		userID, err := s.userRepo.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		user.ID = userID

		director.UserID = userID
		director.InstituteID = institute.ID
		return s.userRepo.CreateDirectorTx(ctx, tx, director)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("instituteID", institute.ID).
		Int64("directorID", director.ID).
		Msg("Institute founded with director account")

	return &dto.RegisterDirectorResponse{
		Institute: dto.FromInstitute(institute),
		Director:  dto.FromDirector(director),
		User:      dto.FromUser(user),
	}, nil
}
