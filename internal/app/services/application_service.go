package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// ApplicationService handles hostel application submission and review
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	allocationRepo  *repositories.AllocationRepository
	hostelRepo      *repositories.HostelRepository
	userRepo        *repositories.UserRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService instance
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	allocationRepo *repositories.AllocationRepository,
	hostelRepo *repositories.HostelRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		allocationRepo:  allocationRepo,
		hostelRepo:      hostelRepo,
		userRepo:        userRepo,
		logger:          logger.With().Str("service", "application").Logger(),
	}
}

// SubmitApplication files a hostel application for the calling student.
// Course and branch are snapshotted from the student profile so later
// profile edits do not rewrite history.
func (s *ApplicationService) SubmitApplication(ctx context.Context, actor Actor, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !student.IsActiveStudent {
		return nil, apperrors.NewInvalidStateError("student account is not active")
	}

	if existing, err := s.applicationRepo.GetOpenByStudentID(ctx, student.ID); err == nil && existing != nil {
		return nil, apperrors.ErrActiveApplicationExists
	} else if err != nil && !errors.Is(err, apperrors.ErrApplicationNotFound) {
		return nil, err
	}

	if allocation, err := s.allocationRepo.GetActiveByStudentID(ctx, student.ID); err == nil && allocation != nil {
		return nil, apperrors.ErrStudentAlreadyAllocated
	} else if err != nil && !errors.Is(err, apperrors.ErrAllocationNotFound) {
		return nil, err
	}

	if req.PreferredHostelID != nil {
		hostel, err := s.hostelRepo.GetByID(ctx, *req.PreferredHostelID)
		if err != nil {
			return nil, err
		}
		if hostel.InstituteID != student.InstituteID {
			return nil, apperrors.NewBadRequestError("preferred hostel belongs to another institute")
		}
		if !hostel.IsActive {
			return nil, apperrors.NewBadRequestError("preferred hostel is not accepting applications")
		}
	}

	application := &models.HostelApplication{
		StudentID:         student.ID,
		InstituteID:       student.InstituteID,
		CourseID:          student.CourseID,
		BranchID:          student.BranchID,
		PreferredHostelID: req.PreferredHostelID,
		PreferredRoomType: models.PreferredRoomType(req.PreferredRoomType),
		ReasonForHostel:   req.ReasonForHostel,
		Status:            models.ApplicationPending,
		SubmittedAt:       time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("application_id", application.ID).
		Int64("student_id", student.ID).
		Msg("Hostel application submitted")

	resp := dto.FromApplication(application)
	return &resp, nil
}

// GetApplicationByID returns one application. Students see only their own;
// staff see their institute's.
func (s *ApplicationService) GetApplicationByID(ctx context.Context, actor Actor, id int64) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRead(ctx, actor, application); err != nil {
		return nil, err
	}
	resp := dto.FromApplication(application)
	return &resp, nil
}

// ListApplications returns applications visible to the actor, paginated.
// Students get their own history; staff get their institute's queue.
func (s *ApplicationService) ListApplications(ctx context.Context, actor Actor, filter repositories.ApplicationFilter) (*dto.ApplicationListResponse, error) {
	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		filter.InstituteID = 0
		filter.StudentID = student.ID
	} else {
		scope, err := instituteScope(ctx, s.userRepo, actor)
		if err != nil {
			return nil, err
		}
		if scope != 0 {
			filter.InstituteID = scope
		}
	}

	applications, total, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ApplicationListResponse{
		Applications: make([]dto.ApplicationResponse, 0, len(applications)),
		Pagination:   dto.NewPaginationInfo(filter.Page, filter.PageSize, total),
	}
	for _, application := range applications {
		resp.Applications = append(resp.Applications, dto.FromApplication(application))
	}
	return resp, nil
}

// ReviewApplication records a staff decision. The allowed moves are pending
// to approved, rejected or waitlisted, and waitlisted to approved or
// rejected; everything else fails as an invalid transition.
func (s *ApplicationService) ReviewApplication(ctx context.Context, actor Actor, id int64, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, application.InstituteID); err != nil {
		return nil, err
	}

	next := models.ApplicationStatus(req.Status)
	if !application.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition
	}

	reviewerID := actor.UserID
	if err := s.applicationRepo.UpdateStatus(ctx, id, application.Status, next, &reviewerID, req.Remarks); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("application_id", id).
		Str("from", string(application.Status)).
		Str("to", string(next)).
		Int64("reviewed_by", reviewerID).
		Msg("Application reviewed")

	now := time.Now()
	application.Status = next
	application.ReviewedByID = &reviewerID
	application.RemarksByReviewer = req.Remarks
	application.ReviewedAt = &now

	resp := dto.FromApplication(application)
	return &resp, nil
}

// CancelApplication withdraws the caller's own application. Only pending and
// waitlisted applications can be cancelled.
func (s *ApplicationService) CancelApplication(ctx context.Context, actor Actor, id int64) (*dto.ApplicationResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.StudentID != student.ID {
		return nil, apperrors.ErrApplicationNotFound
	}
	if application.Status != models.ApplicationPending && application.Status != models.ApplicationWaitlisted {
		return nil, apperrors.ErrInvalidTransition
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, application.Status, models.ApplicationCancelled, nil, nil); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("application_id", id).
		Int64("student_id", student.ID).
		Msg("Application cancelled by student")

	application.Status = models.ApplicationCancelled
	resp := dto.FromApplication(application)
	return &resp, nil
}

// checkRead verifies the actor may view the application.
func (s *ApplicationService) checkRead(ctx context.Context, actor Actor, application *models.HostelApplication) error {
	if actor.Role == models.RoleStudent {
		student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if application.StudentID != student.ID {
			return apperrors.ErrApplicationNotFound
		}
		return nil
	}
	return checkInstituteScope(ctx, s.userRepo, actor, application.InstituteID)
}
