package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// CourseService handles courses and branches under an institute
type CourseService struct {
	courseRepo *repositories.CourseRepository
	branchRepo *repositories.BranchRepository
	userRepo   *repositories.UserRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	branchRepo *repositories.BranchRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		branchRepo: branchRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// GetCoursesByInstitute lists courses of an institute
func (s *CourseService) GetCoursesByInstitute(ctx context.Context, instituteID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByInstituteID(ctx, instituteID)
}

// GetCourseByID retrieves one course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateCourse creates a course under the actor's institute
func (s *CourseService) CreateCourse(ctx context.Context, actor Actor, instituteID int64, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.checkWrite(ctx, actor, instituteID); err != nil {
		return nil, err
	}

	course := &models.Course{
		InstituteID: instituteID,
		Name:        req.Name,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// UpdateCourse updates a course under the actor's institute
func (s *CourseService) UpdateCourse(ctx context.Context, actor Actor, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkWrite(ctx, actor, course.InstituteID); err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse deletes a course under the actor's institute
func (s *CourseService) DeleteCourse(ctx context.Context, actor Actor, id int64) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkWrite(ctx, actor, course.InstituteID); err != nil {
		return err
	}

	return s.courseRepo.Delete(ctx, id)
}

// GetBranchesByCourse lists branches of a course
func (s *CourseService) GetBranchesByCourse(ctx context.Context, courseID int64) ([]*models.Branch, error) {
	return s.branchRepo.GetByCourseID(ctx, courseID)
}

// GetBranchByID retrieves one branch
func (s *CourseService) GetBranchByID(ctx context.Context, id int64) (*models.Branch, error) {
	return s.branchRepo.GetByID(ctx, id)
}

// CreateBranch creates a branch under a course of the actor's institute
func (s *CourseService) CreateBranch(ctx context.Context, actor Actor, courseID int64, req *dto.CreateBranchRequest) (*models.Branch, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWrite(ctx, actor, course.InstituteID); err != nil {
		return nil, err
	}

	branch := &models.Branch{
		CourseID: courseID,
		Name:     req.Name,
		Code:     strings.ToUpper(strings.TrimSpace(req.Code)),
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// UpdateBranch updates a branch under the actor's institute
func (s *CourseService) UpdateBranch(ctx context.Context, actor Actor, id int64, req *dto.UpdateBranchRequest) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, branch.CourseID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWrite(ctx, actor, course.InstituteID); err != nil {
		return nil, err
	}

	branch.Name = req.Name
	branch.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// DeleteBranch deletes a branch under the actor's institute
func (s *CourseService) DeleteBranch(ctx context.Context, actor Actor, id int64) error {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, branch.CourseID)
	if err != nil {
		return err
	}

	if err := s.checkWrite(ctx, actor, course.InstituteID); err != nil {
		return err
	}

	return s.branchRepo.Delete(ctx, id)
}

// checkWrite allows directors of the institute and admins. Managers only
// operate hostels, not academic reference data.
func (s *CourseService) checkWrite(ctx context.Context, actor Actor, instituteID int64) error {
	if actor.Role == models.RoleManager || actor.Role == models.RoleStudent {
		return apperrors.ErrPermissionDenied
	}
	return checkInstituteScope(ctx, s.userRepo, actor, instituteID)
}
