package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/validation"
)

// StudentService handles student profile reads and updates
type StudentService struct {
	userRepo   *repositories.UserRepository
	courseRepo *repositories.CourseRepository
	branchRepo *repositories.BranchRepository
	logger     zerolog.Logger
}

// NewStudentService creates a new StudentService instance
func NewStudentService(
	userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository,
	branchRepo *repositories.BranchRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		branchRepo: branchRepo,
		logger:     logger.With().Str("service", "student").Logger(),
	}
}

// GetStudentByID returns one student profile. Students see only their own;
// staff see their institute's.
func (s *StudentService) GetStudentByID(ctx context.Context, actor Actor, id int64) (*dto.StudentResponse, error) {
	student, err := s.userRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleStudent {
		if student.UserID != actor.UserID {
			return nil, apperrors.ErrStudentNotFound
		}
	} else if err := checkInstituteScope(ctx, s.userRepo, actor, student.InstituteID); err != nil {
		return nil, err
	}

	if user, err := s.userRepo.GetUserByID(ctx, student.UserID); err == nil {
		student.User = user
	}
	resp := dto.FromStudent(student)
	return &resp, nil
}

// ListStudents returns the students of an institute, paginated. Staff only.
func (s *StudentService) ListStudents(ctx context.Context, actor Actor, instituteID int64, page, pageSize int) (*dto.StudentListResponse, error) {
	if actor.Role == models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}
	instituteID, err := resolveInstituteID(ctx, s.userRepo, actor, instituteID)
	if err != nil {
		return nil, err
	}
	if err := checkInstituteScope(ctx, s.userRepo, actor, instituteID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	students, total, err := s.userRepo.ListStudentsByInstitute(ctx, instituteID, page, pageSize)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentListResponse{
		Students:   make([]dto.StudentResponse, 0, len(students)),
		Pagination: dto.NewPaginationInfo(page, pageSize, total),
	}
	for _, student := range students {
		if user, err := s.userRepo.GetUserByID(ctx, student.UserID); err == nil {
			student.User = user
		}
		resp.Students = append(resp.Students, dto.FromStudent(student))
	}
	return resp, nil
}

// UpdateProfile updates the calling student's own profile. Enroll number,
// registration number and institute are fixed after registration.
func (s *StudentService) UpdateProfile(ctx context.Context, actor Actor, req *dto.UpdateStudentProfileRequest) (*dto.StudentResponse, error) {
	if actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	student, err := s.userRepo.GetStudentByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if req.Pincode != nil && !validation.IsValidPincode(*req.Pincode) {
		return nil, apperrors.NewBadRequestError("invalid pincode format")
	}

	if req.CourseID != nil {
		course, err := s.courseRepo.GetByID(ctx, *req.CourseID)
		if err != nil {
			return nil, err
		}
		if course.InstituteID != student.InstituteID {
			return nil, apperrors.NewBadRequestError("course belongs to another institute")
		}
		student.CourseID = req.CourseID
	}
	if req.BranchID != nil {
		if student.CourseID == nil {
			return nil, apperrors.NewBadRequestError("branch requires a course")
		}
		branch, err := s.branchRepo.GetByID(ctx, *req.BranchID)
		if err != nil {
			return nil, err
		}
		if branch.CourseID != *student.CourseID {
			return nil, apperrors.NewBadRequestError("branch belongs to another course")
		}
		student.BranchID = req.BranchID
	}

	if req.DateOfBirth != nil {
		dob, err := parseOptionalDate(req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid date of birth, expected YYYY-MM-DD")
		}
		student.DateOfBirth = dob
	}
	if req.Gender != nil {
		student.Gender = req.Gender
	}
	if req.PhoneNumber != nil {
		student.PhoneNumber = req.PhoneNumber
	}
	if req.YearOfStudy != nil {
		student.YearOfStudy = req.YearOfStudy
	}
	if req.AdmissionYear != nil {
		student.AdmissionYear = req.AdmissionYear
	}
	if req.AddressLine1 != nil {
		student.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != nil {
		student.AddressLine2 = req.AddressLine2
	}
	if req.City != nil {
		student.City = req.City
	}
	if req.State != nil {
		student.State = req.State
	}
	if req.Pincode != nil {
		student.Pincode = req.Pincode
	}

	if err := s.userRepo.UpdateStudentProfile(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("student_id", student.ID).Msg("Student profile updated")

	if user, err := s.userRepo.GetUserByID(ctx, student.UserID); err == nil {
		student.User = user
	}
	resp := dto.FromStudent(student)
	return &resp, nil
}
