package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/hostelmate/internal/app/models"
	"github.com/arjun/hostelmate/internal/app/repositories/user"
)

// UserRepository combines the common user, student, director and manager
// repositories behind one facade
type UserRepository struct {
	common   *user.Repository
	student  *user.StudentRepository
	director *user.DirectorRepository
	manager  *user.ManagerRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		common:   user.NewRepository(db),
		student:  user.NewStudentRepository(db),
		director: user.NewDirectorRepository(db),
		manager:  user.NewManagerRepository(db),
	}
}

// CreateUser creates a new user and returns the generated ID
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// CreateUserTx creates a user inside an existing transaction
func (r *UserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error) {
	return r.common.CreateUserTx(ctx, tx, u)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// SetVerificationCode stores a fresh verification code and its expiry
func (r *UserRepository) SetVerificationCode(ctx context.Context, userID int64, code string, expiresAt time.Time) error {
	return r.common.SetVerificationCode(ctx, userID, code, expiresAt)
}

// ActivateUser marks the account active and clears the verification code
func (r *UserRepository) ActivateUser(ctx context.Context, userID int64) error {
	return r.common.ActivateUser(ctx, userID)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return r.common.UpdatePassword(ctx, userID, hashedPassword)
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	return r.common.UpdateLastLogin(ctx, userID)
}

// UpdateProfile updates a user's basic profile information
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) error {
	return r.common.UpdateUserProfile(ctx, userID, firstName, lastName)
}

// DeleteUser deletes a user
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// CreateStudentTx creates a student profile inside an existing transaction
func (r *UserRepository) CreateStudentTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	return r.student.CreateStudentTx(ctx, tx, student)
}

// GetStudentByID retrieves a student by primary key
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.student.GetStudentByID(ctx, id)
}

// GetStudentByUserID retrieves a student by user ID
func (r *UserRepository) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.student.GetStudentByUserID(ctx, userID)
}

// EnrollNumberExists checks if an enroll number already exists
func (r *UserRepository) EnrollNumberExists(ctx context.Context, enrollNumber string) (bool, error) {
	return r.student.EnrollNumberExists(ctx, enrollNumber)
}

// ListStudentsByInstitute retrieves a page of students for an institute
func (r *UserRepository) ListStudentsByInstitute(ctx context.Context, instituteID int64, page, pageSize int) ([]*models.Student, int, error) {
	return r.student.ListStudentsByInstitute(ctx, instituteID, page, pageSize)
}

// UpdateStudentProfile updates the mutable profile fields of a student
func (r *UserRepository) UpdateStudentProfile(ctx context.Context, student *models.Student) error {
	return r.student.UpdateStudentProfile(ctx, student)
}

// CreateDirectorTx creates a director profile inside an existing transaction
func (r *UserRepository) CreateDirectorTx(ctx context.Context, tx pgx.Tx, director *models.Director) error {
	return r.director.CreateDirectorTx(ctx, tx, director)
}

// GetDirectorByUserID retrieves a director by user ID
func (r *UserRepository) GetDirectorByUserID(ctx context.Context, userID int64) (*models.Director, error) {
	return r.director.GetDirectorByUserID(ctx, userID)
}

// GetDirectorByID retrieves a director by primary key
func (r *UserRepository) GetDirectorByID(ctx context.Context, id int64) (*models.Director, error) {
	return r.director.GetDirectorByID(ctx, id)
}

// GetActiveDirectorByInstituteID retrieves the current director of an institute
func (r *UserRepository) GetActiveDirectorByInstituteID(ctx context.Context, instituteID int64) (*models.Director, error) {
	return r.director.GetActiveDirectorByInstituteID(ctx, instituteID)
}

// CreateManagerTx creates a manager profile inside an existing transaction
func (r *UserRepository) CreateManagerTx(ctx context.Context, tx pgx.Tx, manager *models.HostelManager) error {
	return r.manager.CreateManagerTx(ctx, tx, manager)
}

// GetManagerByID retrieves a manager by primary key
func (r *UserRepository) GetManagerByID(ctx context.Context, id int64) (*models.HostelManager, error) {
	return r.manager.GetManagerByID(ctx, id)
}

// GetManagerByUserID retrieves a manager by user ID
func (r *UserRepository) GetManagerByUserID(ctx context.Context, userID int64) (*models.HostelManager, error) {
	return r.manager.GetManagerByUserID(ctx, userID)
}

// ListManagersByInstitute retrieves all managers of an institute
func (r *UserRepository) ListManagersByInstitute(ctx context.Context, instituteID int64) ([]*models.HostelManager, error) {
	return r.manager.ListManagersByInstitute(ctx, instituteID)
}

// AssignManagerHostel moves a manager to a hostel, or unassigns with nil
func (r *UserRepository) AssignManagerHostel(ctx context.Context, managerID int64, hostelID *int64) error {
	return r.manager.AssignHostel(ctx, managerID, hostelID)
}

// EndManagerAssignment closes a manager's tenure
func (r *UserRepository) EndManagerAssignment(ctx context.Context, managerID int64) error {
	return r.manager.EndAssignment(ctx, managerID)
}
