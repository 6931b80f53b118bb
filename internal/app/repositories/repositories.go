package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository               *UserRepository
	TokenRepository              *TokenRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
	InstituteRepository          *InstituteRepository
	CourseRepository             *CourseRepository
	BranchRepository             *BranchRepository
	HostelRepository             *HostelRepository
	RoomRepository               *RoomRepository
	ApplicationRepository        *ApplicationRepository
	AllocationRepository         *AllocationRepository
	PaymentRepository            *PaymentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:               NewUserRepository(db),
		TokenRepository:              NewTokenRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
		InstituteRepository:          NewInstituteRepository(db),
		CourseRepository:             NewCourseRepository(db),
		BranchRepository:             NewBranchRepository(db),
		HostelRepository:             NewHostelRepository(db),
		RoomRepository:               NewRoomRepository(db),
		ApplicationRepository:        NewApplicationRepository(db),
		AllocationRepository:         NewAllocationRepository(db),
		PaymentRepository:            NewPaymentRepository(db),
	}
}
