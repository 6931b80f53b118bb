package models

import "time"

// ApplicationStatus defines the review state of a hostel application
type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationApproved   ApplicationStatus = "approved"
	ApplicationRejected   ApplicationStatus = "rejected"
	ApplicationCancelled  ApplicationStatus = "cancelled"
	ApplicationWaitlisted ApplicationStatus = "waitlisted"
)

// Valid reports whether the status is known.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected,
		ApplicationCancelled, ApplicationWaitlisted:
		return true
	}
	return false
}

// IsOpen reports whether the application still counts against the
// one-active-application-per-student rule.
func (s ApplicationStatus) IsOpen() bool {
	return s == ApplicationPending || s == ApplicationApproved || s == ApplicationWaitlisted
}

// IsTerminal reports whether no further transition is permitted.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected || s == ApplicationCancelled
}

// CanTransitionTo reports whether a staff or student action may move the
// application from s to next. Cancellation is only reachable from the
// non-terminal states; waitlisting only from pending.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case ApplicationPending:
		return next == ApplicationApproved || next == ApplicationRejected ||
			next == ApplicationWaitlisted || next == ApplicationCancelled
	case ApplicationWaitlisted:
		return next == ApplicationApproved || next == ApplicationRejected ||
			next == ApplicationCancelled
	}
	return false
}

// PreferredRoomType defines the room preference on an application
type PreferredRoomType string

const (
	PreferSingle PreferredRoomType = "single"
	PreferDouble PreferredRoomType = "double"
	PreferTriple PreferredRoomType = "triple"
	PreferAny    PreferredRoomType = "any"
)

// Valid reports whether the preference is known.
func (t PreferredRoomType) Valid() bool {
	switch t {
	case PreferSingle, PreferDouble, PreferTriple, PreferAny:
		return true
	}
	return false
}

// HostelApplication defines a student's request for hostel housing based on
// the 'hostel_applications' table. Course and branch are snapshotted from the
// student profile at submission time and never updated afterwards.
type HostelApplication struct {
	ID                int64             `json:"id" db:"id"`
	StudentID         int64             `json:"studentId" db:"student_id"`
	InstituteID       int64             `json:"instituteId" db:"institute_id"`
	CourseID          *int64            `json:"courseId,omitempty" db:"course_id"`
	BranchID          *int64            `json:"branchId,omitempty" db:"branch_id"`
	PreferredHostelID *int64            `json:"preferredHostelId,omitempty" db:"preferred_hostel_id"`
	PreferredRoomType PreferredRoomType `json:"preferredRoomType" db:"preferred_room_type"`
	ReasonForHostel   *string           `json:"reasonForHostel,omitempty" db:"reason_for_hostel"`
	Status            ApplicationStatus `json:"status" db:"status"`
	ReviewedByID      *int64            `json:"reviewedById,omitempty" db:"reviewed_by_id"`
	RemarksByReviewer *string           `json:"remarksByReviewer,omitempty" db:"remarks_by_reviewer"`
	SubmittedAt       time.Time         `json:"submittedAt" db:"submitted_at"`
	ReviewedAt        *time.Time        `json:"reviewedAt,omitempty" db:"reviewed_at"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`

	Student         *Student `json:"student,omitempty"`
	PreferredHostel *Hostel  `json:"preferredHostel,omitempty"`
	ReviewedBy      *User    `json:"reviewedBy,omitempty"`
}
