package models

// Institute represents a tenant organization owning courses and hostels
type Institute struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"` // Unique, case-insensitive
	Address       string  `json:"address" db:"address"`
	City          string  `json:"city" db:"city"`
	State         string  `json:"state" db:"state"`
	Pincode       string  `json:"pincode" db:"pincode"`
	ContactEmail  *string `json:"contactEmail,omitempty" db:"contact_email"`
	ContactNumber *string `json:"contactNumber,omitempty" db:"contact_number"`
	Website       *string `json:"website,omitempty" db:"website"`
}

// Course represents a course offered by an institute
type Course struct {
	ID          int64      `json:"id" db:"id"`
	InstituteID int64      `json:"instituteId" db:"institute_id"`
	Name        string     `json:"name" db:"name"`
	Code        string     `json:"code" db:"code"` // Unique within the institute
	Institute   *Institute `json:"institute,omitempty"`
}

// Branch represents a branch of study within a course
type Branch struct {
	ID       int64   `json:"id" db:"id"`
	CourseID int64   `json:"courseId" db:"course_id"`
	Name     string  `json:"name" db:"name"`
	Code     string  `json:"code" db:"code"` // Unique within the course
	Course   *Course `json:"course,omitempty"`
}
