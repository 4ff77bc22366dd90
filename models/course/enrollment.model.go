package course

import "gorm.io/gorm"

// EnrollRequest is a user's ask to join a course, subject to admin approval.
// A user keeps at most one non-accepted request per course.
type EnrollRequest struct {
	gorm.Model
	CourseID       uint   `json:"course_id" gorm:"index;not null"`
	UserID         uint   `json:"user_id" gorm:"index;not null"`
	AdditionalNote string `json:"additional_note" gorm:"type:text;not null"`
	Status         string `json:"status" gorm:"index;default:'pending'"` // pending, accepted, rejected
}

// CourseEnrollment is approved membership of a user in a course.
// One row per (course, user).
type CourseEnrollment struct {
	gorm.Model
	CourseID uint `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_key"`
	UserID   uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enrollment_key"`
}
