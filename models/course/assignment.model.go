package course

import "gorm.io/gorm"

// Assignment / enroll request statuses
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// Assignment holds one user's submission for a module. One row per (module, user).
type Assignment struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"not null;uniqueIndex:idx_assignment_key"`
	UserID   uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_assignment_key"`
	Link     string `json:"link" gorm:"not null"`
	Status   string `json:"status" gorm:"index;default:'pending'"` // pending, accepted, rejected
}
