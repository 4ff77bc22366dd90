package course

import "gorm.io/gorm"

// Module represents an ordered section of a course
type Module struct {
	gorm.Model
	CourseID        uint    `json:"course_id" gorm:"index;not null;uniqueIndex:idx_module_key"`
	Name            string  `json:"name" gorm:"not null;uniqueIndex:idx_module_key"`
	Description     string  `json:"description" gorm:"type:text;not null"`
	TotalVideoCount int     `json:"total_video_count" gorm:"default:0"`
	OrderBy         float64 `json:"order_by" gorm:"not null"`
	Status          string  `json:"status" gorm:"index;default:'private'"` // private, public
}
