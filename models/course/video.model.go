package course

import "gorm.io/gorm"

// Video represents one video inside a module
type Video struct {
	gorm.Model
	ModuleID    uint    `json:"module_id" gorm:"index;not null;uniqueIndex:idx_video_key"`
	Name        string  `json:"name" gorm:"not null;uniqueIndex:idx_video_key"`
	Description string  `json:"description" gorm:"type:text"`
	VideoLink   string  `json:"video_link" gorm:"not null"`
	OrderBy     float64 `json:"order_by" gorm:"not null"`
}

// VideoCompletion marks a video as watched by a user. One row per (video, user).
type VideoCompletion struct {
	gorm.Model
	VideoID  uint `json:"video_id" gorm:"not null;uniqueIndex:idx_video_completion_key"`
	UserID   uint `json:"user_id" gorm:"index;not null;uniqueIndex:idx_video_completion_key"`
	ModuleID uint `json:"module_id" gorm:"index;not null"` // denormalized for progress counts
}
