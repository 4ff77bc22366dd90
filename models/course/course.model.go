package course

import "gorm.io/gorm"

// Course visibility statuses
const (
	StatusPrivate = "private"
	StatusPublic  = "public"
)

// Categories lists the allowed course categories
var Categories = []string{
	"Web Development",
	"Graphic Design & Illustration",
	"Marketing & Sales",
	"Communication Skills",
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Name        string  `json:"name" gorm:"index;not null;uniqueIndex:idx_course_key"`
	Price       float64 `json:"price" gorm:"not null"`
	Instructor  string  `json:"instructor" gorm:"index;not null;uniqueIndex:idx_course_key"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Category    string  `json:"category" gorm:"index;not null"`
	Status      string  `json:"status" gorm:"index;default:'private'"` // private, public
	Image       string  `json:"image" gorm:"not null"`
}

// ValidCategory reports whether c is one of the allowed categories
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
