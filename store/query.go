package store

import (
	"strings"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CourseQuery is a typed course listing filter. Zero values mean "no filter";
// Page and Limit are normalized by Normalize.
type CourseQuery struct {
	Search     string // matched case-insensitively against name, description, category
	Category   string
	PublicOnly bool // hide private courses (non-admin and guest viewers)
	SortDesc   bool // newest first when set
	Page       int
	Limit      int
}

// Normalize clamps pagination to sane defaults.
func (q *CourseQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
}

func (q CourseQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

func (q CourseQuery) apply(db *gorm.DB) *gorm.DB {
	tx := db.Model(&courseModels.Course{})
	if q.PublicOnly {
		tx = tx.Where("status = ?", courseModels.StatusPublic)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return tx
}

// FindCourses runs the query and returns a page of courses plus the total
// matching count.
func FindCourses(db *gorm.DB, q CourseQuery) ([]courseModels.Course, int64, error) {
	q.Normalize()

	var total int64
	if err := q.apply(db).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at asc"
	if q.SortDesc {
		order = "created_at desc"
	}

	var courses []courseModels.Course
	err := q.apply(db).
		Order(order).
		Offset(q.offset()).
		Limit(q.Limit).
		Find(&courses).Error
	return courses, total, err
}

// PageCount computes the number of pages for a total at the given limit.
func PageCount(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
