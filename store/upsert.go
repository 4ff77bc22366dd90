// Package store holds the persistence contract for the course catalog.
// Idempotent creation is expressed as explicit upserts whose natural key
// is part of the function contract, never assembled inline by callers.
package store

import (
	"errors"

	courseModels "lms/models/course"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertCourse inserts or updates a course keyed on (name, instructor).
// Returns true when a new row was created.
func UpsertCourse(db *gorm.DB, c *courseModels.Course) (bool, error) {
	var existing courseModels.Course
	err := db.Where("name = ? AND instructor = ?", c.Name, c.Instructor).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(c).Error
	}
	if err != nil {
		return false, err
	}

	existing.Price = c.Price
	existing.Description = c.Description
	existing.Category = c.Category
	if c.Image != "" {
		existing.Image = c.Image
	}
	if c.Status != "" {
		existing.Status = c.Status
	}
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*c = existing
	return false, nil
}

// UpsertModule inserts or updates a module keyed on (course, name).
func UpsertModule(db *gorm.DB, m *courseModels.Module) (bool, error) {
	var existing courseModels.Module
	err := db.Where("course_id = ? AND name = ?", m.CourseID, m.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(m).Error
	}
	if err != nil {
		return false, err
	}

	existing.Description = m.Description
	existing.OrderBy = m.OrderBy
	if m.Status != "" {
		existing.Status = m.Status
	}
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*m = existing
	return false, nil
}

// UpsertVideo inserts or updates a video keyed on (module, name).
func UpsertVideo(db *gorm.DB, v *courseModels.Video) (bool, error) {
	var existing courseModels.Video
	err := db.Where("module_id = ? AND name = ?", v.ModuleID, v.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(v).Error
	}
	if err != nil {
		return false, err
	}

	existing.Description = v.Description
	existing.VideoLink = v.VideoLink
	existing.OrderBy = v.OrderBy
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*v = existing
	return false, nil
}

// UpsertQuiz inserts or updates a question keyed on (module, question).
func UpsertQuiz(db *gorm.DB, q *courseModels.Quiz) (bool, error) {
	var existing courseModels.Quiz
	err := db.Where("module_id = ? AND question = ?", q.ModuleID, q.Question).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, db.Create(q).Error
	}
	if err != nil {
		return false, err
	}

	existing.OptionA = q.OptionA
	existing.OptionB = q.OptionB
	existing.OptionC = q.OptionC
	existing.OptionD = q.OptionD
	existing.Answer = q.Answer
	existing.Mark = q.Mark
	if err := db.Save(&existing).Error; err != nil {
		return false, err
	}
	*q = existing
	return false, nil
}

// UpsertPendingEnrollRequest inserts or overwrites the user's active request
// for a course, keyed on (course, user, status != accepted). A learner keeps
// exactly one non-accepted request per course; retrying replaces it.
// The predicate key rules out a SQL unique index, so the lookup and the
// write happen inside this one call instead of a conflict clause.
func UpsertPendingEnrollRequest(db *gorm.DB, courseID, userID uint, note string) (*courseModels.EnrollRequest, error) {
	var req courseModels.EnrollRequest
	err := db.Where("course_id = ? AND user_id = ? AND status <> ?",
		courseID, userID, courseModels.RequestAccepted).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		req = courseModels.EnrollRequest{
			CourseID:       courseID,
			UserID:         userID,
			AdditionalNote: note,
			Status:         courseModels.RequestPending,
		}
		return &req, db.Create(&req).Error
	}
	if err != nil {
		return nil, err
	}

	req.AdditionalNote = note
	req.Status = courseModels.RequestPending
	return &req, db.Save(&req).Error
}

// UpsertQuizResult inserts or overwrites a graded answer keyed on
// (module, user, question). Last submission wins; no history is kept.
func UpsertQuizResult(db *gorm.DB, r *courseModels.QuizResult) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "module_id"}, {Name: "user_id"}, {Name: "quiz_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "mark", "updated_at"}),
	}).Create(r).Error
}

// UpsertAssignment inserts or overwrites a submission keyed on (module, user),
// resetting its status to pending.
func UpsertAssignment(db *gorm.DB, moduleID, userID uint, link string) (*courseModels.Assignment, error) {
	a := courseModels.Assignment{
		ModuleID: moduleID,
		UserID:   userID,
		Link:     link,
		Status:   courseModels.RequestPending,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "module_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"link", "status", "updated_at"}),
	}).Create(&a).Error
	if err != nil {
		return nil, err
	}
	if err := db.Where("module_id = ? AND user_id = ?", moduleID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// AddEnrollment adds a user to a course's learner set. Duplicate adds are no-ops.
func AddEnrollment(db *gorm.DB, courseID, userID uint) error {
	e := courseModels.CourseEnrollment{CourseID: courseID, UserID: userID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&e).Error
}

// RemoveEnrollment removes a user from a course's learner set, covering the
// accepted-then-revoked case. Removing a missing row is a no-op.
func RemoveEnrollment(db *gorm.DB, courseID, userID uint) error {
	return db.Unscoped().
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Delete(&courseModels.CourseEnrollment{}).Error
}

// IsEnrolled reports whether the user is in the course's learner set.
func IsEnrolled(db *gorm.DB, courseID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&courseModels.CourseEnrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}

// MarkVideoCompleted adds the user to the video's completed set. Idempotent.
func MarkVideoCompleted(db *gorm.DB, videoID, userID, moduleID uint) error {
	vc := courseModels.VideoCompletion{VideoID: videoID, UserID: userID, ModuleID: moduleID}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&vc).Error
}
