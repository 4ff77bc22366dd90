package course

import "gorm.io/gorm"

// Answer letters
const (
	AnswerA = "A"
	AnswerB = "B"
	AnswerC = "C"
	AnswerD = "D"
)

// Quiz represents a single multiple-choice question in a module
type Quiz struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"index;not null;uniqueIndex:idx_quiz_key"`
	Question string `json:"question" gorm:"not null;uniqueIndex:idx_quiz_key"`
	OptionA  string `json:"option_a" gorm:"not null"`
	OptionB  string `json:"option_b" gorm:"not null"`
	OptionC  string `json:"option_c" gorm:"not null"`
	OptionD  string `json:"option_d" gorm:"not null"`
	Answer   string `json:"answer" gorm:"not null"` // A, B, C, D
	Mark     int    `json:"mark" gorm:"not null"`
}

// QuizResult records one user's graded answer to one question.
// One row per (module, user, question); resubmission overwrites it.
type QuizResult struct {
	gorm.Model
	ModuleID uint   `json:"module_id" gorm:"not null;uniqueIndex:idx_quiz_result_key"`
	UserID   uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_quiz_result_key"`
	QuizID   uint   `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_result_key"`
	Answer   string `json:"answer" gorm:"not null"`
	Mark     int    `json:"mark" gorm:"not null"` // awarded mark, 0 when wrong
}
