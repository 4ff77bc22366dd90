package controllers

import (
	"fmt"

	"lms/middleware"
	courseModels "lms/models/course"
	"lms/policy"
	"lms/store"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

type quizQuestionView struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	Mark     int    `json:"mark"`
	Answer   string `json:"answer,omitempty"` // admins only
}

type questionResult struct {
	QuizID    uint   `json:"quiz_id"`
	Submitted string `json:"submitted"`
	Correct   bool   `json:"correct"`
	Mark      int    `json:"mark"`
}

// GetModuleQuiz lists a module's questions. The correct letter is stripped
// for non-admin viewers.
func GetModuleQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role := viewerRole(c)

	moduleID := c.Locals("moduleID").(uint)

	module, ok, err := loadAccessibleModule(c, moduleID, userID, role)
	if !ok {
		return err
	}

	var quizzes []courseModels.Quiz
	if err := db().Where("module_id = ?", module.ID).Order("created_at asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	result := make([]quizQuestionView, len(quizzes))
	for i, quiz := range quizzes {
		result[i] = quizQuestionView{
			ID:       quiz.ID,
			Question: quiz.Question,
			OptionA:  quiz.OptionA,
			OptionB:  quiz.OptionB,
			OptionC:  quiz.OptionC,
			OptionD:  quiz.OptionD,
			Mark:     quiz.Mark,
		}
		if role == policy.RoleAdmin {
			result[i].Answer = quiz.Answer
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", result)
}

// SubmitQuiz grades a full answer set for a module. Every question must be
// answered in one submission; each graded answer is persisted as one
// QuizResult keyed (module, user, question), so resubmitting overwrites the
// prior run entirely.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)

	module, ok, err := loadAccessibleModule(c, moduleID, userID, viewerRole(c))
	if !ok {
		return err
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*courseValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var quizzes []courseModels.Quiz
	if err := db().Where("module_id = ?", module.ID).Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}
	if len(quizzes) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This module has no quiz!", nil)
	}

	if len(reqData.Answers) != len(quizzes) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"answers": fmt.Sprintf("All %d questions must be answered in a single submission!", len(quizzes)),
		})
	}

	questionByID := make(map[uint]courseModels.Quiz, len(quizzes))
	for _, quiz := range quizzes {
		questionByID[quiz.ID] = quiz
	}

	var (
		totalMarks       int
		earnedMarks      int
		correctAnswers   int
		incorrectAnswers int
		results          = make([]questionResult, 0, len(reqData.Answers))
	)

	seen := make(map[uint]bool, len(reqData.Answers))
	for _, answer := range reqData.Answers {
		if _, known := questionByID[answer.QuizID]; !known {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				fmt.Sprintf("Question %d does not belong to this module!", answer.QuizID), nil)
		}
		if seen[answer.QuizID] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": fmt.Sprintf("Question %d was answered more than once!", answer.QuizID),
			})
		}
		seen[answer.QuizID] = true
	}

	for _, answer := range reqData.Answers {
		quiz := questionByID[answer.QuizID]

		awarded := 0
		correct := quiz.Answer == answer.Answer
		if correct {
			awarded = quiz.Mark
			correctAnswers++
		} else {
			incorrectAnswers++
		}
		totalMarks += quiz.Mark
		earnedMarks += awarded

		if err := store.UpsertQuizResult(db(), &courseModels.QuizResult{
			ModuleID: module.ID,
			UserID:   userID,
			QuizID:   quiz.ID,
			Answer:   answer.Answer,
			Mark:     awarded,
		}); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz result!", nil)
		}

		results = append(results, questionResult{
			QuizID:    quiz.ID,
			Submitted: answer.Answer,
			Correct:   correct,
			Mark:      awarded,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", fiber.Map{
		"totalMarks":       totalMarks,
		"earnedMarks":      earnedMarks,
		"correctAnswers":   correctAnswers,
		"incorrectAnswers": incorrectAnswers,
		"results":          results,
	})
}
