package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuizAnswer is one submitted answer
type QuizAnswer struct {
	QuizID uint   `json:"quizId"`
	Answer string `json:"answer"`
}

// SubmitQuizRequest carries the validated full answer set
type SubmitQuizRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

// SubmitQuiz validates the quiz submission payload
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "moduleId", "Module", "moduleID"); !ok {
			return err
		}

		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "Answers are required!",
			})
		}

		errors := make(map[string]string)
		for i := range reqData.Answers {
			reqData.Answers[i].Answer = strings.ToUpper(strings.TrimSpace(reqData.Answers[i].Answer))
			if reqData.Answers[i].QuizID == 0 {
				errors["answers"] = "Each answer needs a question id!"
			}
			switch reqData.Answers[i].Answer {
			case "A", "B", "C", "D":
			default:
				errors["answers"] = "Each answer must be one of A, B, C, D!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}
