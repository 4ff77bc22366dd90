package courseValidator

import (
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssignmentRequest carries the validated submission link
type SubmitAssignmentRequest struct {
	Link string `json:"link" validate:"required,url"`
}

// DecideAssignmentBody carries the validated assignment decision
type DecideAssignmentBody struct {
	Status string `json:"status"`
}

// SubmitAssignment validates the assignment submission payload
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "moduleId", "Module", "moduleID"); !ok {
			return err
		}

		reqData := new(SubmitAssignmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Link = strings.TrimSpace(reqData.Link)
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"link": "A valid submission link is required!",
			})
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// DecideAssignment validates the assignment decision payload
func DecideAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "assignmentId", "Assignment", "assignmentID"); !ok {
			return err
		}

		reqData := new(DecideAssignmentBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(strings.ToLower(reqData.Status))
		if reqData.Status != courseModels.RequestAccepted && reqData.Status != courseModels.RequestRejected {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported status!", nil)
		}

		c.Locals("validatedAssignmentDecision", reqData)
		return c.Next()
	}
}
