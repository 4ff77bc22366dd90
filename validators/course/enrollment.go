package courseValidator

import (
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequestBody carries the validated enroll-request payload
type EnrollRequestBody struct {
	AdditionalNote string `json:"additionalNote"`
}

// DecideRequestBody carries the validated request decision
type DecideRequestBody struct {
	Status string `json:"status"`
}

// SendEnrollRequest validates the enroll-request payload
func SendEnrollRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "courseId", "Course", "courseID"); !ok {
			return err
		}

		reqData := new(EnrollRequestBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.AdditionalNote = strings.TrimSpace(reqData.AdditionalNote)
		if reqData.AdditionalNote == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"additionalNote": "Additional note is required!",
			})
		}

		c.Locals("validatedEnrollRequest", reqData)
		return c.Next()
	}
}

// EnrollRequestList validates the optional status filter
func EnrollRequestList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := strings.TrimSpace(c.Query("status"))
		switch status {
		case "", courseModels.RequestPending, courseModels.RequestAccepted, courseModels.RequestRejected:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be pending, accepted or rejected!",
			})
		}

		c.Locals("requestStatusFilter", status)
		return c.Next()
	}
}

// DecideEnrollRequest validates the request decision payload. The decision
// value itself is checked in the controller so an unsupported status is
// reported as an unsupported state, not a missing field.
func DecideEnrollRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "requestId", "Request", "requestID"); !ok {
			return err
		}

		reqData := new(DecideRequestBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.TrimSpace(strings.ToLower(reqData.Status))
		if reqData.Status == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status is required!",
			})
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
