package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func idParam(c *fiber.Ctx, name, label, localKey string) (bool, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" ID is required!", nil)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
	}

	c.Locals(localKey, uint(id))
	return true, nil
}

// CourseParam validates the :courseId path parameter
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "courseId", "Course", "courseID"); !ok {
			return err
		}
		return c.Next()
	}
}

// ModuleParam validates the :moduleId path parameter
func ModuleParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "moduleId", "Module", "moduleID"); !ok {
			return err
		}
		return c.Next()
	}
}

// VideoParam validates the :videoId path parameter
func VideoParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "videoId", "Video", "videoID"); !ok {
			return err
		}
		return c.Next()
	}
}

// RequestParam validates the :requestId path parameter
func RequestParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "requestId", "Request", "requestID"); !ok {
			return err
		}
		return c.Next()
	}
}

// AssignmentParam validates the :assignmentId path parameter
func AssignmentParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := idParam(c, "assignmentId", "Assignment", "assignmentID"); !ok {
			return err
		}
		return c.Next()
	}
}
