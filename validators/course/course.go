package courseValidator

import (
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// CourseListRequest carries the validated listing filters
type CourseListRequest struct {
	Page     int
	Limit    int
	Search   string
	Category string
	SortDesc bool
}

// CourseList validates listing query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CourseListRequest{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Search: strings.TrimSpace(c.Query("search")),
		}

		errors := make(map[string]string)

		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			if !courseModels.ValidCategory(category) {
				errors["category"] = "Unknown category!"
			}
			reqData.Category = category
		}

		switch sort := strings.ToLower(strings.TrimSpace(c.Query("sort"))); sort {
		case "", "asc":
		case "desc":
			reqData.SortDesc = true
		default:
			errors["sort"] = "Sort must be asc or desc!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
