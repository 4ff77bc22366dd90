package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest carries the validated multipart course fields
type CreateCourseRequest struct {
	Name        string
	Price       float64
	Instructor  string
	Description string
	Category    string
}

// UpdateCourseRequest carries the optional course update fields
type UpdateCourseRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Instructor  string  `json:"instructor"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
}

// CreateModuleRequest is the validated add-module payload
type CreateModuleRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=5"`
	OrderBy     float64 `json:"orderBy" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,oneof=private public"`
}

// CreateVideoRequest is the validated add-video payload. Name may be blank;
// the controller backfills it from the video's own title.
type CreateVideoRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	VideoLink   string  `json:"videoLink" validate:"required"`
	OrderBy     float64 `json:"orderBy" validate:"required"`
}

// CreateQuizRequest is the validated add-quiz payload
type CreateQuizRequest struct {
	Question string `json:"question" validate:"required,min=5"`
	OptionA  string `json:"optionA" validate:"required"`
	OptionB  string `json:"optionB" validate:"required"`
	OptionC  string `json:"optionC" validate:"required"`
	OptionD  string `json:"optionD" validate:"required"`
	Answer   string `json:"answer" validate:"required,oneof=A B C D"`
	Mark     int    `json:"mark" validate:"required,gt=0"`
}

// CreateCourseAdmin validates the multipart create-course form
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CreateCourseRequest{
			Name:        strings.TrimSpace(c.FormValue("name")),
			Instructor:  strings.TrimSpace(c.FormValue("instructor")),
			Description: strings.TrimSpace(c.FormValue("description")),
			Category:    strings.TrimSpace(c.FormValue("category")),
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Instructor == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if !courseModels.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown category!"
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
		if err != nil || price < 0 {
			errors["price"] = "Price must be a non-negative number!"
		}
		reqData.Price = price

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates the partial course update form
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &UpdateCourseRequest{
			Name:        strings.TrimSpace(c.FormValue("name")),
			Instructor:  strings.TrimSpace(c.FormValue("instructor")),
			Description: strings.TrimSpace(c.FormValue("description")),
			Category:    strings.TrimSpace(c.FormValue("category")),
			Status:      strings.TrimSpace(c.FormValue("status")),
		}

		errors := make(map[string]string)

		if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				errors["price"] = "Price must be a non-negative number!"
			}
			reqData.Price = price
		}
		if reqData.Category != "" && !courseModels.ValidCategory(reqData.Category) {
			errors["category"] = "Unknown category!"
		}
		if reqData.Status != "" && reqData.Status != courseModels.StatusPrivate && reqData.Status != courseModels.StatusPublic {
			errors["status"] = "Status must be private or public!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateModule validates the add-module payload
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name must be at least 2 characters long!"
				case "Description":
					errors["description"] = "Description must be at least 5 characters long!"
				case "OrderBy":
					errors["orderBy"] = "Order position is required!"
				case "Status":
					errors["status"] = "Status must be private or public!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// CreateVideo validates the add-video payload
func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateVideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "VideoLink":
					errors["videoLink"] = "Video link is required!"
				case "OrderBy":
					errors["orderBy"] = "Order position is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// CreateQuiz validates the add-quiz payload
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Question":
					errors["question"] = "Question must be at least 5 characters long!"
				case "OptionA", "OptionB", "OptionC", "OptionD":
					errors["options"] = "All four options are required!"
				case "Answer":
					errors["answer"] = "Answer must be one of A, B, C, D!"
				case "Mark":
					errors["mark"] = "Mark must be greater than 0!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
