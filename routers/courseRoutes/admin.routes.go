package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/policy"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleAdmin))

	// Catalog management, all upserts by natural key
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Patch("/update/:courseId", validators.CourseParam(), validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Post("/add-module/:courseId", validators.CourseParam(), validators.CreateModule(), controllers.AdminAddModule)
	adminGroup.Post("/add-video/:moduleId", validators.ModuleParam(), validators.CreateVideo(), controllers.AdminAddVideo)
	adminGroup.Post("/add-quiz/:moduleId", validators.ModuleParam(), validators.CreateQuiz(), controllers.AdminAddQuiz)

	// Assignment review
	adminGroup.Get("/assignment/get/:moduleId", validators.ModuleParam(), controllers.GetAssignmentSubmissions)
	adminGroup.Patch("/assignment/decide/:assignmentId", validators.DecideAssignment(), controllers.DecideAssignment)
}
