package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/policy"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up guest and learner course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Guest browsing: public content only, no enrollment checks
	courseGroup.Get("/guest", validators.CourseList(), controllers.GetCourses)
	courseGroup.Get("/guest-details/:courseId", validators.CourseParam(), controllers.GetCourseDetails)

	// Authenticated catalog
	courseGroup.Get("/", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleAdmin, policy.RoleUser), validators.CourseList(), controllers.GetCourses)
	courseGroup.Get("/details/:courseId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleAdmin, policy.RoleUser), validators.CourseParam(), controllers.GetCourseDetails)

	// Enrollment workflow
	courseGroup.Post("/enroll-request/:courseId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser), validators.SendEnrollRequest(), controllers.SendEnrollRequest)
	courseGroup.Get("/enroll-request", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleAdmin, policy.RoleUser), validators.EnrollRequestList(), controllers.GetEnrollRequests)
	courseGroup.Patch("/update-request/:requestId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleAdmin), validators.DecideEnrollRequest(), controllers.DecideEnrollRequest)

	// Enrolled content
	courseGroup.Get("/user/modules/:courseId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser), validators.CourseParam(), controllers.GetMyModules)
	courseGroup.Get("/user/videos/:moduleId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser), validators.ModuleParam(), controllers.GetMyModuleVideos)
	courseGroup.Patch("/video/mark-completed/:videoId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser), validators.VideoParam(), controllers.MarkVideoCompleted)

	// Quiz
	courseGroup.Get("/quiz/:moduleId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser, policy.RoleAdmin), validators.ModuleParam(), controllers.GetModuleQuiz)
	courseGroup.Post("/quiz-submit/:moduleId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser, policy.RoleAdmin), validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Assignments
	courseGroup.Patch("/assignment/submit/:moduleId", middleware.JWTMiddleware, middleware.GuardRole(policy.RoleUser), validators.SubmitAssignment(), controllers.SubmitAssignment)
}
