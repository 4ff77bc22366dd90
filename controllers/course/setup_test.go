package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}
	return db
}

func authAs(user models.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		c.Locals("role", user.Role)
		return c.Next()
	}
}

// newApp wires the course routes the way the routers package does, with the
// JWT and role middlewares replaced by a canned identity. A nil viewer is a
// guest.
func newApp(viewer *models.User) *fiber.App {
	auth := func(c *fiber.Ctx) error { return c.Next() }
	if viewer != nil {
		auth = authAs(*viewer)
	}

	app := fiber.New()
	app.Get("/course/guest", validators.CourseList(), GetCourses)
	app.Get("/course/guest-details/:courseId", validators.CourseParam(), GetCourseDetails)
	app.Get("/course", auth, validators.CourseList(), GetCourses)
	app.Get("/course/details/:courseId", auth, validators.CourseParam(), GetCourseDetails)
	app.Post("/course/enroll-request/:courseId", auth, validators.SendEnrollRequest(), SendEnrollRequest)
	app.Get("/course/enroll-request", auth, validators.EnrollRequestList(), GetEnrollRequests)
	app.Patch("/course/update-request/:requestId", auth, validators.DecideEnrollRequest(), DecideEnrollRequest)
	app.Get("/course/user/modules/:courseId", auth, validators.CourseParam(), GetMyModules)
	app.Get("/course/user/videos/:moduleId", auth, validators.ModuleParam(), GetMyModuleVideos)
	app.Patch("/course/video/mark-completed/:videoId", auth, validators.VideoParam(), MarkVideoCompleted)
	app.Get("/course/quiz/:moduleId", auth, validators.ModuleParam(), GetModuleQuiz)
	app.Post("/course/quiz-submit/:moduleId", auth, validators.SubmitQuiz(), SubmitQuiz)
	app.Patch("/course/assignment/submit/:moduleId", auth, validators.SubmitAssignment(), SubmitAssignment)

	app.Post("/admin/course/add-module/:courseId", auth, validators.CourseParam(), validators.CreateModule(), AdminAddModule)
	app.Post("/admin/course/add-video/:moduleId", auth, validators.ModuleParam(), validators.CreateVideo(), AdminAddVideo)
	app.Post("/admin/course/add-quiz/:moduleId", auth, validators.ModuleParam(), validators.CreateQuiz(), AdminAddQuiz)
	app.Get("/admin/course/assignment/get/:moduleId", auth, validators.ModuleParam(), GetAssignmentSubmissions)
	app.Patch("/admin/course/assignment/decide/:assignmentId", auth, validators.DecideAssignment(), DecideAssignment)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Role: role, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, name, status string) courseModels.Course {
	t.Helper()
	course := courseModels.Course{
		Name:        name,
		Price:       49,
		Instructor:  "Jane Doe",
		Description: "A course about " + name,
		Category:    courseModels.Categories[0],
		Status:      status,
		Image:       "/uploads/" + name + ".png",
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedModule(t *testing.T, db *gorm.DB, courseID uint, name, status string, totalVideos int) courseModels.Module {
	t.Helper()
	module := courseModels.Module{
		CourseID:        courseID,
		Name:            name,
		Description:     "Module " + name,
		TotalVideoCount: totalVideos,
		OrderBy:         1,
		Status:          status,
	}
	require.NoError(t, db.Create(&module).Error)
	return module
}

func seedVideo(t *testing.T, db *gorm.DB, moduleID uint, name string, order float64) courseModels.Video {
	t.Helper()
	video := courseModels.Video{
		ModuleID:  moduleID,
		Name:      name,
		VideoLink: "https://youtu.be/dQw4w9WgXcQ",
		OrderBy:   order,
	}
	require.NoError(t, db.Create(&video).Error)
	return video
}

func seedQuiz(t *testing.T, db *gorm.DB, moduleID uint, question, answer string, mark int) courseModels.Quiz {
	t.Helper()
	quiz := courseModels.Quiz{
		ModuleID: moduleID,
		Question: question,
		OptionA:  "a", OptionB: "b", OptionC: "c", OptionD: "d",
		Answer: answer,
		Mark:   mark,
	}
	require.NoError(t, db.Create(&quiz).Error)
	return quiz
}

func enroll(t *testing.T, db *gorm.DB, courseID, userID uint) {
	t.Helper()
	require.NoError(t, db.Create(&courseModels.CourseEnrollment{CourseID: courseID, UserID: userID}).Error)
}
