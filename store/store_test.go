package store

import (
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func mkCourse(name, status string) *courseModels.Course {
	return &courseModels.Course{
		Name:        name,
		Price:       10,
		Instructor:  "Ins",
		Description: "About " + name,
		Category:    courseModels.Categories[0],
		Status:      status,
	}
}

func TestUpsertCourseByNameAndInstructor(t *testing.T) {
	db := testDB(t)

	first := mkCourse("Go", courseModels.StatusPrivate)
	created, err := UpsertCourse(db, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := mkCourse("Go", "")
	second.Price = 99
	created, err = UpsertCourse(db, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// Blank status on update leaves the stored one alone.
	assert.Equal(t, courseModels.StatusPrivate, second.Status)

	var count int64
	require.NoError(t, db.Model(&courseModels.Course{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Same name under another instructor is a different course.
	third := mkCourse("Go", courseModels.StatusPublic)
	third.Instructor = "Other"
	created, err = UpsertCourse(db, third)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestUpsertPendingEnrollRequestReplacesActive(t *testing.T) {
	db := testDB(t)
	user := models.User{Name: "U", Email: "u@test.io", Role: "USER", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := mkCourse("Go", courseModels.StatusPublic)
	_, err := UpsertCourse(db, course)
	require.NoError(t, err)

	first, err := UpsertPendingEnrollRequest(db, course.ID, user.ID, "please")
	require.NoError(t, err)

	second, err := UpsertPendingEnrollRequest(db, course.ID, user.ID, "please again")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "please again", second.AdditionalNote)

	// An accepted request is settled; the next send opens a fresh one.
	require.NoError(t, db.Model(second).Update("status", courseModels.RequestAccepted).Error)
	third, err := UpsertPendingEnrollRequest(db, course.ID, user.ID, "back again")
	require.NoError(t, err)
	assert.NotEqual(t, second.ID, third.ID)
	assert.Equal(t, courseModels.RequestPending, third.Status)
}

func TestEnrollmentSetOps(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AddEnrollment(db, 1, 7))
	require.NoError(t, AddEnrollment(db, 1, 7))

	enrolled, err := IsEnrolled(db, 1, 7)
	require.NoError(t, err)
	assert.True(t, enrolled)

	var count int64
	require.NoError(t, db.Model(&courseModels.CourseEnrollment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, RemoveEnrollment(db, 1, 7))
	require.NoError(t, RemoveEnrollment(db, 1, 7))
	enrolled, err = IsEnrolled(db, 1, 7)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestMarkVideoCompletedIsIdempotent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, MarkVideoCompleted(db, 3, 7, 2))
	require.NoError(t, MarkVideoCompleted(db, 3, 7, 2))

	var count int64
	require.NoError(t, db.Model(&courseModels.VideoCompletion{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindCoursesFilters(t *testing.T) {
	db := testDB(t)
	for _, c := range []*courseModels.Course{
		mkCourse("Go Basics", courseModels.StatusPublic),
		mkCourse("Advanced Go", courseModels.StatusPublic),
		mkCourse("Secret Go", courseModels.StatusPrivate),
	} {
		_, err := UpsertCourse(db, c)
		require.NoError(t, err)
	}

	courses, total, err := FindCourses(db, CourseQuery{PublicOnly: true})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, courses, 2)

	courses, total, err = FindCourses(db, CourseQuery{Search: "ADVANCED"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, courses, 1)
	assert.Equal(t, "Advanced Go", courses[0].Name)

	courses, _, err = FindCourses(db, CourseQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
