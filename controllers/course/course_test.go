package controllers

import (
	"fmt"
	"testing"

	courseModels "lms/models/course"
	"lms/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResponse struct {
	Courses    []courseModels.Course `json:"courses"`
	Pagination struct {
		Page      int   `json:"page"`
		Limit     int   `json:"limit"`
		TotalData int64 `json:"totalData"`
		PageCount int   `json:"pageCount"`
	} `json:"pagination"`
}

func TestPrivateCourseHiddenFromNonAdmins(t *testing.T) {
	conn := setupDB(t)
	user := seedUser(t, conn, "U", "u@test.io", policy.RoleUser)
	admin := seedUser(t, conn, "A", "a@test.io", policy.RoleAdmin)
	seedCourse(t, conn, "Visible", courseModels.StatusPublic)
	seedCourse(t, conn, "Hidden", courseModels.StatusPrivate)

	var data listResponse

	code, env := doRequest(t, newApp(nil), "GET", "/course/guest", nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &data)
	require.Len(t, data.Courses, 1)
	assert.Equal(t, "Visible", data.Courses[0].Name)

	code, env = doRequest(t, newApp(&user), "GET", "/course", nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &data)
	assert.Len(t, data.Courses, 1)

	code, env = doRequest(t, newApp(&admin), "GET", "/course", nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &data)
	assert.Len(t, data.Courses, 2)
}

func TestCourseListSearchAndPagination(t *testing.T) {
	conn := setupDB(t)
	for i := 0; i < 3; i++ {
		seedCourse(t, conn, fmt.Sprintf("Go Course %d", i), courseModels.StatusPublic)
	}
	seedCourse(t, conn, "Rust Primer", courseModels.StatusPublic)

	var data listResponse

	code, env := doRequest(t, newApp(nil), "GET", "/course/guest?search=go+course", nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &data)
	assert.Len(t, data.Courses, 3)

	code, env = doRequest(t, newApp(nil), "GET", "/course/guest?page=2&limit=3", nil)
	require.Equal(t, fiber.StatusOK, code)
	decodeData(t, env, &data)
	assert.Len(t, data.Courses, 1)
	assert.EqualValues(t, 4, data.Pagination.TotalData)
	assert.Equal(t, 2, data.Pagination.PageCount)
}

func TestCourseListRejectsUnknownCategory(t *testing.T) {
	setupDB(t)

	code, _ := doRequest(t, newApp(nil), "GET", "/course/guest?category=Cooking", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestCourseDetailVisibility(t *testing.T) {
	conn := setupDB(t)
	user := seedUser(t, conn, "U", "u@test.io", policy.RoleUser)
	admin := seedUser(t, conn, "A", "a@test.io", policy.RoleAdmin)
	hidden := seedCourse(t, conn, "Hidden", courseModels.StatusPrivate)

	code, _ := doRequest(t, newApp(nil), "GET",
		fmt.Sprintf("/course/guest-details/%d", hidden.ID), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doRequest(t, newApp(&user), "GET",
		fmt.Sprintf("/course/details/%d", hidden.ID), nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doRequest(t, newApp(&admin), "GET",
		fmt.Sprintf("/course/details/%d", hidden.ID), nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestCourseDetailIncludesEnrollmentFlag(t *testing.T) {
	conn := setupDB(t)
	user := seedUser(t, conn, "U", "u@test.io", policy.RoleUser)
	course := seedCourse(t, conn, "Open", courseModels.StatusPublic)
	enroll(t, conn, course.ID, user.ID)

	code, env := doRequest(t, newApp(&user), "GET",
		fmt.Sprintf("/course/details/%d", course.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	var data struct {
		IsEnrolled bool `json:"is_enrolled"`
	}
	decodeData(t, env, &data)
	assert.True(t, data.IsEnrolled)
}

func TestCourseDetailUnknownID(t *testing.T) {
	setupDB(t)

	code, _ := doRequest(t, newApp(nil), "GET", "/course/guest-details/888", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
