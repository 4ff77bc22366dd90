package controllers

import (
	"fmt"
	"testing"

	"lms/models"
	courseModels "lms/models/course"
	"lms/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignmentFixture(t *testing.T) (user models.User, admin models.User, module courseModels.Module) {
	conn := setupDB(t)
	user = seedUser(t, conn, "Student", "student@test.io", policy.RoleUser)
	admin = seedUser(t, conn, "Admin", "admin@test.io", policy.RoleAdmin)
	course := seedCourse(t, conn, "Go", courseModels.StatusPublic)
	module = seedModule(t, conn, course.ID, "Basics", courseModels.StatusPublic, 0)
	enroll(t, conn, course.ID, user.ID)
	return user, admin, module
}

func TestSubmitAssignmentResubmitResetsStatus(t *testing.T) {
	user, admin, module := assignmentFixture(t)
	conn := db()
	app := newApp(&user)
	path := fmt.Sprintf("/course/assignment/submit/%d", module.ID)

	code, _ := doRequest(t, app, "PATCH", path,
		fiber.Map{"link": "https://github.com/student/solution"})
	require.Equal(t, fiber.StatusOK, code)

	var assignment courseModels.Assignment
	require.NoError(t, conn.Where("module_id = ? AND user_id = ?", module.ID, user.ID).
		First(&assignment).Error)

	// Reviewer accepts it, then a resubmission reopens it as pending.
	code, _ = doRequest(t, newApp(&admin), "PATCH",
		fmt.Sprintf("/admin/course/assignment/decide/%d", assignment.ID),
		fiber.Map{"status": "accepted"})
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doRequest(t, app, "PATCH", path,
		fiber.Map{"link": "https://github.com/student/solution-v2"})
	require.Equal(t, fiber.StatusOK, code)

	var count int64
	require.NoError(t, conn.Model(&courseModels.Assignment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, conn.First(&assignment, assignment.ID).Error)
	assert.Equal(t, "https://github.com/student/solution-v2", assignment.Link)
	assert.Equal(t, courseModels.RequestPending, assignment.Status)
}

func TestSubmitAssignmentRequiresValidLink(t *testing.T) {
	user, _, module := assignmentFixture(t)

	code, _ := doRequest(t, newApp(&user), "PATCH",
		fmt.Sprintf("/course/assignment/submit/%d", module.ID),
		fiber.Map{"link": "not a url"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestSubmitAssignmentRequiresEnrollment(t *testing.T) {
	_, _, module := assignmentFixture(t)
	outsider := seedUser(t, db(), "Outsider", "out@test.io", policy.RoleUser)

	code, _ := doRequest(t, newApp(&outsider), "PATCH",
		fmt.Sprintf("/course/assignment/submit/%d", module.ID),
		fiber.Map{"link": "https://github.com/out/solution"})
	assert.Equal(t, fiber.StatusForbidden, code)
}

func TestDecideAssignmentUnsupportedStatus(t *testing.T) {
	user, admin, module := assignmentFixture(t)

	code, _ := doRequest(t, newApp(&user), "PATCH",
		fmt.Sprintf("/course/assignment/submit/%d", module.ID),
		fiber.Map{"link": "https://github.com/student/solution"})
	require.Equal(t, fiber.StatusOK, code)

	var assignment courseModels.Assignment
	require.NoError(t, db().Where("module_id = ?", module.ID).First(&assignment).Error)

	code, env := doRequest(t, newApp(&admin), "PATCH",
		fmt.Sprintf("/admin/course/assignment/decide/%d", assignment.ID),
		fiber.Map{"status": "maybe"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Message, "Unsupported")
}

func TestGetAssignmentSubmissionsIncludesUserInfo(t *testing.T) {
	user, admin, module := assignmentFixture(t)

	code, _ := doRequest(t, newApp(&user), "PATCH",
		fmt.Sprintf("/course/assignment/submit/%d", module.ID),
		fiber.Map{"link": "https://github.com/student/solution"})
	require.Equal(t, fiber.StatusOK, code)

	code, env := doRequest(t, newApp(&admin), "GET",
		fmt.Sprintf("/admin/course/assignment/get/%d", module.ID), nil)
	require.Equal(t, fiber.StatusOK, code)

	var submissions []assignmentView
	decodeData(t, env, &submissions)
	require.Len(t, submissions, 1)
	assert.Equal(t, "Student", submissions[0].UserName)
	assert.Equal(t, "student@test.io", submissions[0].UserEmail)
	assert.Equal(t, courseModels.RequestPending, submissions[0].Status)
}
