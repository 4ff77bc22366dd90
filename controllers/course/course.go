package controllers

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/policy"
	"lms/store"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourses lists courses for guests, users and admins. Only admins see
// private courses.
func GetCourses(c *fiber.Ctx) error {
	role := viewerRole(c)

	reqData, ok := c.Locals("validatedList").(*courseValidator.CourseListRequest)
	if !ok {
		reqData = &courseValidator.CourseListRequest{Page: 1, Limit: 10}
	}

	query := store.CourseQuery{
		Search:     reqData.Search,
		Category:   reqData.Category,
		PublicOnly: policy.ListPublicOnly(role),
		SortDesc:   reqData.SortDesc,
		Page:       reqData.Page,
		Limit:      reqData.Limit,
	}

	courses, total, err := store.FindCourses(db(), query)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"page":      reqData.Page,
			"limit":     reqData.Limit,
			"totalData": total,
			"pageCount": store.PageCount(total, reqData.Limit),
		},
	})
}

// GetCourseDetails returns one course with its public modules. Private
// courses are reachable by admins only; for everyone else the gate is a
// forbidden, not a lookup failure.
func GetCourseDetails(c *fiber.Ctx) error {
	role := viewerRole(c)
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := db().First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}

	if !policy.CanSeeCourse(role, &course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	}

	moduleQuery := db().Where("course_id = ?", course.ID)
	if role != policy.RoleAdmin {
		moduleQuery = moduleQuery.Where("status = ?", courseModels.StatusPublic)
	}

	var modules []courseModels.Module
	if err := moduleQuery.Order("order_by asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	data := fiber.Map{
		"course":  course,
		"modules": modules,
	}

	if userID, ok := c.Locals("userId").(uint); ok {
		enrolled, err := store.IsEnrolled(db(), course.ID, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
		}
		data["is_enrolled"] = enrolled
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", data)
}
