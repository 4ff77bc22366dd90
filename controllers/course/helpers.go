package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/policy"
	"lms/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func db() *gorm.DB {
	return database.Database.Db
}

func viewerRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// loadAccessibleModule loads a module and enforces the access policy for
// enrolled-content reads: unknown ids are a 400, a failed gate is a 403.
// When ok is false the response has already been written.
func loadAccessibleModule(c *fiber.Ctx, moduleID, userID uint, role string) (*courseModels.Module, bool, error) {
	var module courseModels.Module
	if err := db().First(&module, moduleID).Error; err != nil {
		return nil, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module not found!", nil)
	}

	var course courseModels.Course
	if err := db().First(&course, module.CourseID).Error; err != nil {
		return nil, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}

	if role == policy.RoleAdmin {
		return &module, true, nil
	}

	enrolled, err := store.IsEnrolled(db(), course.ID, userID)
	if err != nil {
		return nil, false, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if !policy.CanAccessModule(&course, &module, enrolled) {
		return nil, false, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this module!", nil)
	}

	return &module, true, nil
}
