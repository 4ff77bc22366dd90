package controllers

import (
	"lms/config"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/store"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a course, keyed on (name, instructor).
// Posting the same natural key again updates the existing course.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course image is required!", nil)
	}

	imagePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store course image!", nil)
	}

	// Status stays zero here: the column default makes a new course private,
	// and the upsert leaves a published course's status untouched.
	course := courseModels.Course{
		Name:        reqData.Name,
		Price:       reqData.Price,
		Instructor:  reqData.Instructor,
		Description: reqData.Description,
		Category:    reqData.Category,
		Image:       utils.GetFileURL(imagePath),
	}

	created, err := store.UpsertCourse(db(), &course)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if created {
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminUpdateCourse updates an existing course, including the status flip
// that makes it publicly visible.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := db().First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		course.Name = reqData.Name
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.Price > 0 {
		course.Price = reqData.Price
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store course image!", nil)
		}
		course.Image = utils.GetFileURL(imagePath)
	}

	if err := db().Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}
