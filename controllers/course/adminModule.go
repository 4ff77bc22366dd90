package controllers

import (
	"log"

	"lms/middleware"
	courseModels "lms/models/course"
	"lms/store"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminAddModule adds a module to a course, keyed on (course, name)
func AdminAddModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := db().First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.CreateModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		CourseID:    course.ID,
		Name:        reqData.Name,
		Description: reqData.Description,
		OrderBy:     reqData.OrderBy,
		Status:      reqData.Status,
	}

	created, err := store.UpsertModule(db(), &module)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add module!", nil)
	}

	if created {
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module added successfully!", module)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminAddVideo adds a video to a module, keyed on (module, name). A new
// video bumps the module's TotalVideoCount; updates do not.
func AdminAddVideo(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module courseModels.Module
	if err := db().First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedVideo").(*courseValidator.CreateVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !utils.IsValidYouTubeURL(reqData.VideoLink) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"videoLink": "Video link must be a valid YouTube URL!",
		})
	}

	name := reqData.Name
	if name == "" {
		title, err := utils.FetchYouTubeTitle(reqData.VideoLink)
		if err != nil {
			log.Printf("Title lookup failed for %s: %v", reqData.VideoLink, err)
		} else if title == "" {
			log.Printf("Title lookup returned no title for %s", reqData.VideoLink)
		}
		if err != nil || title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "Video name is required!",
			})
		}
		name = title
	}

	video := courseModels.Video{
		ModuleID:    module.ID,
		Name:        name,
		Description: reqData.Description,
		VideoLink:   reqData.VideoLink,
		OrderBy:     reqData.OrderBy,
	}

	created, err := store.UpsertVideo(db(), &video)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add video!", nil)
	}

	if created {
		if err := db().Model(&courseModels.Module{}).Where("id = ?", module.ID).
			UpdateColumn("total_video_count", gorm.Expr("total_video_count + 1")).Error; err != nil {
			log.Printf("Error bumping video count for module %d: %v", module.ID, err)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video added successfully!", video)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video updated successfully!", video)
}

// AdminAddQuiz adds a question to a module, keyed on (module, question)
func AdminAddQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module courseModels.Module
	if err := db().First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*courseValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		ModuleID: module.ID,
		Question: reqData.Question,
		OptionA:  reqData.OptionA,
		OptionB:  reqData.OptionB,
		OptionC:  reqData.OptionC,
		OptionD:  reqData.OptionD,
		Answer:   reqData.Answer,
		Mark:     reqData.Mark,
	}

	created, err := store.UpsertQuiz(db(), &quiz)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add quiz!", nil)
	}

	if created {
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz added successfully!", quiz)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}
