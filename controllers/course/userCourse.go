package controllers

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

type moduleView struct {
	courseModels.Module
	Progress float64 `json:"progress"`
}

type videoView struct {
	courseModels.Video
	Completed bool `json:"completed"`
}

// moduleProgress computes the viewer's completion percentage for a module:
// own completed videos over TotalVideoCount. A module without videos is 0.
func moduleProgress(module *courseModels.Module, userID uint) (float64, error) {
	if module.TotalVideoCount <= 0 {
		return 0, nil
	}

	var completed int64
	err := db().Model(&courseModels.VideoCompletion{}).
		Where("module_id = ? AND user_id = ?", module.ID, userID).
		Count(&completed).Error
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(module.TotalVideoCount) * 100, nil
}

// GetMyModules lists the public modules of an enrolled course with the
// viewer's progress per module.
func GetMyModules(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := db().First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}

	enrolled, err := store.IsEnrolled(db(), course.ID, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if course.Status != courseModels.StatusPublic || !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var modules []courseModels.Module
	if err := db().Where("course_id = ? AND status = ?", course.ID, courseModels.StatusPublic).
		Order("order_by asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	result := make([]moduleView, len(modules))
	for i, mod := range modules {
		progress, err := moduleProgress(&mod, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute progress!", nil)
		}
		result[i] = moduleView{Module: mod, Progress: progress}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", result)
}

// GetMyModuleVideos lists a module's videos with the viewer's completion flags
func GetMyModuleVideos(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)

	module, ok, err := loadAccessibleModule(c, moduleID, userID, viewerRole(c))
	if !ok {
		return err
	}

	var videos []courseModels.Video
	if err := db().Where("module_id = ?", module.ID).Order("order_by asc").Find(&videos).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch videos!", nil)
	}

	var completions []courseModels.VideoCompletion
	if err := db().Where("module_id = ? AND user_id = ?", module.ID, userID).Find(&completions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completions!", nil)
	}

	completed := make(map[uint]bool, len(completions))
	for _, vc := range completions {
		completed[vc.VideoID] = true
	}

	result := make([]videoView, len(videos))
	for i, video := range videos {
		result[i] = videoView{Video: video, Completed: completed[video.ID]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", result)
}

// MarkVideoCompleted idempotently adds the viewer to a video's completed set
func MarkVideoCompleted(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(uint)

	var video courseModels.Video
	if err := db().First(&video, videoID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video not found!", nil)
	}

	if _, ok, err := loadAccessibleModule(c, video.ModuleID, userID, viewerRole(c)); !ok {
		return err
	}

	if err := store.MarkVideoCompleted(db(), video.ID, userID, video.ModuleID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video marked as completed!", nil)
}
