package controllers

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/store"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

type assignmentView struct {
	ID        uint   `json:"id"`
	ModuleID  uint   `json:"module_id"`
	UserID    uint   `json:"user_id"`
	Link      string `json:"link"`
	Status    string `json:"status"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// SubmitAssignment stores the viewer's submission link for a module, keyed
// on (module, user). Resubmitting replaces the link and resets the status
// to pending.
func SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	moduleID := c.Locals("moduleID").(uint)

	module, ok, err := loadAccessibleModule(c, moduleID, userID, viewerRole(c))
	if !ok {
		return err
	}

	reqData, ok := c.Locals("validatedAssignment").(*courseValidator.SubmitAssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment, err := store.UpsertAssignment(db(), module.ID, userID, reqData.Link)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment submitted successfully!", assignment)
}

// GetAssignmentSubmissions lists a module's submissions for review
func GetAssignmentSubmissions(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	var module courseModels.Module
	if err := db().First(&module, moduleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module not found!", nil)
	}

	var submissions []assignmentView
	err := db().Table("assignments").
		Select("assignments.id, assignments.module_id, assignments.user_id, assignments.link, assignments.status, "+
			"users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = assignments.user_id").
		Where("assignments.module_id = ?", module.ID).
		Order("assignments.created_at asc").
		Scan(&submissions).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// DecideAssignment accepts or rejects one submission
func DecideAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)

	reqData, ok := c.Locals("validatedAssignmentDecision").(*courseValidator.DecideAssignmentBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var assignment courseModels.Assignment
	if err := db().First(&assignment, assignmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Assignment not found!", nil)
	}

	assignment.Status = reqData.Status
	if err := db().Save(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment)
}
