package controllers

import (
	"log"

	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/policy"
	"lms/store"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

type enrollRequestView struct {
	ID             uint   `json:"id"`
	CourseID       uint   `json:"course_id"`
	UserID         uint   `json:"user_id"`
	Status         string `json:"status"`
	AdditionalNote string `json:"additional_note"`
	CourseName     string `json:"course_name"`
	CourseImage    string `json:"course_image"`
	UserName       string `json:"user_name"`
	UserImage      string `json:"user_image"`
}

// SendEnrollRequest creates or replaces the viewer's active enroll request
// for a public course.
func SendEnrollRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := db().First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course not found!", nil)
	}
	if course.Status != courseModels.StatusPublic {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not open for enrollment!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollRequest").(*courseValidator.EnrollRequestBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := store.UpsertPendingEnrollRequest(db(), course.ID, userID, reqData.AdditionalNote)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send enroll request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll request sent successfully!", request)
}

// GetEnrollRequests lists requests with course and requester display fields.
// Admins see all requests, users only their own.
func GetEnrollRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	role := viewerRole(c)

	statusFilter, _ := c.Locals("requestStatusFilter").(string)

	query := db().Table("enroll_requests").
		Select("enroll_requests.id, enroll_requests.course_id, enroll_requests.user_id, enroll_requests.status, enroll_requests.additional_note, " +
			"courses.name AS course_name, courses.image AS course_image, " +
			"users.name AS user_name, users.profile_image AS user_image").
		Joins("JOIN courses ON courses.id = enroll_requests.course_id").
		Joins("JOIN users ON users.id = enroll_requests.user_id").
		Order("enroll_requests.created_at desc")

	if role != policy.RoleAdmin {
		query = query.Where("enroll_requests.user_id = ?", userID)
	}
	if statusFilter != "" {
		query = query.Where("enroll_requests.status = ?", statusFilter)
	}

	var requests []enrollRequestView
	if err := query.Scan(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enroll requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll requests fetched successfully!", requests)
}

// DecideEnrollRequest accepts or rejects a request. Accepting adds the user
// to the course's learner set; rejecting removes them, covering a prior
// acceptance that is being revoked.
func DecideEnrollRequest(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(uint)

	reqData, ok := c.Locals("validatedDecision").(*courseValidator.DecideRequestBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Status != courseModels.RequestAccepted && reqData.Status != courseModels.RequestRejected {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported status!", nil)
	}

	var request courseModels.EnrollRequest
	if err := db().First(&request, requestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request not found!", nil)
	}

	if reqData.Status == courseModels.RequestAccepted {
		if err := store.AddEnrollment(db(), request.CourseID, request.UserID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
		}
	} else {
		if err := store.RemoveEnrollment(db(), request.CourseID, request.UserID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
		}
	}

	request.Status = reqData.Status
	if err := db().Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}

	notifyEnrollDecision(request)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll request updated successfully!", request)
}

// notifyEnrollDecision emails the requester about the decision. Failures are
// logged, never surfaced to the admin.
func notifyEnrollDecision(request courseModels.EnrollRequest) {
	var user models.User
	if err := db().First(&user, request.UserID).Error; err != nil {
		log.Printf("Error fetching user %d for notification: %v", request.UserID, err)
		return
	}
	var course courseModels.Course
	if err := db().First(&course, request.CourseID).Error; err != nil {
		log.Printf("Error fetching course %d for notification: %v", request.CourseID, err)
		return
	}

	go func() {
		if err := utils.SendEnrollDecisionEmail(user.Email, user.Name, course.Name, request.Status); err != nil {
			log.Printf("Error sending enroll decision email to %s: %v", user.Email, err)
		}
	}()
}
