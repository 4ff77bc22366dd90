package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// GuardRole returns a middleware that loads the authenticated user and
// checks the account role against the allowed set. The fresh user row is
// stored in c.Locals("user") and its role replaces the token's role claim.
func GuardRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var user models.User
		if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Locals("user", user)
				c.Locals("role", user.Role)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "You do not have permission to access this resource!",
			"data":    nil,
		})
	}
}
