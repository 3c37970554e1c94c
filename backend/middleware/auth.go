package middleware

import (
	"strings"

	"goalpad/backend/config"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the bearer token to a user row and stores it in the
// request context. Every protected handler reads it back via CurrentUser.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.Unauthorized(c, "Missing authorization token")
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		username, err := utils.ParseToken(tokenString, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			return utils.Unauthorized(c, "Invalid token")
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware, nil on public routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
