package controllers

import (
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates the display name
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Name *string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Name != nil {
		user.Name = *input.Name
		if err := pc.DB.Save(user).Error; err != nil {
			return utils.InternalServerError(c, "Could not update user")
		}
	}

	return c.JSON(user)
}

// DeleteAccount godoc
// @Summary Delete account
// @Description Deletes the user and every row they own
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [delete]
func (pc *ProfileController) DeleteAccount(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.Progress{},
			&models.Note{},
			&models.Playlist{},
			&models.Schedule{},
			&models.Task{},
			&models.LearningGoal{},
			&models.Quiz{},
		}
		for _, model := range owned {
			if err := tx.Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not delete account")
	}

	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
