package controllers

import (
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DevController struct {
	DB *gorm.DB
}

func NewDevController(db *gorm.DB) *DevController {
	return &DevController{DB: db}
}

// Reset godoc
// @Summary Development reset
// @Description Unauthenticated, destructive: clears every table. Local development only.
// @Tags dev
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /dev/reset [post]
func (dc *DevController) Reset(c *fiber.Ctx) error {
	// Children before users to respect foreign keys.
	tables := []interface{}{
		&models.Progress{},
		&models.Note{},
		&models.Playlist{},
		&models.Schedule{},
		&models.Task{},
		&models.LearningGoal{},
		&models.Quiz{},
		&models.User{},
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.InternalServerError(c, "Could not reset database")
	}

	return c.JSON(fiber.Map{"message": "Reset complete"})
}
