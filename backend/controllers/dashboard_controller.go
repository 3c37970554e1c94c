package controllers

import (
	"errors"

	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Dashboard aggregation
// @Description Composes the learning goal, all tasks (week then creation order), the 30 most recent progress rows and the next 7 schedule rows
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var goal *models.LearningGoal
	var found models.LearningGoal
	err := dc.DB.Where("user_id = ?", user.ID).First(&found).Error
	switch {
	case err == nil:
		goal = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no goal yet; dashboard reports null
	default:
		return utils.InternalServerError(c, "Could not query database")
	}

	var tasks []models.Task
	if err := dc.DB.Where("user_id = ?", user.ID).
		Order("week ASC").Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var progress []models.Progress
	if err := dc.DB.Where("user_id = ?", user.ID).
		Order("date DESC").Limit(30).
		Find(&progress).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var schedule []models.Schedule
	if err := dc.DB.Where("user_id = ?", user.ID).
		Order("date ASC").Limit(7).
		Find(&schedule).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"user":              user,
		"learning_goal":     goal,
		"recent_tasks":      tasks,
		"progress_data":     progress,
		"upcoming_schedule": schedule,
	})
}
