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

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// GetProgress godoc
// @Summary List progress rows, most recent date first
// @Tags progress
// @Produce json
// @Success 200 {array} models.Progress
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var rows []models.Progress
	if err := pc.DB.Where("user_id = ?", user.ID).Order("date DESC").Find(&rows).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(rows)
}

type ProgressCreateInput struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	TasksCompleted int     `json:"tasks_completed"`
	StudyHours     float64 `json:"study_hours"`
	NotesCreated   int     `json:"notes_created"`
}

// CreateProgress godoc
// @Summary Record daily progress
// @Description Upserts on (user, date): a second call for the same date updates the existing row
// @Tags progress
// @Accept json
// @Produce json
// @Param input body ProgressCreateInput true "Progress data"
// @Success 200 {object} models.Progress
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [post]
func (pc *ProgressController) CreateProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input ProgressCreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Date == "" {
		return utils.BadRequest(c, "Date is required")
	}

	var row models.Progress
	err := pc.DB.Where("user_id = ? AND date = ?", user.ID, input.Date).First(&row).Error
	switch {
	case err == nil:
		row.TasksCompleted = input.TasksCompleted
		row.StudyHours = input.StudyHours
		row.NotesCreated = input.NotesCreated
		if err := pc.DB.Save(&row).Error; err != nil {
			return utils.InternalServerError(c, "Could not update progress")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.Progress{
			UserID:         user.ID,
			Date:           input.Date,
			TasksCompleted: input.TasksCompleted,
			StudyHours:     input.StudyHours,
			NotesCreated:   input.NotesCreated,
		}
		if err := pc.DB.Create(&row).Error; err != nil {
			return utils.InternalServerError(c, "Could not create progress")
		}
	default:
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(row)
}
