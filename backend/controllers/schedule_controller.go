package controllers

import (
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ScheduleController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewScheduleController(db *gorm.DB, cfg *config.Config) *ScheduleController {
	return &ScheduleController{DB: db, Cfg: cfg}
}

// GetSchedule godoc
// @Summary List schedule entries
// @Tags schedule
// @Produce json
// @Success 200 {array} models.Schedule
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /schedule [get]
func (sc *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var entries []models.Schedule
	if err := sc.DB.Where("user_id = ?", user.ID).Find(&entries).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(entries)
}

type ScheduleCreateInput struct {
	Title  string `json:"title"`
	Date   string `json:"date"` // YYYY-MM-DD
	TaskID *uint  `json:"task_id"`
}

// CreateSchedule godoc
// @Summary Create a schedule entry
// @Tags schedule
// @Accept json
// @Produce json
// @Param input body ScheduleCreateInput true "Schedule data"
// @Success 200 {object} models.Schedule
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /schedule [post]
func (sc *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input ScheduleCreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Date == "" {
		return utils.BadRequest(c, "Title and date are required")
	}

	entry := models.Schedule{
		UserID: user.ID,
		Title:  input.Title,
		Date:   input.Date,
		TaskID: input.TaskID,
	}
	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not create schedule entry")
	}
	return c.JSON(entry)
}

// DeleteSchedule godoc
// @Summary Delete a schedule entry
// @Tags schedule
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /schedule/{id} [delete]
func (sc *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var entry models.Schedule
	if err := sc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&entry).Error; err != nil {
		return utils.NotFound(c, "Schedule entry not found")
	}

	if err := sc.DB.Delete(&entry).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete schedule entry")
	}
	return c.JSON(fiber.Map{"message": "Schedule entry deleted successfully"})
}
