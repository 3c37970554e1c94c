package controllers

import (
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TaskController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTaskController(db *gorm.DB, cfg *config.Config) *TaskController {
	return &TaskController{DB: db, Cfg: cfg}
}

// GetTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [get]
func (tc *TaskController) GetTasks(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var tasks []models.Task
	if err := tc.DB.Where("user_id = ?", user.ID).Find(&tasks).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(tasks)
}

type TaskCreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Week        *int   `json:"week"`
	DueDate     string `json:"due_date"`
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param input body TaskCreateInput true "Task data"
// @Success 200 {object} models.Task
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks [post]
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input TaskCreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	task := models.Task{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		Week:        input.Week,
		DueDate:     input.DueDate,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not create task")
	}
	return c.JSON(task)
}

// TaskUpdateInput enumerates the patchable fields; only supplied ones change.
type TaskUpdateInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Week        *int    `json:"week"`
	DueDate     *string `json:"due_date"`
}

// UpdateTask godoc
// @Summary Update a task
// @Description Partial update; only supplied fields are changed
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param input body TaskUpdateInput true "Fields to update"
// @Success 200 {object} models.Task
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id} [put]
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input TaskUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var task models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&task).Error; err != nil {
		return utils.NotFound(c, "Task not found")
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Week != nil {
		task.Week = input.Week
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not update task")
	}
	return c.JSON(task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var task models.Task
	if err := tc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&task).Error; err != nil {
		return utils.NotFound(c, "Task not found")
	}

	if err := tc.DB.Delete(&task).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete task")
	}
	return c.JSON(fiber.Map{"message": "Task deleted successfully"})
}
