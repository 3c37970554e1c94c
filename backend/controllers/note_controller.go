package controllers

import (
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NoteController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewNoteController(db *gorm.DB, cfg *config.Config) *NoteController {
	return &NoteController{DB: db, Cfg: cfg}
}

// GetNotes godoc
// @Summary List notes, newest first
// @Tags notes
// @Produce json
// @Success 200 {array} models.Note
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes [get]
func (nc *NoteController) GetNotes(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var notes []models.Note
	if err := nc.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&notes).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(notes)
}

type NoteCreateInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url"`
}

// CreateNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Param input body NoteCreateInput true "Note data"
// @Success 200 {object} models.Note
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes [post]
func (nc *NoteController) CreateNote(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input NoteCreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Content == "" {
		return utils.BadRequest(c, "Title and content are required")
	}

	note := models.Note{
		UserID:    user.ID,
		Title:     input.Title,
		Content:   input.Content,
		Source:    input.Source,
		SourceURL: input.SourceURL,
	}
	if err := nc.DB.Create(&note).Error; err != nil {
		return utils.InternalServerError(c, "Could not create note")
	}
	return c.JSON(note)
}

// UpdateNote godoc
// @Summary Update a note
// @Description Partial update; only supplied fields are changed
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes/{id} [put]
func (nc *NoteController) UpdateNote(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var note models.Note
	if err := nc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&note).Error; err != nil {
		return utils.NotFound(c, "Note not found")
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}

	if err := nc.DB.Save(&note).Error; err != nil {
		return utils.InternalServerError(c, "Could not update note")
	}
	return c.JSON(note)
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes/{id} [delete]
func (nc *NoteController) DeleteNote(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var note models.Note
	if err := nc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&note).Error; err != nil {
		return utils.NotFound(c, "Note not found")
	}

	if err := nc.DB.Delete(&note).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete note")
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
