package controllers

import (
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlaylistController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPlaylistController(db *gorm.DB, cfg *config.Config) *PlaylistController {
	return &PlaylistController{DB: db, Cfg: cfg}
}

// GetPlaylists godoc
// @Summary List playlists
// @Tags playlists
// @Produce json
// @Success 200 {array} models.Playlist
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /playlists [get]
func (pc *PlaylistController) GetPlaylists(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var playlists []models.Playlist
	if err := pc.DB.Where("user_id = ?", user.ID).Find(&playlists).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(playlists)
}

type PlaylistCreateInput struct {
	Title             string `json:"title"`
	YoutubePlaylistID string `json:"youtube_playlist_id"`
	ThumbnailURL      string `json:"thumbnail_url"`
}

// CreatePlaylist godoc
// @Summary Save a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param input body PlaylistCreateInput true "Playlist data"
// @Success 200 {object} models.Playlist
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /playlists [post]
func (pc *PlaylistController) CreatePlaylist(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input PlaylistCreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.YoutubePlaylistID == "" {
		return utils.BadRequest(c, "Title and youtube_playlist_id are required")
	}

	playlist := models.Playlist{
		UserID:            user.ID,
		Title:             input.Title,
		YoutubePlaylistID: input.YoutubePlaylistID,
		ThumbnailURL:      input.ThumbnailURL,
	}
	if err := pc.DB.Create(&playlist).Error; err != nil {
		return utils.InternalServerError(c, "Could not create playlist")
	}
	return c.JSON(playlist)
}

// DeletePlaylist godoc
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param id path int true "Playlist ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /playlists/{id} [delete]
func (pc *PlaylistController) DeletePlaylist(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var playlist models.Playlist
	if err := pc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&playlist).Error; err != nil {
		return utils.NotFound(c, "Playlist not found")
	}

	if err := pc.DB.Delete(&playlist).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete playlist")
	}
	return c.JSON(fiber.Map{"message": "Playlist deleted successfully"})
}
