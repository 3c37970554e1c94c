package controllers

import (
	"errors"

	"goalpad/backend/ai"
	"goalpad/backend/config"
	"goalpad/backend/middleware"
	"goalpad/backend/models"
	"goalpad/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AIController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Gen ai.Generator
}

func NewAIController(db *gorm.DB, cfg *config.Config, gen ai.Generator) *AIController {
	return &AIController{DB: db, Cfg: cfg, Gen: gen}
}

type RoadmapRequest struct {
	Topic   string `json:"topic"`
	Details string `json:"details"`
}

// GenerateRoadmap godoc
// @Summary Generate a learning roadmap
// @Description Generates a 24-week roadmap, upserts the user's learning goal and fans the to-do items out into task rows
// @Tags ai
// @Accept json
// @Produce json
// @Param input body RoadmapRequest true "Roadmap request"
// @Success 200 {object} models.LearningGoal
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /ai/generate-roadmap [post]
func (ac *AIController) GenerateRoadmap(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req RoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.Topic == "" {
		return utils.BadRequest(c, "Topic is required")
	}

	roadmap, err := ac.Gen.GenerateRoadmap(c.Context(), req.Topic, req.Details)
	if err != nil {
		return utils.InternalServerError(c, "Roadmap generation failed")
	}

	goal, err := ac.ingestRoadmap(user.ID, req.Topic, req.Details, roadmap)
	if err != nil {
		return utils.InternalServerError(c, "Could not save roadmap")
	}

	return c.JSON(goal)
}

// ingestRoadmap upserts the user's single learning goal and inserts one task
// row per to-do item, all inside one transaction so a failure cannot leave a
// goal without its tasks. Regeneration overwrites the goal in place but never
// prunes previously created tasks.
func (ac *AIController) ingestRoadmap(userID uint, topic, details string, roadmap *models.RoadmapDocument) (*models.LearningGoal, error) {
	var goal models.LearningGoal

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&goal).Error
		switch {
		case err == nil:
			goal.Topic = topic
			goal.Details = details
			goal.Roadmap = *roadmap
			if err := tx.Save(&goal).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			goal = models.LearningGoal{
				UserID:  userID,
				Topic:   topic,
				Details: details,
				Roadmap: *roadmap,
			}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
		default:
			return err
		}

		var tasks []models.Task
		for _, week := range roadmap.Weeks {
			weekNumber := week.Week
			for _, item := range week.Tasks {
				quadrant := item.Quadrant
				if quadrant == "" {
					quadrant = "Q2"
				}
				tasks = append(tasks, models.Task{
					UserID:   userID,
					Title:    item.Description,
					Quadrant: quadrant,
					Week:     &weekNumber,
				})
			}
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

type QuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	WeekStart  int    `json:"week_start"`
	WeekEnd    int    `json:"week_end"`
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a 5-question quiz scoped to a week range of the user's roadmap and persists it
// @Tags ai
// @Accept json
// @Produce json
// @Param input body QuizRequest true "Quiz request"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /ai/generate-quiz [post]
func (ac *AIController) GenerateQuiz(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if req.Topic == "" {
		return utils.BadRequest(c, "Topic is required")
	}
	switch req.Difficulty {
	case "easy", "medium", "hard":
	default:
		return utils.BadRequest(c, "Difficulty must be easy, medium or hard")
	}
	if req.WeekStart == 0 {
		req.WeekStart = 1
	}
	if req.WeekEnd == 0 {
		req.WeekEnd = 24
	}

	// Absence of a goal yields an empty digest; the generator still runs,
	// just with degraded context.
	planContext := ""
	var goal models.LearningGoal
	if err := ac.DB.Where("user_id = ?", user.ID).First(&goal).Error; err == nil {
		planContext = goal.Roadmap.Digest()
	}

	questions, err := ac.Gen.GenerateQuiz(c.Context(), req.Topic, req.Difficulty, planContext, req.WeekStart, req.WeekEnd)
	if err != nil {
		return utils.InternalServerError(c, "Quiz generation failed")
	}

	quiz := models.Quiz{
		UserID:     user.ID,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Questions:  questions,
	}
	if err := ac.DB.Create(&quiz).Error; err != nil {
		return utils.InternalServerError(c, "Could not save quiz")
	}

	return c.JSON(quiz)
}

// GetQuizzes godoc
// @Summary List generated quizzes
// @Tags ai
// @Produce json
// @Success 200 {array} models.Quiz
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /quizzes [get]
func (ac *AIController) GetQuizzes(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var quizzes []models.Quiz
	if err := ac.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(quizzes)
}

// VideoSummary godoc
// @Summary Summarize a video
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /ai/video-summary [post]
func (ac *AIController) VideoSummary(c *fiber.Ctx) error {
	var req struct {
		VideoTitle       string `json:"video_title"`
		VideoDescription string `json:"video_description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	summary, err := ac.Gen.VideoSummary(c.Context(), req.VideoTitle, req.VideoDescription)
	if err != nil {
		return utils.InternalServerError(c, "Summary generation failed")
	}
	return c.JSON(fiber.Map{"summary": summary})
}

// AnswerQuestion godoc
// @Summary Answer a question about a video
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /ai/answer-question [post]
func (ac *AIController) AnswerQuestion(c *fiber.Ctx) error {
	var req struct {
		Question     string `json:"question"`
		VideoContext string `json:"video_context"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	answer, err := ac.Gen.AnswerQuestion(c.Context(), req.Question, req.VideoContext)
	if err != nil {
		return utils.InternalServerError(c, "Answer generation failed")
	}
	return c.JSON(fiber.Map{"answer": answer})
}
