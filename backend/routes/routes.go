package routes

import (
	"goalpad/backend/ai"
	"goalpad/backend/config"
	"goalpad/backend/controllers"
	"goalpad/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, gen ai.Generator) {
	// Public routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/auth/register", authController.Register)
	app.Post("/auth/login", authController.Login)

	devController := controllers.NewDevController(db)
	app.Post("/dev/reset", devController.Reset)

	aiController := controllers.NewAIController(db, cfg, gen)
	app.Post("/ai/video-summary", aiController.VideoSummary)
	app.Post("/ai/answer-question", aiController.AnswerQuestion)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(db, cfg)

	// AI generation routes
	app.Post("/ai/generate-roadmap", authMiddleware, aiController.GenerateRoadmap)
	app.Post("/ai/generate-quiz", authMiddleware, aiController.GenerateQuiz)
	app.Get("/quizzes", authMiddleware, aiController.GetQuizzes)

	// Profile routes
	profileController := controllers.NewProfileController(db, cfg)
	app.Get("/profile", authMiddleware, profileController.GetProfile)
	app.Put("/profile", authMiddleware, profileController.UpdateProfile)
	app.Delete("/profile", authMiddleware, profileController.DeleteAccount)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Task routes
	taskController := controllers.NewTaskController(db, cfg)
	tasks := app.Group("/tasks", authMiddleware)
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Schedule routes
	scheduleController := controllers.NewScheduleController(db, cfg)
	schedule := app.Group("/schedule", authMiddleware)
	schedule.Get("/", scheduleController.GetSchedule)
	schedule.Post("/", scheduleController.CreateSchedule)
	schedule.Delete("/:id", scheduleController.DeleteSchedule)

	// Note routes
	noteController := controllers.NewNoteController(db, cfg)
	notes := app.Group("/notes", authMiddleware)
	notes.Get("/", noteController.GetNotes)
	notes.Post("/", noteController.CreateNote)
	notes.Put("/:id", noteController.UpdateNote)
	notes.Delete("/:id", noteController.DeleteNote)

	// Playlist routes
	playlistController := controllers.NewPlaylistController(db, cfg)
	playlists := app.Group("/playlists", authMiddleware)
	playlists.Get("/", playlistController.GetPlaylists)
	playlists.Post("/", playlistController.CreatePlaylist)
	playlists.Delete("/:id", playlistController.DeletePlaylist)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/progress", authMiddleware)
	progress.Get("/", progressController.GetProgress)
	progress.Post("/", progressController.CreateProgress)
}
