package models

// Progress holds one row per user per calendar date. The write path upserts on
// (user_id, date), backed by the unique index.
type Progress struct {
	Model
	UserID         uint    `gorm:"not null;uniqueIndex:idx_progress_user_date" json:"user_id"`
	Date           string  `gorm:"not null;uniqueIndex:idx_progress_user_date" json:"date"` // YYYY-MM-DD
	TasksCompleted int     `gorm:"default:0" json:"tasks_completed"`
	StudyHours     float64 `gorm:"default:0" json:"study_hours"`
	NotesCreated   int     `gorm:"default:0" json:"notes_created"`
}
