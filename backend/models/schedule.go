package models

type Schedule struct {
	Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Title  string `gorm:"not null" json:"title"`
	Date   string `gorm:"not null" json:"date"` // YYYY-MM-DD
	TaskID *uint  `json:"task_id,omitempty"`
}
