package models

type Task struct {
	Model
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Quadrant    string `json:"quadrant,omitempty"` // legacy Eisenhower tag, kept for old rows
	Week        *int   `json:"week"`               // week number in the roadmap
	Completed   bool   `gorm:"default:false" json:"completed"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD
}
