package models

type Note struct {
	Model
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Source    string `json:"source,omitempty"` // "youtube", "manual", etc.
	SourceURL string `json:"source_url,omitempty"`
}
