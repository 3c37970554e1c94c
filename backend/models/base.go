package models

import "time"

// Model is the common base for persisted entities. It mirrors gorm.Model minus
// DeletedAt: every delete in this API is a hard delete.
type Model struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
