package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// QuizQuestion is one multiple-choice question: exactly 4 options and a
// zero-based index of the correct one.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// QuestionList is a custom type for storing the question array as a JSON column.
type QuestionList []QuizQuestion

// Value implements the driver.Valuer interface
func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("QuestionList Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*q = QuestionList{}
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

type Quiz struct {
	Model
	UserID     uint         `gorm:"not null;index" json:"user_id"`
	Topic      string       `gorm:"not null" json:"topic"`
	Difficulty string       `gorm:"not null" json:"difficulty"` // easy, medium, hard
	Questions  QuestionList `gorm:"type:jsonb;not null" json:"questions"`
}
