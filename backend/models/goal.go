package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// RoadmapTask is one actionable to-do inside a roadmap week. Quadrant is the
// legacy Eisenhower tag (Q1-Q4) the generator attaches to each item.
type RoadmapTask struct {
	Description string `json:"description"`
	Quadrant    string `json:"quadrant,omitempty"`
}

type RoadmapWeek struct {
	Week   int           `json:"week"`
	Theme  string        `json:"theme"`
	Tasks  []RoadmapTask `json:"tasks"`
	Videos []string      `json:"videos"`
}

// RoadmapDocument is the generated 24-week study plan, stored as a JSON column.
type RoadmapDocument struct {
	Weeks []RoadmapWeek `json:"weeks"`
}

// Value implements the driver.Valuer interface
func (r RoadmapDocument) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (r *RoadmapDocument) Scan(value interface{}) error {
	if value == nil {
		*r = RoadmapDocument{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("RoadmapDocument Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*r = RoadmapDocument{}
		return nil
	}
	return json.Unmarshal(bytesToParse, r)
}

// Digest flattens the roadmap into one line per week, used as condensed plan
// context for quiz-generation prompts.
func (r RoadmapDocument) Digest() string {
	lines := make([]string, 0, len(r.Weeks))
	for _, w := range r.Weeks {
		texts := make([]string, 0, len(w.Tasks))
		for _, t := range w.Tasks {
			texts = append(texts, t.Description)
		}
		lines = append(lines, fmt.Sprintf("Week %d – %s: %s", w.Week, w.Theme, strings.Join(texts, "; ")))
	}
	return strings.Join(lines, "\n")
}

// LearningGoal is the user's single active goal. The generate-roadmap flow
// upserts it, so at most one row exists per user.
type LearningGoal struct {
	Model
	UserID  uint            `gorm:"not null;index" json:"user_id"`
	Topic   string          `gorm:"not null" json:"topic"`
	Details string          `gorm:"type:text" json:"details"`
	Roadmap RoadmapDocument `gorm:"type:jsonb" json:"roadmap"`
}
