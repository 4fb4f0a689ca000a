package models

import "time"

// Course levels (closed set).
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ValidLevel reports whether level is one of the three known values.
func ValidLevel(level string) bool {
	return level == LevelBeginner || level == LevelIntermediate || level == LevelAdvanced
}

type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	Level       string    `gorm:"not null" json:"level"`
	Price       float64   `gorm:"not null" json:"price"`
	Published   bool      `gorm:"not null;default:false" json:"published"`
	Instructor  string    `gorm:"not null" json:"instructor"` // display name, not a users FK
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}
