package models

import (
	"gorm.io/gorm"
)

// FoodLog is one user's batch of food entries for one calendar date. A user
// may hold several logs for the same date; adding never merges into an
// existing one.
type FoodLog struct {
	gorm.Model
	UserID    uint       `gorm:"index:idx_food_logs_user_date;not null" json:"userId"`
	Date      string     `gorm:"index:idx_food_logs_user_date;not null" json:"date"` // opaque string, client sends YYYY-MM-DD
	FoodItems []FoodItem `gorm:"constraint:OnDelete:CASCADE" json:"foodItems"`
}

// FoodItem lives only inside its parent log; it has no endpoints of its own.
type FoodItem struct {
	gorm.Model
	FoodLogID uint    `gorm:"index;not null" json:"logId"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"` // per-unit kcal
	Quantity  float64 `json:"quantity"`
}
