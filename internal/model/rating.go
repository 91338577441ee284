package model

import "time"

type Rating struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Value     int       `gorm:"not null" json:"value"`
	UserID    string    `gorm:"type:char(36);not null;index" json:"user_id"`
	RecipeID  string    `gorm:"type:char(36);not null;index" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}
