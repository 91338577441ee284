package model

import "time"

const (
	ActivityRecipeCreated = "recipe.created"
	ActivityRecipeUpdated = "recipe.updated"
	ActivityRecipeDeleted = "recipe.deleted"
)

type Activity struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);not null;index" json:"user_id"`
	RecipeID  string    `gorm:"type:char(36);not null;index" json:"recipe_id"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
