package model

import "time"

// Bookmark is keyed by (user, recipe); a user bookmarks a recipe at most once.
type Bookmark struct {
	UserID    string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	RecipeID  string    `gorm:"type:char(36);primaryKey" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkedRecipe is a bookmark joined with the recipe it points to.
type BookmarkedRecipe struct {
	UserID   string `json:"user_id"`
	RecipeID string `json:"recipe_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
