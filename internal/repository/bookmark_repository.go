package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(bookmark *model.Bookmark) error {
	if err := r.db.Create(bookmark).Error; err != nil {
		return fmt.Errorf("create bookmark failed: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Get(userID, recipeID string) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	if err := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query bookmark failed: %w", err)
	}
	return &bookmark, nil
}

func (r *BookmarkRepository) Delete(userID, recipeID string) (bool, error) {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&model.Bookmark{})
	if result.Error != nil {
		return false, fmt.Errorf("delete bookmark failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *BookmarkRepository) ListByUserID(userID string) ([]model.BookmarkedRecipe, error) {
	var rows []model.BookmarkedRecipe
	err := r.db.Table("bookmarks").
		Select("bookmarks.user_id, bookmarks.recipe_id, recipes.title, recipes.content").
		Joins("JOIN recipes ON recipes.id = bookmarks.recipe_id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list bookmarks failed: %w", err)
	}
	return rows, nil
}
