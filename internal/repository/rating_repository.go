package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		return fmt.Errorf("create rating failed: %w", err)
	}
	return nil
}

func (r *RatingRepository) GetByIDAndUserID(ratingID, userID string) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.Where("id = ? AND user_id = ?", ratingID, userID).First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating failed: %w", err)
	}
	return &rating, nil
}

func (r *RatingRepository) UpdateValue(ratingID, userID string, value int) (bool, error) {
	result := r.db.Model(&model.Rating{}).
		Where("id = ? AND user_id = ?", ratingID, userID).
		Update("value", value)
	if result.Error != nil {
		return false, fmt.Errorf("update rating failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *RatingRepository) DeleteByIDAndUserID(ratingID, userID string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", ratingID, userID).Delete(&model.Rating{})
	if result.Error != nil {
		return false, fmt.Errorf("delete rating failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *RatingRepository) ListByRecipeID(recipeID string) ([]model.Rating, error) {
	var ratings []model.Rating
	query := r.db.Order("created_at ASC, id ASC")
	if recipeID != "" {
		query = query.Where("recipe_id = ?", recipeID)
	}
	if err := query.Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("list ratings failed: %w", err)
	}
	return ratings, nil
}
