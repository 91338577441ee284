package app

import (
	"github.com/google/uuid"

	"recipebox/internal/model"
)

type RatingStore interface {
	Create(rating *model.Rating) error
	GetByIDAndUserID(ratingID, userID string) (*model.Rating, error)
	UpdateValue(ratingID, userID string, value int) (bool, error)
	DeleteByIDAndUserID(ratingID, userID string) (bool, error)
	ListByRecipeID(recipeID string) ([]model.Rating, error)
}

type RatingService struct {
	ratings RatingStore
	recipes RecipeStore
}

func NewRatingService(ratings RatingStore, recipes RecipeStore) *RatingService {
	return &RatingService{
		ratings: ratings,
		recipes: recipes,
	}
}

func (s *RatingService) Rate(userID, recipeID string, value int) (*model.Rating, error) {
	if userID == "" || recipeID == "" || value < 1 || value > 5 {
		return nil, ErrInvalidInput
	}

	recipe, err := s.recipes.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrInvalidInput
	}

	rating := &model.Rating{
		ID:       uuid.NewString(),
		Value:    value,
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.ratings.Create(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// Update is owner-scoped: a rating id belonging to another user reads as not
// found rather than revealing its existence.
func (s *RatingService) Update(userID, ratingID string, value int) (*model.Rating, error) {
	if userID == "" || ratingID == "" {
		return nil, ErrRatingNotFound
	}
	if value < 1 || value > 5 {
		return nil, ErrInvalidInput
	}

	updated, err := s.ratings.UpdateValue(ratingID, userID, value)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrRatingNotFound
	}

	rating, err := s.ratings.GetByIDAndUserID(ratingID, userID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}
	return rating, nil
}

func (s *RatingService) Delete(userID, ratingID string) error {
	if userID == "" || ratingID == "" {
		return ErrRatingNotFound
	}

	deleted, err := s.ratings.DeleteByIDAndUserID(ratingID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRatingNotFound
	}
	return nil
}

func (s *RatingService) ListByRecipe(recipeID string) ([]model.Rating, error) {
	ratings, err := s.ratings.ListByRecipeID(recipeID)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []model.Rating{}
	}
	return ratings, nil
}
