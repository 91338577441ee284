package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) Create(recipe *model.Recipe) error {
	if err := r.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) GetByID(id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query recipe by id failed: %w", err)
	}
	return &recipe, nil
}

// UpdateFields replaces title and content in one statement. The returned bool
// reports whether a live row was hit, so an update racing a delete fails
// instead of resurrecting the record.
func (r *RecipeRepository) UpdateFields(id, title, content string) (bool, error) {
	result := r.db.Model(&model.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content})
	if result.Error != nil {
		return false, fmt.Errorf("update recipe failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *RecipeRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.Recipe{})
	if result.Error != nil {
		return false, fmt.Errorf("delete recipe failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// SearchByTitle lists recipes whose title contains keyword as a
// case-sensitive substring; an empty keyword lists everything. LIKE BINARY
// keeps the match case-sensitive under MySQL's default collation.
func (r *RecipeRepository) SearchByTitle(keyword string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := r.db.Order("created_at ASC, id ASC")
	if keyword != "" {
		query = query.Where("title LIKE BINARY ?", "%"+keyword+"%")
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("search recipes failed: %w", err)
	}
	return recipes, nil
}
