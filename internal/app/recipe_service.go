package app

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipebox/internal/model"
)

type RecipeStore interface {
	Create(recipe *model.Recipe) error
	GetByID(id string) (*model.Recipe, error)
	UpdateFields(id, title, content string) (bool, error)
	Delete(id string) (bool, error)
	SearchByTitle(keyword string) ([]model.Recipe, error)
}

type RecipeCache interface {
	GetRecipe(ctx context.Context, id string) (*model.Recipe, bool, error)
	SetRecipe(ctx context.Context, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error
}

type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

type RecipeService struct {
	recipes   RecipeStore
	users     UserStore
	cache     RecipeCache
	publisher ActivityPublisher
}

type CreateRecipeInput struct {
	Title   string
	Content string
	UserID  string
}

type UpdateRecipeInput struct {
	Title   string
	Content string
}

func NewRecipeService(recipes RecipeStore, users UserStore, cache RecipeCache, publisher ActivityPublisher) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		users:     users,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *RecipeService) Create(input CreateRecipeInput) (*model.Recipe, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	owner, err := s.users.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrInvalidInput
	}

	recipe := &model.Recipe{
		ID:      uuid.NewString(),
		Title:   title,
		Content: input.Content,
		UserID:  owner.ID,
	}
	if err := s.recipes.Create(recipe); err != nil {
		return nil, err
	}

	s.publishActivity(recipe, model.ActivityRecipeCreated)
	return recipe, nil
}

func (s *RecipeService) Get(id string) (*model.Recipe, error) {
	if id == "" {
		return nil, ErrRecipeNotFound
	}

	ctx := context.Background()
	if s.cache != nil {
		if cached, hit, err := s.cache.GetRecipe(ctx, id); err == nil && hit {
			return cached, nil
		}
	}

	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	if s.cache != nil {
		_ = s.cache.SetRecipe(ctx, recipe)
	}
	return recipe, nil
}

// Update replaces title and content; id and user_id never change. A delete
// racing this call wins: the update hits zero rows and fails with not found.
func (s *RecipeService) Update(id string, input UpdateRecipeInput) (*model.Recipe, error) {
	if id == "" {
		return nil, ErrRecipeNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	updated, err := s.recipes.UpdateFields(id, title, input.Content)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrRecipeNotFound
	}

	if s.cache != nil {
		_ = s.cache.DeleteRecipe(context.Background(), id)
	}

	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	s.publishActivity(recipe, model.ActivityRecipeUpdated)
	return recipe, nil
}

func (s *RecipeService) Delete(id string) error {
	if id == "" {
		return ErrRecipeNotFound
	}

	recipe, err := s.recipes.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	deleted, err := s.recipes.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}

	if s.cache != nil {
		_ = s.cache.DeleteRecipe(context.Background(), id)
	}

	s.publishActivity(recipe, model.ActivityRecipeDeleted)
	return nil
}

// Search lists every recipe whose title contains keyword as a case-sensitive
// substring. An empty keyword lists all recipes.
func (s *RecipeService) Search(keyword string) ([]model.Recipe, error) {
	recipes, err := s.recipes.SearchByTitle(keyword)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

// publishActivity is best effort: the activity feed never fails a request.
func (s *RecipeService) publishActivity(recipe *model.Recipe, action string) {
	if s.publisher == nil {
		return
	}
	activity := model.Activity{
		ID:        uuid.NewString(),
		UserID:    recipe.UserID,
		RecipeID:  recipe.ID,
		Action:    action,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(context.Background(), activity); err != nil {
		log.Printf("publish activity failed: %v", err)
	}
}
