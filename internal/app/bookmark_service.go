package app

import (
	"recipebox/internal/model"
)

type BookmarkStore interface {
	Create(bookmark *model.Bookmark) error
	Get(userID, recipeID string) (*model.Bookmark, error)
	Delete(userID, recipeID string) (bool, error)
	ListByUserID(userID string) ([]model.BookmarkedRecipe, error)
}

type BookmarkService struct {
	bookmarks BookmarkStore
	recipes   RecipeStore
}

func NewBookmarkService(bookmarks BookmarkStore, recipes RecipeStore) *BookmarkService {
	return &BookmarkService{
		bookmarks: bookmarks,
		recipes:   recipes,
	}
}

func (s *BookmarkService) Add(userID, recipeID string) (*model.Bookmark, error) {
	if userID == "" || recipeID == "" {
		return nil, ErrInvalidInput
	}

	recipe, err := s.recipes.GetByID(recipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrInvalidInput
	}

	existing, err := s.bookmarks.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBookmarkExists
	}

	bookmark := &model.Bookmark{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.bookmarks.Create(bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkService) Remove(userID, recipeID string) error {
	if userID == "" || recipeID == "" {
		return ErrInvalidInput
	}

	deleted, err := s.bookmarks.Delete(userID, recipeID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookmarkNotFound
	}
	return nil
}

func (s *BookmarkService) List(userID string) ([]model.BookmarkedRecipe, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	rows, err := s.bookmarks.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.BookmarkedRecipe{}
	}
	return rows, nil
}
