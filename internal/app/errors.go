package app

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrBookmarkExists    = errors.New("bookmark already exists")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
	ErrRatingNotFound    = errors.New("rating not found")
)
