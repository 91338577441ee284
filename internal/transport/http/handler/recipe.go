package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/transport/http/response"
)

type RecipeHandler struct {
	recipeService *app.RecipeService
}

type CreateRecipeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	UserID  string `json:"user_id" binding:"required"`
}

// UpdateRecipeRequest replaces both fields; partial updates are not supported.
type UpdateRecipeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func NewRecipeHandler(recipeService *app.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and user_id are required")
		return
	}

	recipe, err := h.recipeService.Create(app.CreateRecipeInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "create recipe failed")
		}
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipeService.Get(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrRecipeNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "get recipe failed")
		}
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and content are required")
		return
	}

	recipe, err := h.recipeService.Update(c.Param("id"), app.UpdateRecipeInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrRecipeNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "update recipe failed")
		}
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	if err := h.recipeService.Delete(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, app.ErrRecipeNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "delete recipe failed")
		}
		return
	}

	response.Message(c, http.StatusOK, "recipe deleted successfully")
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.Search(c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "search recipes failed")
		return
	}

	c.JSON(http.StatusOK, recipes)
}
