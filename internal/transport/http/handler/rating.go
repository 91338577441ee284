package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/transport/http/middleware"
	"recipebox/internal/transport/http/response"
)

type RatingHandler struct {
	ratingService *app.RatingService
}

type CreateRatingRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Value    int    `json:"value" binding:"required"`
}

type UpdateRatingRequest struct {
	Value int `json:"value" binding:"required"`
}

func NewRatingHandler(ratingService *app.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	var req CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "recipe_id and value are required")
		return
	}

	rating, err := h.ratingService.Rate(userID, req.RecipeID, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "create rating failed")
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "value is required")
		return
	}

	rating, err := h.ratingService.Update(userID, c.Param("id"), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrRatingNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "update rating failed")
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	if err := h.ratingService.Delete(userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, app.ErrRatingNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "delete rating failed")
		}
		return
	}

	response.Message(c, http.StatusOK, "rating deleted successfully")
}

func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratingService.ListByRecipe(c.Query("recipe_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list ratings failed")
		return
	}

	c.JSON(http.StatusOK, ratings)
}
