package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/transport/http/middleware"
	"recipebox/internal/transport/http/response"
)

type BookmarkHandler struct {
	bookmarkService *app.BookmarkService
}

type BookmarkRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
}

func NewBookmarkHandler(bookmarkService *app.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "recipe_id is required")
		return
	}

	bookmark, err := h.bookmarkService.Add(userID, req.RecipeID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrBookmarkExists):
			response.Error(c, http.StatusConflict, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "add bookmark failed")
		}
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "recipe_id is required")
		return
	}

	if err := h.bookmarkService.Remove(userID, req.RecipeID); err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrBookmarkNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "remove bookmark failed")
		}
		return
	}

	response.Message(c, http.StatusOK, "bookmark removed successfully")
}

func (h *BookmarkHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	bookmarks, err := h.bookmarkService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list bookmarks failed")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}
