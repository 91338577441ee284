package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/transport/http/middleware"
	"recipebox/internal/transport/http/response"
)

type ActivityHandler struct {
	activityService *app.ActivityService
}

func NewActivityHandler(activityService *app.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "user not found in token")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	activities, err := h.activityService.ListForUser(userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "list activity failed")
		return
	}

	c.JSON(http.StatusOK, activities)
}
