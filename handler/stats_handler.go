package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// StatsProvider produces the per-user task snapshot.
type StatsProvider interface {
	GetUserStats(ctx context.Context, userID string) (*model.TaskStats, error)
}

type StatsHandler struct {
	stats StatsProvider
}

func NewStatsHandler(stats StatsProvider) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type userIDParam struct {
	UserID string `uri:"userId" binding:"required,objectid"`
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	var params userIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	stats, err := h.stats.GetUserStats(c.Request.Context(), params.UserID)
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		utils.BadRequest(c, "Invalid user ID")
		return
	case errors.Is(err, usecase.ErrUserNotFound):
		utils.NotFound(c, "User not found")
		return
	case err != nil:
		log.Printf("Error fetching stats for user %s: %v", params.UserID, err)
		utils.InternalError(c, "Failed to fetch user stats")
		return
	}

	// Flat payload, the shape the frontend charts consume directly
	c.JSON(http.StatusOK, stats)
}
