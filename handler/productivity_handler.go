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

// ProductivityProvider produces the day-bucketed completion trend.
type ProductivityProvider interface {
	GetProductivity(ctx context.Context, userID string, days int) (*model.ProductivityReport, error)
}

type ProductivityHandler struct {
	productivity ProductivityProvider
}

func NewProductivityHandler(productivity ProductivityProvider) *ProductivityHandler {
	return &ProductivityHandler{productivity: productivity}
}

type productivityQuery struct {
	Days int `form:"days,default=30" binding:"omitempty,min=1,max=3650"`
}

func (h *ProductivityHandler) GetProductivity(c *gin.Context) {
	var params userIDParam
	if err := c.ShouldBindUri(&params); err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	var query productivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid days parameter")
		return
	}

	report, err := h.productivity.GetProductivity(c.Request.Context(), params.UserID, query.Days)
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		utils.BadRequest(c, "Invalid user ID")
		return
	case errors.Is(err, usecase.ErrInvalidDays):
		utils.BadRequest(c, "Invalid days parameter")
		return
	case err != nil:
		log.Printf("Error analyzing productivity for user %s: %v", params.UserID, err)
		utils.InternalError(c, "Failed to analyze productivity")
		return
	}

	c.JSON(http.StatusOK, report)
}
