package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves workout statistics recording and history.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type RecordStatsRequest struct {
	CompletedExercises map[string]int `json:"completedExercises"`
	TotalCalories      int            `json:"totalCaloriesBurned"`
	DaysCompleted      int            `json:"daysCompleted"`
}

// RecordStats replaces this week's stats with the submitted values.
func (h *StatsHandler) RecordStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req RecordStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	stats, err := h.statsService.RecordStats(c.Request.Context(), userID, domain.WorkoutStats{
		CompletedExercises: req.CompletedExercises,
		TotalCalories:      req.TotalCalories,
		DaysCompleted:      req.DaysCompleted,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidStats) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to record stats")
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCurrentStats returns this week's stats.
func (h *StatsHandler) GetCurrentStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	stats, err := h.statsService.GetCurrentStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStatsNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load stats")
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetHistory returns past weeks' stats, newest first.
func (h *StatsHandler) GetHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "12"), 10, 64)

	history, err := h.statsService.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load stats history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
