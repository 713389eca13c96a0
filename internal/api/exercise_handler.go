package api

import (
	"errors"
	"net/http"

	"myfitness/server/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler serves the exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises returns the full catalog.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	records, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Exercise catalog is unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercises": records, "count": len(records)})
}

// GetExercise returns one catalog entry with a presigned media URL.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id := c.Param("id")

	resolved, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Exercise catalog is unavailable")
		}
		return
	}

	c.JSON(http.StatusOK, resolved)
}
