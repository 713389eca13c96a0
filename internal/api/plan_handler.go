package api

import (
	"errors"
	"net/http"
	"time"

	"myfitness/server/internal/ai"
	"myfitness/server/internal/domain"
	"myfitness/server/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves weekly workout plan generation and retrieval.
type PlanHandler struct {
	planService     service.PlanService
	exerciseService service.ExerciseService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, exerciseService service.ExerciseService) *PlanHandler {
	return &PlanHandler{
		planService:     planService,
		exerciseService: exerciseService,
	}
}

// --- Response Structs ---

// DayPlanResponse is a day entry with its exercise ids resolved against the
// catalog. Ids the generator invented are listed separately so the client
// can render them as "not found" instead of breaking the day.
type DayPlanResponse struct {
	Day                string                  `json:"day"`
	Type               string                  `json:"type"`
	MuscleGroup        string                  `json:"muscleGroup"`
	ExerciseIDs        []string                `json:"exerciseIds"`
	Exercises          []domain.ExerciseRecord `json:"exercises"`
	MissingExerciseIDs []string                `json:"missingExerciseIds,omitempty"`
	Duration           int                     `json:"duration"`
	Calories           int                     `json:"calories"`
	Notes              string                  `json:"notes"`
}

type WeeklyPlanResponse struct {
	PlanID    string            `json:"planId"`
	Days      []DayPlanResponse `json:"days"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// --- Handler Methods ---

// GeneratePlan runs the AI pipeline and stores the result as the user's
// current workout.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plan, err := h.planService.GenerateWeeklyPlan(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileIncomplete):
			abortWithError(c, http.StatusUnprocessableEntity, "Complete your profile before generating a plan")
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ai.ErrMissingAPIKey):
			abortWithError(c, http.StatusServiceUnavailable, "Plan generation is not configured")
		case errors.Is(err, service.ErrGenerationFailed):
			abortWithError(c, http.StatusBadGateway, "Plan generation failed, please try again")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate plan")
		}
		return
	}

	c.JSON(http.StatusCreated, h.mapPlanToResponse(c, plan))
}

// GetCurrentPlan returns the user's current workout plan.
func (h *PlanHandler) GetCurrentPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plan, err := h.planService.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load plan")
		}
		return
	}

	c.JSON(http.StatusOK, h.mapPlanToResponse(c, plan))
}

func (h *PlanHandler) mapPlanToResponse(c *gin.Context, plan *domain.WeeklyPlan) WeeklyPlanResponse {
	resp := WeeklyPlanResponse{
		PlanID:    plan.PlanID,
		Days:      make([]DayPlanResponse, 0, len(plan.Days)),
		UpdatedAt: plan.UpdatedAt,
	}

	for _, day := range plan.Days {
		found, missing, err := h.exerciseService.ResolveExercises(c.Request.Context(), day.ExerciseIDs)
		if err != nil {
			// Catalog failure degrades resolution, not the plan itself.
			found, missing = []domain.ExerciseRecord{}, day.ExerciseIDs
		}

		resp.Days = append(resp.Days, DayPlanResponse{
			Day:                day.Day,
			Type:               day.Type,
			MuscleGroup:        day.MuscleGroup,
			ExerciseIDs:        day.ExerciseIDs,
			Exercises:          found,
			MissingExerciseIDs: missing,
			Duration:           day.Duration,
			Calories:           day.Calories,
			Notes:              day.Notes,
		})
	}

	return resp
}
