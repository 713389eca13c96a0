package api

import (
	"errors"
	"fmt"
	"net/http"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's account and fitness profile.
type ProfileHandler struct {
	userService service.UserService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type UpdateProfileRequest struct {
	Age      int    `json:"age" binding:"required,gt=0"`
	Gender   string `json:"gender"`
	HeightCm int    `json:"heightCm" binding:"required,gt=0"`
	WeightKg int    `json:"weightKg" binding:"required,gt=0"`
	Goal     string `json:"goal" binding:"required"`
}

// GetMe returns the authenticated user.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile completes or updates the fitness profile used for plan generation.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, domain.Profile{
		Age:      req.Age,
		Gender:   req.Gender,
		HeightCm: req.HeightCm,
		WeightKg: req.WeightKg,
		Goal:     req.Goal,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}
