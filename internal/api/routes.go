package api

import (
	"net/http"

	"myfitness/server/internal/service"
	"myfitness/server/internal/tips"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	userService service.UserService,
	planService service.PlanService,
	statsService service.StatsService,
	exerciseService service.ExerciseService,
) {

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewPlanHandler(planService, exerciseService)
	statsHandler := NewStatsHandler(statsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Account / Profile ---
		protected.GET("/me", profileHandler.GetMe)
		protected.PUT("/me/profile", profileHandler.UpdateProfile)

		// --- Exercise Catalog ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}

		// --- Workout Plans ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("/generate", planHandler.GeneratePlan)
			workoutGroup.GET("/current", planHandler.GetCurrentPlan)
		}

		// --- Statistics ---
		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("", statsHandler.GetCurrentStats)
			statsGroup.PUT("", statsHandler.RecordStats)
			statsGroup.GET("/history", statsHandler.GetHistory)
		}

		// --- Tips ---
		protected.GET("/tips", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tip": tips.Random()})
		})
	}
}
