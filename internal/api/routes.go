package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gymzen/gymlog-app/internal/service"
)

// SetupRoutes wires every handler into the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	logger *logrus.Logger,
	authService service.AuthService,
	workoutService service.WorkoutService,
	templateService service.TemplateService,
	profileService service.ProfileService,
	catalogService service.CatalogService,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	templateHandler := NewTemplateHandler(templateService, catalogService)
	profileHandler := NewProfileHandler(profileService)
	analyticsHandler := NewAnalyticsHandler(workoutService, profileService)
	bootstrapHandler := NewBootstrapHandler(profileService, templateService, workoutService, catalogService, logger)

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
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		protected.GET("/bootstrap", bootstrapHandler.Bootstrap)

		// --- Active Session ---
		sessionGroup := protected.Group("/workouts/session")
		{
			sessionGroup.POST("", workoutHandler.StartSession)
			sessionGroup.GET("", workoutHandler.GetActiveSession)
			sessionGroup.DELETE("", workoutHandler.DiscardSession)
			sessionGroup.POST("/finish", workoutHandler.FinishSession)
			sessionGroup.PATCH("/date", workoutHandler.SetSessionDate)

			sessionGroup.PATCH("/exercises/:exerciseIdx/sets/:setIdx", workoutHandler.UpdateSet)
			sessionGroup.POST("/exercises/:exerciseIdx/sets/:setIdx/toggle", workoutHandler.ToggleSet)
			sessionGroup.POST("/exercises/:exerciseIdx/toggle-all", workoutHandler.ToggleSelectAll)
			sessionGroup.POST("/exercises/:exerciseIdx/sets", workoutHandler.AddSet)
			sessionGroup.DELETE("/exercises/:exerciseIdx/sets/:setIdx", workoutHandler.RemoveSet)

			sessionGroup.POST("/timer/skip", workoutHandler.SkipTimer)
			sessionGroup.POST("/timer/extend", workoutHandler.ExtendTimer)
		}

		// --- History ---
		protected.GET("/workouts", workoutHandler.GetHistory)
		protected.PUT("/workouts/:id", workoutHandler.UpdateWorkout)
		protected.GET("/workouts/export", workoutHandler.ExportHistory)

		// --- Templates & Catalog ---
		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.GetTemplates)
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.PUT("/:id", templateHandler.UpdateTemplate)
			templateGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}
		protected.GET("/catalog", templateHandler.GetCatalog)

		// --- Profile & Nutrition ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.SaveProfile)
			profileGroup.GET("/nutrition", profileHandler.GetNutritionReport)
			profileGroup.POST("/photo/upload-url", profileHandler.GeneratePhotoUploadURL)
			profileGroup.POST("/photo/confirm", profileHandler.ConfirmPhotoUpload)
			profileGroup.GET("/photo", profileHandler.GetPhotoURL)
		}

		// --- Analytics ---
		analyticsGroup := protected.Group("/analytics")
		{
			analyticsGroup.GET("/records", analyticsHandler.GetRecords)
			analyticsGroup.GET("/volume", analyticsHandler.GetMuscleGroupVolume)
		}
	}
}
