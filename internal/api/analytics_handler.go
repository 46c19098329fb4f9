package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymzen/gymlog-app/internal/analytics"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/service"
)

// AnalyticsHandler derives progress metrics from workout history. The math
// lives in the analytics package; this layer only fetches inputs and shapes
// the response.
type AnalyticsHandler struct {
	workoutService service.WorkoutService
	profileService service.ProfileService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(workoutService service.WorkoutService, profileService service.ProfileService) *AnalyticsHandler {
	return &AnalyticsHandler{
		workoutService: workoutService,
		profileService: profileService,
	}
}

// RecordResponse is one exercise's personal records plus its strength
// classification, when the lift has one.
type RecordResponse struct {
	ExerciseID    string  `json:"exerciseId"`
	OneRepMax     float64 `json:"oneRepMax"`
	MaxWeight     float64 `json:"maxWeight"`
	StrengthLevel string  `json:"strengthLevel,omitempty"`
}

type RecordsResponse struct {
	Records []RecordResponse              `json:"records"`
	Targets map[string]program.LiftTarget `json:"targets"`
}

// GetRecords returns per-exercise personal records and strength levels.
func (h *AnalyticsHandler) GetRecords(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	history, err := h.workoutService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load history")
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	records := analytics.PersonalRecords(history)
	resp := RecordsResponse{
		Records: make([]RecordResponse, 0, len(records)),
		Targets: program.Targets,
	}
	for exerciseID, record := range records {
		resp.Records = append(resp.Records, RecordResponse{
			ExerciseID:    exerciseID,
			OneRepMax:     record.OneRepMax,
			MaxWeight:     record.MaxWeight,
			StrengthLevel: analytics.StrengthLevel(exerciseID, profile.Bodyweight, record.OneRepMax),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetMuscleGroupVolume returns per-muscle-group volume over a trailing
// window, default seven days.
func (h *AnalyticsHandler) GetMuscleGroupVolume(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}

	windowDays := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		windowDays = parsed
	}

	history, err := h.workoutService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	volume := analytics.MuscleGroupVolume(history, windowDays, time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{
		"windowDays":   windowDays,
		"muscleGroups": program.MuscleGroups,
		"volume":       volume,
	})
}
