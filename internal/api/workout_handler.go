package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/export"
	"gymzen/gymlog-app/internal/service"
	"gymzen/gymlog-app/internal/workout"
)

// WorkoutHandler exposes the session lifecycle and workout history.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type StartSessionRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	Day        int    `json:"day" binding:"required,min=1"`
}

type SetValueRequest struct {
	// Raw strings so mid-typing values like "" or "12." round-trip the way
	// the editor expects; nil means "leave unchanged".
	Weight *string `json:"weight"`
	Reps   *string `json:"reps"`
}

type SessionDateRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

type ExtendTimerRequest struct {
	Seconds int `json:"seconds" binding:"required,min=1"`
}

type UpdateWorkoutRequest struct {
	Exercises []domain.SessionExercise `json:"exercises" binding:"required"`
	Date      time.Time                `json:"date" binding:"required"`
}

// respondSessionView writes the active session view or maps the service
// error to a status code.
func (h *WorkoutHandler) respondSessionView(c *gin.Context, view *service.ActiveSessionView, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, workout.ErrBadIndex), errors.Is(err, workout.ErrFutureDate):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update session")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// pathIndex parses a zero-based index path parameter.
func pathIndex(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil || idx < 0 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return idx, true
}

// StartSession builds a new in-progress session from a template day.
func (h *WorkoutHandler) StartSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	view, err := h.workoutService.StartSession(c.Request.Context(), userID, req.TemplateID, req.Day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmptyDay):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to start session")
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetActiveSession returns the in-progress session and timer state.
func (h *WorkoutHandler) GetActiveSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	view, err := h.workoutService.ActiveSession(userID)
	h.respondSessionView(c, view, err)
}

// DiscardSession abandons the in-progress session.
func (h *WorkoutHandler) DiscardSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	if err := h.workoutService.DiscardSession(userID); err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to discard session")
		return
	}
	c.Status(http.StatusNoContent)
}

// FinishSession finalizes the in-progress session into history.
func (h *WorkoutHandler) FinishSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	session, err := h.workoutService.FinishSession(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save workout")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSet overwrites a set's weight and/or reps from raw input.
func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	exerciseIdx, ok := pathIndex(c, "exerciseIdx")
	if !ok {
		return
	}
	setIdx, ok := pathIndex(c, "setIdx")
	if !ok {
		return
	}
	var req SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	var view *service.ActiveSessionView
	if req.Weight != nil {
		view, err = h.workoutService.SetWeight(userID, exerciseIdx, setIdx, *req.Weight)
		if err != nil {
			h.respondSessionView(c, nil, err)
			return
		}
	}
	if req.Reps != nil {
		view, err = h.workoutService.SetReps(userID, exerciseIdx, setIdx, *req.Reps)
		if err != nil {
			h.respondSessionView(c, nil, err)
			return
		}
	}
	if view == nil {
		view, err = h.workoutService.ActiveSession(userID)
	}
	h.respondSessionView(c, view, err)
}

// ToggleSet flips a set's completion flag.
func (h *WorkoutHandler) ToggleSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	exerciseIdx, ok := pathIndex(c, "exerciseIdx")
	if !ok {
		return
	}
	setIdx, ok := pathIndex(c, "setIdx")
	if !ok {
		return
	}
	view, err := h.workoutService.ToggleSet(userID, exerciseIdx, setIdx)
	h.respondSessionView(c, view, err)
}

// ToggleSelectAll flips completion for every set of an exercise.
func (h *WorkoutHandler) ToggleSelectAll(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	exerciseIdx, ok := pathIndex(c, "exerciseIdx")
	if !ok {
		return
	}
	view, err := h.workoutService.ToggleSelectAll(userID, exerciseIdx)
	h.respondSessionView(c, view, err)
}

// AddSet appends a set to an exercise.
func (h *WorkoutHandler) AddSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	exerciseIdx, ok := pathIndex(c, "exerciseIdx")
	if !ok {
		return
	}
	view, err := h.workoutService.AddSet(userID, exerciseIdx)
	h.respondSessionView(c, view, err)
}

// RemoveSet deletes a set from an exercise.
func (h *WorkoutHandler) RemoveSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	exerciseIdx, ok := pathIndex(c, "exerciseIdx")
	if !ok {
		return
	}
	setIdx, ok := pathIndex(c, "setIdx")
	if !ok {
		return
	}
	view, err := h.workoutService.RemoveSet(userID, exerciseIdx, setIdx)
	h.respondSessionView(c, view, err)
}

// SetSessionDate overwrites the session's logical date.
func (h *WorkoutHandler) SetSessionDate(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req SessionDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	view, err := h.workoutService.SetDate(userID, req.Date)
	h.respondSessionView(c, view, err)
}

// SkipTimer dismisses the running rest countdown.
func (h *WorkoutHandler) SkipTimer(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	view, err := h.workoutService.SkipTimer(userID)
	h.respondSessionView(c, view, err)
}

// ExtendTimer adds seconds to the running rest countdown.
func (h *WorkoutHandler) ExtendTimer(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req ExtendTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	view, err := h.workoutService.ExtendTimer(userID, req.Seconds)
	h.respondSessionView(c, view, err)
}

// GetHistory returns the user's workout history, newest first.
func (h *WorkoutHandler) GetHistory(c *gin.Context) {
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
	if history == nil {
		history = []domain.WorkoutSession{}
	}
	c.JSON(http.StatusOK, history)
}

// UpdateWorkout overwrites a persisted workout's exercises and date.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID")
		return
	}
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, req.Exercises, req.Date)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportHistory streams the full workout history as CSV.
func (h *WorkoutHandler) ExportHistory(c *gin.Context) {
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

	filename := fmt.Sprintf("workouts-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteHistoryCSV(c.Writer, history); err != nil {
		// Headers may already be sent; nothing useful left to do.
		_ = c.Error(err)
	}
}
