package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/service"
)

// ProfileHandler exposes the biometric profile, the nutrition report and the
// progress photo flow.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type ProfileRequest struct {
	Name             string               `json:"name"`
	Bodyweight       float64              `json:"bodyweight" binding:"required,gt=0"`
	Height           float64              `json:"height" binding:"required,gt=0"`
	Age              int                  `json:"age" binding:"required,gt=0"`
	Sex              domain.Sex           `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel    domain.ActivityLevel `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active"`
	Goal             string               `json:"goal"`
	RestTimerSeconds int                  `json:"restTimerSeconds" binding:"omitempty,min=1"`
}

type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType"`
}

type PhotoUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type PhotoConfirmRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// GetProfile returns the stored profile, or the onboarding default.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile validates and persists the profile, completing onboarding.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := &domain.Profile{
		UserID:           userID,
		Name:             req.Name,
		Bodyweight:       req.Bodyweight,
		Height:           req.Height,
		Age:              req.Age,
		Sex:              req.Sex,
		ActivityLevel:    req.ActivityLevel,
		Goal:             req.Goal,
		RestTimerSeconds: req.RestTimerSeconds,
	}
	if err := h.profileService.SaveProfile(c.Request.Context(), profile); err != nil {
		if errors.Is(err, service.ErrInvalidProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetNutritionReport returns the daily targets derived from the profile.
func (h *ProfileHandler) GetNutritionReport(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	report, err := h.profileService.NutritionReport(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute nutrition report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GeneratePhotoUploadURL returns a presigned PUT URL for a progress photo.
func (h *ProfileHandler) GeneratePhotoUploadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	uploadURL, objectKey, err := h.profileService.GeneratePhotoUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}
	c.JSON(http.StatusOK, PhotoUploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// ConfirmPhotoUpload records an uploaded photo on the profile.
func (h *ProfileHandler) ConfirmPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	var req PhotoConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.profileService.ConfirmPhotoUpload(c.Request.Context(), userID, req.ObjectKey); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to confirm photo upload")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPhotoURL returns a presigned GET URL for the current progress photo.
func (h *ProfileHandler) GetPhotoURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to identify user")
		return
	}
	url, err := h.profileService.PhotoDownloadURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoPhoto) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate photo URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
