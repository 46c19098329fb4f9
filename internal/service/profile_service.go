package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/nutrition"
	"gymzen/gymlog-app/internal/repository"
	"gymzen/gymlog-app/internal/storage"
)

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrNoPhoto        = errors.New("no profile photo uploaded")
)

// ProfileService manages the biometric profile and everything derived from
// it: the nutrition report and the optional progress photo.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	NutritionReport(ctx context.Context, userID string) (*nutrition.Report, error)
	GeneratePhotoUploadURL(ctx context.Context, userID, contentType string) (uploadURL, objectKey string, err error)
	ConfirmPhotoUpload(ctx context.Context, userID, objectKey string) error
	PhotoDownloadURL(ctx context.Context, userID string) (string, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	fileStorage storage.FileStorage
}

// NewProfileService creates a new instance of profileService. fileStorage may
// be nil when object storage is not configured; photo operations then fail
// cleanly.
func NewProfileService(profileRepo repository.ProfileRepository, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile returns the stored profile, or the onboarding default when the
// user has never saved one.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultProfile(userID), nil
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile validates and persists the profile. Saving completes
// onboarding, so IsNewUser is always cleared.
func (s *profileService) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	if profile.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrInvalidProfile)
	}
	if profile.Bodyweight <= 0 || profile.Height <= 0 || profile.Age <= 0 {
		return fmt.Errorf("%w: bodyweight, height and age must be positive", ErrInvalidProfile)
	}
	switch profile.Sex {
	case domain.SexMale, domain.SexFemale:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, profile.Sex)
	}
	switch profile.ActivityLevel {
	case domain.ActivitySedentary, domain.ActivityLight, domain.ActivityModerate, domain.ActivityActive:
	case "":
		profile.ActivityLevel = domain.ActivityModerate
	default:
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, profile.ActivityLevel)
	}

	// The photo key is managed by the upload flow, not the profile form.
	if existing, err := s.profileRepo.Get(ctx, profile.UserID); err == nil {
		profile.PhotoObjectKey = existing.PhotoObjectKey
	}

	profile.IsNewUser = false
	return s.profileRepo.Save(ctx, profile)
}

// NutritionReport computes the daily targets from the stored profile.
func (s *profileService) NutritionReport(ctx context.Context, userID string) (*nutrition.Report, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := nutrition.Calculate(profile)
	return &report, nil
}

// GeneratePhotoUploadURL returns a presigned PUT URL for a new progress
// photo. The caller uploads directly to object storage, then confirms the key.
func (s *profileService) GeneratePhotoUploadURL(ctx context.Context, userID, contentType string) (string, string, error) {
	if s.fileStorage == nil {
		return "", "", errors.New("object storage is not configured")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectKey := fmt.Sprintf("profiles/%s/photo-%s", userID, uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return uploadURL, objectKey, nil
}

// ConfirmPhotoUpload records the uploaded object key on the profile and
// deletes the previous photo, if any.
func (s *profileService) ConfirmPhotoUpload(ctx context.Context, userID, objectKey string) error {
	if objectKey == "" {
		return errors.New("object key is required")
	}
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	previous := profile.PhotoObjectKey
	profile.PhotoObjectKey = objectKey
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return err
	}

	if previous != "" && previous != objectKey && s.fileStorage != nil {
		// Best effort; an orphaned object is not worth failing the request.
		_ = s.fileStorage.DeleteObject(ctx, previous)
	}
	return nil
}

// PhotoDownloadURL returns a presigned GET URL for the current progress
// photo.
func (s *profileService) PhotoDownloadURL(ctx context.Context, userID string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("object storage is not configured")
	}
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile.PhotoObjectKey == "" {
		return "", ErrNoPhoto
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, profile.PhotoObjectKey, storage.DefaultPresignedURLExpiry)
}
