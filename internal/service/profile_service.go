package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/integration"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// imageExtensions maps the accepted sniffed content types to object key extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error)
	UploadPicture(ctx context.Context, userID string, req *models.UploadPictureRequest) (*models.UserProfile, error)
}

type profileService struct {
	profileRepo   repository.ProfileRepository
	storage       integration.AvatarStorage
	maxUploadSize int64
	logger        zerolog.Logger
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	storage integration.AvatarStorage,
	maxUploadSize int64,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		profileRepo:   profileRepo,
		storage:       storage,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.attachPictureURL(ctx, profile)
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Address = req.Address
	profile.School = req.School
	profile.Course = req.Course
	profile.Bio = req.Bio
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Msg("Profile updated")

	s.attachPictureURL(ctx, profile)
	return profile, nil
}

func (s *profileService) UploadPicture(ctx context.Context, userID string, req *models.UploadPictureRequest) (*models.UserProfile, error) {
	if s.maxUploadSize > 0 && int64(len(req.Content)) > s.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	contentType := http.DetectContentType(req.Content)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedImageType
	}

	profile, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), ext)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(req.Content), int64(len(req.Content)), contentType); err != nil {
		if errors.Is(err, integration.ErrStorageDisabled) {
			return nil, ErrStorageDisabled
		}
		return nil, fmt.Errorf("failed to upload profile picture: %w", err)
	}

	previous := profile.ProfilePic
	profile.ProfilePic = &key
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile picture: %w", err)
	}

	if previous != nil && *previous != key {
		if err := s.storage.Delete(ctx, *previous); err != nil {
			s.logger.Warn().Err(err).Str("key", *previous).Msg("Failed to delete previous profile picture")
		}
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("key", key).
		Str("file_name", req.FileName).
		Msg("Profile picture uploaded")

	s.attachPictureURL(ctx, profile)
	return profile, nil
}

func (s *profileService) loadOrCreate(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now()
	profile = &models.UserProfile{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

func (s *profileService) attachPictureURL(ctx context.Context, profile *models.UserProfile) {
	if profile.ProfilePic == nil {
		return
	}

	url, err := s.storage.PresignedURL(ctx, *profile.ProfilePic)
	if err != nil {
		if !errors.Is(err, integration.ErrStorageDisabled) {
			s.logger.Warn().Err(err).Str("user_id", profile.UserID).Msg("Failed to presign profile picture")
		}
		return
	}
	profile.ProfilePicURL = url
}
