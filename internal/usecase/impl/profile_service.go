package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"townhub/internal/domain/entity"
	domainerrors "townhub/internal/domain/errors"
	"townhub/internal/domain/repository"
	"townhub/internal/errors"
	"townhub/internal/usecase"
)

type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the stored profile, creating it from the session
// claims on first access so later token registration always has a
// document to attach to.
func (s *profileService) GetProfile(ctx context.Context, session entity.Session) (*entity.UserProfile, error) {
	profile, err := s.userRepo.FindByUID(ctx, session.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "get profile")
	}

	now := time.Now()
	profile = &entity.UserProfile{
		UID:         session.UID,
		DisplayName: session.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.userRepo.Upsert(ctx, profile); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to provision user profile")
	}

	s.logger.Info("provisioned profile on first access", slog.String("uid", session.UID))
	return profile, nil
}

func (s *profileService) UpdateDisplayName(ctx context.Context, session entity.Session, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domainerrors.ErrValidationFailed
	}

	// Make sure the profile document exists before patching it.
	if _, err := s.GetProfile(ctx, session); err != nil {
		return err
	}

	if err := s.userRepo.UpdateDisplayName(ctx, session.UID, displayName); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update display name")
	}
	return nil
}

func (s *profileService) RegisterFCMToken(ctx context.Context, session entity.Session, token string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidationFailed
	}

	if _, err := s.GetProfile(ctx, session); err != nil {
		return err
	}

	if err := s.userRepo.AddFCMToken(ctx, session.UID, token); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to register fcm token")
	}

	s.logger.Debug("registered fcm token", slog.String("uid", session.UID))
	return nil
}

func (s *profileService) UnregisterFCMToken(ctx context.Context, session entity.Session, token string) error {
	if strings.TrimSpace(token) == "" {
		return domainerrors.ErrValidationFailed
	}

	if err := s.userRepo.RemoveFCMTokens(ctx, session.UID, []string{token}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to unregister fcm token")
	}
	return nil
}
