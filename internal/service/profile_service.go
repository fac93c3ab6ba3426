package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/repository"

	"github.com/rs/zerolog"
)

type profileService struct {
	profileRepo   repository.ProfileRepository
	favoritesRepo repository.FavoritesRepository
	orderRepo     repository.OrderRepository
	logger        zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	favoritesRepo repository.FavoritesRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) ProfileService {
	return &profileService{
		profileRepo:   profileRepo,
		favoritesRepo: favoritesRepo,
		orderRepo:     orderRepo,
		logger:        logger.With().Str("service", "profile").Logger(),
	}
}

func (s *profileService) Get(ctx context.Context) (*model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Save trims the fields and stores the profile. Email is display-only and not checked.
func (s *profileService) Save(ctx context.Context, profile model.UserProfile) (*model.UserProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)

	if profile.Name == "" {
		return nil, model.NewValidationError("name", "is required")
	}

	if err := s.profileRepo.Save(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Debug().Msg("profile saved")

	return &profile, nil
}

func (s *profileService) Stats(ctx context.Context) (model.ProfileStats, error) {
	favorites, err := s.favoritesRepo.Get(ctx)
	if err != nil {
		return model.ProfileStats{}, fmt.Errorf("failed to get favorites: %w", err)
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return model.ProfileStats{}, fmt.Errorf("failed to get order history: %w", err)
	}

	return model.ProfileStats{
		FavoritesCount: len(favorites),
		OrdersCount:    len(orders),
	}, nil
}
