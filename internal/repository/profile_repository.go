package repository

import (
	"context"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/storage"

	"github.com/rs/zerolog"
)

type profileRepository struct {
	docs collection[*model.UserProfile]
}

// NewProfileRepository creates a user profile repository on the given store.
func NewProfileRepository(store storage.Store, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{docs: newCollection[*model.UserProfile](store, storage.KeyUserProfile, logger)}
}

// Get returns the stored profile, or nil if none was saved.
func (r *profileRepository) Get(ctx context.Context) (*model.UserProfile, error) {
	profile, _, err := r.docs.load(ctx)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save replaces the stored profile.
func (r *profileRepository) Save(ctx context.Context, profile *model.UserProfile) error {
	return r.docs.save(ctx, profile)
}
