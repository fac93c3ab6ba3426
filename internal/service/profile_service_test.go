package service

import (
	"context"
	"testing"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetBeforeSave(t *testing.T) {
	svc := newMemoryServices()

	profile, err := svc.profile.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_Save(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		input       model.UserProfile
		expectError bool
		expected    model.UserProfile
	}{
		{
			name:     "trims fields",
			input:    model.UserProfile{Name: "  Ada  ", Email: " ada@example.com "},
			expected: model.UserProfile{Name: "Ada", Email: "ada@example.com"},
		},
		{
			name:     "email is optional",
			input:    model.UserProfile{Name: "Grace"},
			expected: model.UserProfile{Name: "Grace"},
		},
		{
			name:        "blank name is rejected",
			input:       model.UserProfile{Name: "   ", Email: "x@example.com"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMemoryServices()

			saved, err := svc.profile.Save(ctx, tt.input)

			if tt.expectError {
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "name", validationErr.Field)

				stored, err := svc.profile.Get(ctx)
				require.NoError(t, err)
				assert.Nil(t, stored)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *saved)

			stored, err := svc.profile.Get(ctx)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.expected, *stored)
		})
	}
}

func TestProfileService_Stats(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices()

	_, err := svc.favorites.AddByID(ctx, 1)
	require.NoError(t, err)
	_, err = svc.favorites.AddByID(ctx, 2)
	require.NoError(t, err)
	_, err = svc.cart.AddByID(ctx, 1, 1)
	require.NoError(t, err)
	_, err = svc.orders.Checkout(ctx, validCustomer(), model.PaymentCash)
	require.NoError(t, err)

	stats, err := svc.profile.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ProfileStats{FavoritesCount: 2, OrdersCount: 1}, stats)
}
