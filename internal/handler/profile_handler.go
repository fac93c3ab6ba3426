package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"
	"github.com/CobbyElsonfx/food-delivery-app/internal/service"

	"github.com/rs/zerolog"
)

// ProfileResponse combines the optional profile with collection counts.
type ProfileResponse struct {
	Profile *model.UserProfile `json:"profile"`
	Stats   model.ProfileStats `json:"stats"`
}

// ProfileHandler handles profile HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profile. profile is null until one is saved.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Profile: profile, Stats: stats})
}

// Save handles PUT /api/profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	profile, err := h.service.Save(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
