package sample

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/overlay"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/pkg/utils"
)

// Handler drives the sample data overlay from HTTP clients.
type Handler struct {
	sync *overlay.Synchronizer
}

// New creates the sample overlay handler.
func New(sync *overlay.Synchronizer) *Handler {
	return &Handler{sync: sync}
}

// RegisterRoutes registers the overlay toggle route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/sample", h.handleToggle)
}

// handleToggle applies a new toggle value across every conversation store.
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Show *bool `json:"show"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Show == nil {
		utils.RespondError(w, http.StatusBadRequest, "show flag is required")
		return
	}

	h.sync.Observe(*payload.Show)
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"show": *payload.Show})
}
