package agents

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/pkg/utils"
)

// Handler serves the agent binding catalog.
type Handler struct {
	registry agentmodel.Registry
}

// New creates the agents handler.
func New(registry agentmodel.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers agent catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/agents", h.handleListAgents)
	r.Get("/agents/{screen}", h.handleAgentForScreen)
}

// handleListAgents lists every agent binding in screen order.
func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.registry.List())
}

// handleAgentForScreen resolves the binding attached to one screen.
func (h *Handler) handleAgentForScreen(w http.ResponseWriter, r *http.Request) {
	screen, ok := agentmodel.ParseScreen(chi.URLParam(r, "screen"))
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown screen")
		return
	}

	binding, ok := h.registry.ByScreen(screen)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "no agent bound to screen")
		return
	}
	utils.RespondJSON(w, http.StatusOK, binding)
}
