package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	chatmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/pkg/utils"
)

// Handler serves per-screen conversation transcripts and message sends.
type Handler struct {
	controller *dispatch.Controller
}

// New creates the chat handler.
func New(controller *dispatch.Controller) *Handler {
	return &Handler{controller: controller}
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/{screen}", h.handleTranscript)
	r.Post("/chat/{screen}/messages", h.handleSend)
	r.Delete("/chat/{screen}", h.handleClear)
}

type transcriptResponse struct {
	AgentID  string             `json:"agentId"`
	Awaiting bool               `json:"awaiting"`
	Messages []chatmodel.Message `json:"messages"`
}

// handleTranscript returns the conversation bound to a screen.
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	store, binding, ok := h.resolve(w, r)
	if !ok {
		return
	}

	utils.RespondJSON(w, http.StatusOK, transcriptResponse{
		AgentID:  binding.ID,
		Awaiting: store.Awaiting(),
		Messages: store.Messages(),
	})
}

// handleSend dispatches a user message to the screen's agent and blocks
// until the assistant reply is recorded.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	screen, ok := agentmodel.ParseScreen(chi.URLParam(r, "screen"))
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown screen")
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.controller.Send(r.Context(), screen, payload.Content)
	switch {
	case errors.Is(err, chatmodel.ErrBlankInput):
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	case errors.Is(err, chatmodel.ErrBusy):
		utils.RespondError(w, http.StatusConflict, "a dispatch is already in flight")
		return
	case errors.Is(err, dispatch.ErrUnknownScreen):
		utils.RespondError(w, http.StatusNotFound, "no agent bound to screen")
		return
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	store, binding, ok := h.resolve(w, r)
	if !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, transcriptResponse{
		AgentID:  binding.ID,
		Awaiting: store.Awaiting(),
		Messages: store.Messages(),
	})
}

// handleClear drops the conversation for a screen.
func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	store, _, ok := h.resolve(w, r)
	if !ok {
		return
	}
	store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*chatmodel.Store, agentmodel.Binding, bool) {
	screen, ok := agentmodel.ParseScreen(chi.URLParam(r, "screen"))
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown screen")
		return nil, agentmodel.Binding{}, false
	}

	store, binding, err := h.controller.StoreFor(screen)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "no agent bound to screen")
		return nil, agentmodel.Binding{}, false
	}
	return store, binding, true
}
