package pipeline

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/pipeline"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/pkg/utils"
)

// Handler serves the procurement pipeline datasets backing the dashboard
// screens.
type Handler struct{}

// New creates the pipeline handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes registers pipeline data routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/pipeline/prs", h.handlePRs)
	r.Get("/pipeline/kpis", h.handleKPIs)
	r.Get("/pipeline/stages", h.handleStages)
	r.Get("/pipeline/audit", h.handleAudit)
	r.Get("/pipeline/grievances", h.handleGrievances)
}

func (h *Handler) handlePRs(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, pipeline.PRs())
}

func (h *Handler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, pipeline.KPIs())
}

func (h *Handler) handleStages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, pipeline.Stages())
}

// handleAudit returns audit events filtered by the pr and doa query params.
func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	prQuery := r.URL.Query().Get("pr")
	doaLevel := r.URL.Query().Get("doa")
	if doaLevel == "" {
		doaLevel = "all"
	}
	utils.RespondJSON(w, http.StatusOK, pipeline.FilterAuditEvents(pipeline.AuditEvents(), prQuery, doaLevel))
}

func (h *Handler) handleGrievances(w http.ResponseWriter, r *http.Request) {
	items := pipeline.Grievances()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"items":  items,
		"counts": pipeline.GrievanceCounts(items),
	})
}
