package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler/agents"
	chatHandler "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler/events"
	pipelineHandler "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler/pipeline"
	sampleHandler "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler/sample"
	middlewarePkg "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/middleware"
	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/overlay"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(registry agentmodel.Registry, controller *dispatch.Controller, sync *overlay.Synchronizer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		agents.New(registry).RegisterRoutes(api)
		chatHandler.New(controller).RegisterRoutes(api)
		sampleHandler.New(sync).RegisterRoutes(api)
		pipelineHandler.New().RegisterRoutes(api)
		events.New(controller.Events()).RegisterRoutes(api)
	})

	return r
}
