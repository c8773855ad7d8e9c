// Package app wires the core services shared by the API and dashboard
// binaries.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/config"
	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	agentsvc "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/overlay"
)

// Core bundles the services behind every frontend.
type Core struct {
	Registry     agentmodel.Registry
	Stores       *chat.Stores
	Controller   *dispatch.Controller
	Synchronizer *overlay.Synchronizer
	Provider     config.Provider
}

// NewCore builds the registry, conversation stores, invoker, and the
// dispatch and overlay layers from configuration.
func NewCore(ctx context.Context, cfg *config.Config) (*Core, error) {
	registry := agentmodel.NewMemoryRegistry(seedBindings(cfg.Agent))

	var agentIDs []string
	for _, binding := range registry.List() {
		agentIDs = append(agentIDs, binding.ID)
	}
	stores := chat.NewStores(agentIDs)

	provider := cfg.ResolveProvider()
	invoker, err := buildInvoker(ctx, cfg, registry, provider)
	if err != nil {
		return nil, err
	}
	log.Printf("[app] agent provider: %s", provider)

	events := dispatch.NewBroadcaster()
	controller := dispatch.NewController(registry, stores, invoker, dispatch.NewIndicator(), events)
	synchronizer := overlay.NewSynchronizer(registry, stores, events)

	return &Core{
		Registry:     registry,
		Stores:       stores,
		Controller:   controller,
		Synchronizer: synchronizer,
		Provider:     provider,
	}, nil
}

// seedBindings applies any per-screen agent ID overrides to the defaults.
func seedBindings(cfg config.AgentConfig) []agentmodel.Binding {
	overrides := map[agentmodel.Screen]string{
		agentmodel.ScreenDashboard:  cfg.InsightsAgentID,
		agentmodel.ScreenAudit:      cfg.ComplianceAgentID,
		agentmodel.ScreenGrievances: cfg.GrievanceAgentID,
	}

	bindings := agentmodel.Seed()
	for i, binding := range bindings {
		if id := overrides[binding.Screen]; id != "" {
			bindings[i].ID = id
		}
	}
	return bindings
}

func buildInvoker(ctx context.Context, cfg *config.Config, registry agentmodel.Registry, provider config.Provider) (agentsvc.Invoker, error) {
	switch provider {
	case config.ProviderGateway:
		return agentsvc.NewGateway(
			cfg.Agent.BaseURL,
			cfg.Agent.APIKey,
			cfg.Agent.UserID,
			time.Duration(cfg.Agent.TimeoutSeconds)*time.Second,
		), nil

	case config.ProviderArk:
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("build ark chat model: %w", err)
		}
		return agentsvc.NewArkInvoker(ctx, registry, chatModel)

	case config.ProviderStatic:
		payloads := make(map[string]map[string]any)
		for _, binding := range registry.List() {
			payloads[binding.ID] = binding.Sample
		}
		return agentsvc.NewStaticInvoker(payloads), nil

	default:
		return nil, fmt.Errorf("unknown agent provider %q", provider)
	}
}
