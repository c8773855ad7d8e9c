package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
)

// ArkInvoker answers agent queries with an Ark chat model instructed to
// reply in the bound agent's JSON schema. It stands in for the hosted agent
// API when only model credentials are configured.
type ArkInvoker struct {
	registry agentmodel.Registry
	chain    compose.Runnable[map[string]any, *schema.Message]
}

// NewArkInvoker compiles the prompt/model chain once at startup.
func NewArkInvoker(ctx context.Context, registry agentmodel.Registry, chatModel model.ChatModel) (*ArkInvoker, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile agent chain: %w", err)
	}

	return &ArkInvoker{registry: registry, chain: runnable}, nil
}

// Invoke runs one query through the chain and decodes the JSON object in
// the reply. A reply without a decodable object degrades to a summary-only
// payload rather than an error.
func (a *ArkInvoker) Invoke(ctx context.Context, query, agentID string) (Result, error) {
	binding, ok := a.registry.ByID(agentID)
	if !ok {
		return Result{Success: false, Error: fmt.Sprintf("unknown agent %q", agentID)}, nil
	}

	response, err := a.chain.Invoke(ctx, map[string]any{
		"system": systemPrompt(binding),
		"query":  query,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to run agent chain: %w", err)
	}

	parsed, ok := extractJSONObject(response.Content)
	if !ok {
		parsed = map[string]any{"summary": strings.TrimSpace(response.Content)}
	}
	return Result{Success: true, Response: &InvokeResponse{Result: parsed}}, nil
}

func systemPrompt(binding agentmodel.Binding) string {
	var fields string
	switch binding.Kind {
	case payload.KindInsights:
		fields = `"summary", "details", "metrics" (array of {"label","value"}), "recommendations" (array of strings), "status"`
	case payload.KindCompliance:
		fields = `"summary", "audit_trail" (array of {"step","approver","timestamp","doa_level","status","sop_reference"}), "compliance_status", "exceptions" (array of strings), "sop_references" (array of strings)`
	case payload.KindGrievance:
		fields = `"action", "grievance_id", "type", "status", "details", "next_steps" (array of strings), "resolution_timeline"`
	}

	return fmt.Sprintf(
		"You are %s, a procurement operations agent. %s\n"+
			"Answer with a single JSON object using only these top-level fields: %s. "+
			"Every field is optional; omit fields you cannot fill. Do not wrap the object in markdown fences.",
		binding.Name, binding.Description, fields)
}

// extractJSONObject pulls the outermost JSON object out of a model reply,
// tolerating prose or code fences around it.
func extractJSONObject(content string) (map[string]any, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
