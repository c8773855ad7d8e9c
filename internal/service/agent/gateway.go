package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Gateway calls the hosted agent inference API over HTTP. Retries and auth
// refresh belong to the hosted side; the gateway sends one request per
// invocation with a plain client timeout.
type Gateway struct {
	baseURL string
	apiKey  string
	userID  string
	client  *http.Client
}

// NewGateway constructs a gateway for the given endpoint and credentials.
func NewGateway(baseURL, apiKey, userID string, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		userID:  userID,
		client:  &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Invoke posts the query and decodes the {success, response, error}
// envelope. Malformed envelopes surface as transport errors.
func (g *Gateway) Invoke(ctx context.Context, query, agentID string) (Result, error) {
	payload, err := json.Marshal(inferenceRequest{
		UserID:    g.userID,
		AgentID:   agentID,
		SessionID: fmt.Sprintf("%s-%s", g.userID, agentID),
		Message:   query,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("agent call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("agent call returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode agent response: %w", err)
	}
	return result, nil
}
