package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/handler"
	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	agentsvc "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/overlay"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := agentmodel.NewMemoryRegistry(agentmodel.Seed())
	var ids []string
	payloads := make(map[string]map[string]any)
	for _, b := range registry.List() {
		ids = append(ids, b.ID)
		payloads[b.ID] = b.Sample
	}
	stores := chat.NewStores(ids)
	events := dispatch.NewBroadcaster()
	controller := dispatch.NewController(registry, stores, agentsvc.NewStaticInvoker(payloads), dispatch.NewIndicator(), events)
	sync := overlay.NewSynchronizer(registry, stores, events)

	srv := httptest.NewServer(handler.NewRouter(registry, controller, sync))
	t.Cleanup(srv.Close)
	return srv
}

func TestListAgents(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/agents")
	if err != nil {
		t.Fatalf("GET /api/agents err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var bindings []agentmodel.Binding
	if err := json.NewDecoder(resp.Body).Decode(&bindings); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(bindings) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(bindings))
	}
	if bindings[0].Screen != agentmodel.ScreenDashboard {
		t.Fatalf("expected dashboard first, got %s", bindings[0].Screen)
	}
}

func TestAgentForUnknownScreen(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/agents/settings")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown screen, got %d", resp.StatusCode)
	}
}

type transcriptPayload struct {
	AgentID  string `json:"agentId"`
	Awaiting bool   `json:"awaiting"`
	Messages []struct {
		Role    string         `json:"role"`
		Content string         `json:"content"`
		Payload map[string]any `json:"payload"`
	} `json:"messages"`
}

func TestSendMessageRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"content":"Where is GRV-001?"}`)
	resp, err := http.Post(srv.URL+"/api/chat/grievances/messages", "application/json", body)
	if err != nil {
		t.Fatalf("POST err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var transcript transcriptPayload
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(transcript.Messages) != 2 {
		t.Fatalf("expected user and assistant turns, got %d", len(transcript.Messages))
	}
	if transcript.Messages[0].Content != "Where is GRV-001?" {
		t.Fatalf("unexpected user turn: %+v", transcript.Messages[0])
	}
	if transcript.Messages[1].Payload == nil {
		t.Fatalf("expected structured payload on assistant turn")
	}
	if transcript.Awaiting {
		t.Fatal("dispatch must be settled by response time")
	}
}

func TestSendBlankMessage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/chat/dashboard/messages", "application/json", strings.NewReader(`{"content":"   "}`))
	if err != nil {
		t.Fatalf("POST err: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank content, got %d", resp.StatusCode)
	}
}

func TestTranscriptStartsEmpty(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/chat/audit")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer resp.Body.Close()

	var transcript transcriptPayload
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(transcript.Messages) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(transcript.Messages))
	}
	if transcript.AgentID == "" {
		t.Fatal("expected bound agent id")
	}
}

func TestSampleToggleSeedsAndClears(t *testing.T) {
	srv := newTestServer(t)
	client := srv.Client()

	put := func(body string) *http.Response {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/sample", strings.NewReader(body))
		if err != nil {
			t.Fatalf("build request err: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("PUT /api/sample err: %v", err)
		}
		return resp
	}

	resp := put(`{"show":true}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected toggle status: %d", resp.StatusCode)
	}

	get, err := http.Get(srv.URL + "/api/chat/dashboard")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	var transcript transcriptPayload
	if err := json.NewDecoder(get.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	get.Body.Close()
	if len(transcript.Messages) != 2 {
		t.Fatalf("expected seeded transcript, got %d messages", len(transcript.Messages))
	}

	resp = put(`{"show":false}`)
	resp.Body.Close()

	get, err = http.Get(srv.URL + "/api/chat/dashboard")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	transcript = transcriptPayload{}
	if err := json.NewDecoder(get.Body).Decode(&transcript); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	get.Body.Close()
	if len(transcript.Messages) != 0 {
		t.Fatalf("expected cleared transcript, got %d messages", len(transcript.Messages))
	}
}

func TestPipelineAuditFilter(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/pipeline/audit?pr=PR-4521&doa=L1")
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	defer resp.Body.Close()

	var events []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 filtered event, got %d", len(events))
	}
}
