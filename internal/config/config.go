package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the two binaries read.
type Config struct {
	Server ServerConfig
	Agent  AgentConfig
	AI     AIConfig
	UI     UIConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	agent, err := loadAgentConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	ui, err := loadUIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Agent: agent, AI: ai, UI: ui}, nil
}

// ServerConfig describes the HTTP shell listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// Provider selects which Invoker implementation backs agent calls.
type Provider string

const (
	ProviderGateway Provider = "gateway"
	ProviderArk     Provider = "ark"
	ProviderStatic  Provider = "static"
)

// AgentConfig describes the hosted agent gateway.
type AgentConfig struct {
	BaseURL        string
	APIKey         string
	UserID         string
	TimeoutSeconds int
	Provider       Provider

	// Optional per-screen agent ID overrides for pointing a deployment at
	// different hosted agents without a rebuild.
	InsightsAgentID   string
	ComplianceAgentID string
	GrievanceAgentID  string
}

func loadAgentConfig() (AgentConfig, error) {
	timeout := 60
	if override, err := parseOptionalIntEnv("AGENT_TIMEOUT_SECONDS"); err != nil {
		return AgentConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AgentConfig{}, fmt.Errorf("AGENT_TIMEOUT_SECONDS must be positive, got %d", *override)
		}
		timeout = *override
	}

	cfg := AgentConfig{
		BaseURL:        getEnvOrDefault("AGENT_API_URL", "https://agent-prod.studio.lyzr.ai/v3/inference/chat/"),
		APIKey:         strings.TrimSpace(os.Getenv("AGENT_API_KEY")),
		UserID:         getEnvOrDefault("AGENT_USER_ID", "dashboard@procuretrack.local"),
		TimeoutSeconds: timeout,

		InsightsAgentID:   strings.TrimSpace(os.Getenv("AGENT_ID_INSIGHTS")),
		ComplianceAgentID: strings.TrimSpace(os.Getenv("AGENT_ID_COMPLIANCE")),
		GrievanceAgentID:  strings.TrimSpace(os.Getenv("AGENT_ID_GRIEVANCE")),
	}

	provider := Provider(strings.ToLower(strings.TrimSpace(os.Getenv("AGENT_PROVIDER"))))
	switch provider {
	case ProviderGateway, ProviderArk, ProviderStatic:
		cfg.Provider = provider
	case "":
		// Resolved later against available credentials.
	default:
		return AgentConfig{}, fmt.Errorf("invalid AGENT_PROVIDER value: %q", provider)
	}
	return cfg, nil
}

// ResolveProvider picks the invoker backend: an explicit AGENT_PROVIDER
// wins, then gateway credentials, then Ark credentials, then static samples.
func (c *Config) ResolveProvider() Provider {
	if c.Agent.Provider != "" {
		return c.Agent.Provider
	}
	if c.Agent.APIKey != "" {
		return ProviderGateway
	}
	if c.AI.Enabled() {
		return ProviderArk
	}
	return ProviderStatic
}

// AIConfig describes the Ark chat model used by the model-backed invoker.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled reports whether the required model credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds an Ark model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// UIConfig describes terminal dashboard behavior.
type UIConfig struct {
	SampleDataDefault bool
	AltScreen         bool
}

func loadUIConfig() (UIConfig, error) {
	sample, err := parseBoolEnv("UI_SAMPLE_DATA", false)
	if err != nil {
		return UIConfig{}, err
	}

	alt, err := parseBoolEnv("UI_ALT_SCREEN", true)
	if err != nil {
		return UIConfig{}, err
	}

	return UIConfig{SampleDataDefault: sample, AltScreen: alt}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
