package llm

import "fmt"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskPlanGenerate TaskType = "plan_generate"
)

// Provider selects the LLM backend.
type Provider string

const (
	ProviderDisabled  Provider = "disabled"
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// ParseProvider validates a provider name; "" means disabled.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case "", ProviderDisabled:
		return ProviderDisabled, nil
	case ProviderOllama, ProviderAnthropic:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown llm provider %q (want disabled, ollama or anthropic)", s)
}

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider       Provider
	LogCalls       bool
	Endpoint       string // Ollama URL, or an Anthropic base URL override
	Model          string
	APIKey         string
	TimeoutMs      int
	MaxRetries     int
	RetryBackoffMs int
	Tasks          map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:       ProviderDisabled,
		LogCalls:       false,
		Endpoint:       "http://localhost:11434",
		Model:          "llama3.2",
		TimeoutMs:      60000,
		MaxRetries:     2,
		RetryBackoffMs: 1000,
		Tasks: map[TaskType]TaskConfig{
			TaskPlanGenerate: {Temperature: 0.3, MaxTokens: 8192},
		},
	}
}

// Enabled reports whether any backend is configured.
func (c LLMConfig) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderDisabled
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func (c LLMConfig) taskParams(task TaskType, temperature *float64, maxTokens *int) (float64, int) {
	tc := c.Tasks[task]
	temp, maxTok := tc.Temperature, tc.MaxTokens
	if temperature != nil {
		temp = *temperature
	}
	if maxTokens != nil {
		maxTok = *maxTokens
	}
	if maxTok <= 0 {
		maxTok = 4096
	}
	return temp, maxTok
}
