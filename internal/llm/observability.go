package llm

import (
	"github.com/charmbracelet/log"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Provider  Provider
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a structured logger.
type LogObserver struct {
	log *log.Logger
}

// NewLogObserver creates an Observer that logs events to l.
func NewLogObserver(l *log.Logger) *LogObserver {
	return &LogObserver{log: l.WithPrefix("llm")}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	kv := []any{
		"provider", event.Provider,
		"task", event.Task,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.log.Warn("llm_call failed", append(kv, "code", event.ErrorCode)...)
		return
	}
	o.log.Info("llm_call", kv...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
