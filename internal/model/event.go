package model

import "time"

// EventType classifies an observability event.
type EventType string

const (
	EventStart      EventType = "start"
	EventProcessing EventType = "processing"
	EventSuccess    EventType = "success"
	EventError      EventType = "error"
	EventInfo       EventType = "info"
	EventWarning    EventType = "warning"
)

// Agent names used by the pipeline stages.
const (
	AgentInputParser        = "InputParserAgent"
	AgentCategoryClassifier = "CategoryClassifierAgent"
	AgentBudgetAnalyzer     = "BudgetAnalyzerAgent"
	AgentSystem             = "System"
)

// Event is one entry in the observability log.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Agent     string         `json:"agent"`
	EventType EventType      `json:"event_type"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
}
