package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCandidatesLoaded EventType = "CandidatesLoaded"
	EventMentionCommitted EventType = "MentionCommitted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CandidatesLoadedEvent is emitted once the host has its dataset
type CandidatesLoadedEvent struct {
	Source string // file path, or "embedded"
	Count  int
}

func (e CandidatesLoadedEvent) Type() EventType { return EventCandidatesLoaded }

// MentionCommittedEvent is emitted for every completed selection
type MentionCommittedEvent struct {
	Mention string // "@First Last"
}

func (e MentionCommittedEvent) Type() EventType { return EventMentionCommitted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	DataFile string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
