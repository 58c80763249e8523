// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Queue names. Both are durable.
const (
	StarCreatedQueue = "star.created"
	JarSavedQueue    = "jar.saved"
)

// StarCreatedEvent is published after a star entry is stored. It carries
// no content — entries are encrypted at rest and downstream consumers only
// need the fact, not the text.
type StarCreatedEvent struct {
	StarID    string `json:"star_id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// JarSavedEvent is published when a full jar is archived under a name.
type JarSavedEvent struct {
	JarID     string `json:"jar_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	StarCount int    `json:"star_count"`
	SavedAt   string `json:"saved_at"`
}
