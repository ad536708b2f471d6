package models

import (
	"time"

	"github.com/google/uuid"
)

// LogChannel tags the kind of a unified log entry.
type LogChannel string

const (
	// ChannelProcessStart is the synthetic entry emitted once per
	// process; it carries the group header metadata.
	ChannelProcessStart LogChannel = "process_start"
	ChannelStdout       LogChannel = "stdout"
	ChannelStderr       LogChannel = "stderr"
	// ChannelNormalized carries structured agent output (tool calls,
	// assistant messages) already rendered to text by the backend.
	ChannelNormalized LogChannel = "normalized"
)

// UnifiedLogEntry is a single log line or structured event from the
// per-attempt log stream, tagged with the process that produced it.
type UnifiedLogEntry struct {
	ProcessID uuid.UUID  `json:"process_id"`
	Channel   LogChannel `json:"channel"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
}
