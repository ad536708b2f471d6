package logs

import (
	"github.com/google/uuid"

	"github.com/vibedeck-io/vibedeck/internal/models"
)

// Group is one process's renderable slice of the log stream: a header
// drawn from the synthetic process_start entry plus the remaining
// entries in arrival order.
type Group struct {
	Process models.ExecutionProcess
	Header  models.UnifiedLogEntry
	Entries []models.UnifiedLogEntry
}

// Groups buckets the flat entry stream into one group per process, in
// process order. A process whose process_start entry has not arrived
// yet is omitted; dropped processes are omitted. Entries keep arrival
// order and are never re-sorted.
func Groups(processes []models.ExecutionProcess, entries []models.UnifiedLogEntry) []Group {
	headers := make(map[uuid.UUID]models.UnifiedLogEntry)
	byProcess := make(map[uuid.UUID][]models.UnifiedLogEntry)

	for _, e := range entries {
		if e.Channel == models.ChannelProcessStart {
			if _, ok := headers[e.ProcessID]; !ok {
				headers[e.ProcessID] = e
			}
			continue
		}
		byProcess[e.ProcessID] = append(byProcess[e.ProcessID], e)
	}

	groups := make([]Group, 0, len(processes))
	seen := make(map[uuid.UUID]struct{}, len(processes))
	for _, p := range processes {
		if p.Dropped {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		header, ok := headers[p.ID]
		if !ok {
			continue
		}
		groups = append(groups, Group{
			Process: p,
			Header:  header,
			Entries: byProcess[p.ID],
		})
	}
	return groups
}
