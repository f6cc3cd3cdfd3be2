package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/germanamz/blendy/pkg/create"
	"github.com/germanamz/blendy/pkg/scene"
)

// historyEntry is one line of the local/history.jsonl journal.
type historyEntry struct {
	Time     time.Time  `json:"time"`
	Tool     string     `json:"tool"`
	Name     string     `json:"name"`
	Size     float64    `json:"size"`
	Location [3]float64 `json:"location"`
	Outcome  string     `json:"outcome"`
	Message  string     `json:"message"`
	Error    string     `json:"error,omitempty"`
}

// journal appends creation outcomes to a JSONL file. Failures to record are
// swallowed: the journal is advisory and must never fail a tool call.
type journal struct {
	mu   sync.Mutex
	path string
}

func newJournal(path string) *journal {
	return &journal{path: path}
}

// record writes one entry for a completed creation operation.
func (j *journal) record(req scene.CreateCubeRequest, result create.Result) {
	entry := historyEntry{
		Time:     time.Now().UTC(),
		Tool:     create.ToolName,
		Name:     req.Name,
		Size:     req.Size,
		Location: [3]float64(req.Location),
		Outcome:  outcomeLabel(result.Outcome),
		Message:  result.Message(),
	}
	if result.Err != nil {
		entry.Error = result.Err.Error()
	}

	_ = j.append(entry)
}

func (j *journal) append(entry historyEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), 0o750); err != nil {
		return fmt.Errorf("server: history: create dir: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path comes from the project dir
	if err != nil {
		return fmt.Errorf("server: history: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("server: history: encode: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("server: history: write: %w", err)
	}

	return nil
}

// outcomeLabel maps a create.Outcome to its journal string.
func outcomeLabel(o create.Outcome) string {
	switch o {
	case create.OutcomeCreated:
		return "created"
	case create.OutcomeDegraded:
		return "degraded"
	case create.OutcomeUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}
