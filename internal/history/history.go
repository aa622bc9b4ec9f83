package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/healthassistant/internal/diagnosis"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Entry records the outcome of one prediction. Clinical inputs are never stored.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Disease   string    `json:"disease"`
	Label     int       `json:"label"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEntry(d diagnosis.Diagnosis, now time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Disease:   d.Disease.Slug(),
		Label:     int(d.Label),
		Message:   d.Message,
		CreatedAt: now.UTC(),
	}
}

// Recorder stores assessment entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// MemoryRecorder keeps the newest entries in a fixed-size ring.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

func NewMemoryRecorder(capacity int) *MemoryRecorder {
	if capacity <= 0 {
		capacity = MaxLimit
	}
	return &MemoryRecorder{entries: make([]Entry, capacity)}
}

func (m *MemoryRecorder) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.next] = e
	m.next = (m.next + 1) % len(m.entries)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

func (m *MemoryRecorder) Recent(_ context.Context, limit int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size := m.next
	if m.full {
		size = len(m.entries)
	}
	limit = NormalizeLimit(limit)
	if limit > size {
		limit = size
	}

	out := make([]Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + len(m.entries)) % len(m.entries)
		out = append(out, m.entries[idx])
	}
	return out, nil
}
