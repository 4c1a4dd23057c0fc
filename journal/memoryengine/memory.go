package memoryengine

import (
	"context"
	"sync"

	"github.com/bookledger/bookledger-go/journal"
)

// Journal is an in-memory, append-only journal of storable events.
// Sequence numbers start at 1 and grow with each appended entry,
// matching the semantics of the PostgreSQL engine.
type Journal struct {
	mu      sync.RWMutex
	entries journal.StorableEvents
}

// NewJournal creates an empty in-memory Journal.
func NewJournal() *Journal {
	return &Journal{
		entries: make(journal.StorableEvents, 0),
	}
}

// Append appends one or multiple journal.StorableEvent(s) onto the journal.
func (j *Journal) Append(
	_ context.Context,
	event journal.StorableEvent,
	additionalEvents ...journal.StorableEvent,
) error {

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, event)
	j.entries = append(j.entries, additionalEvents...)

	return nil
}

// Read returns all entries in append order and the highest sequence number.
func (j *Journal) Read(_ context.Context) (
	journal.StorableEvents,
	journal.SequenceNumberUint,
	error,
) {

	j.mu.RLock()
	defer j.mu.RUnlock()

	entries := make(journal.StorableEvents, len(j.entries))
	copy(entries, j.entries)

	return entries, journal.SequenceNumberUint(len(entries)), nil
}
