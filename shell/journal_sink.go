package shell

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bookledger/bookledger-go/core"
	"github.com/bookledger/bookledger-go/journal"
)

// ErrPublishingToJournalFailed is returned when a published event cannot be appended to the journal.
var ErrPublishingToJournalFailed = errors.New("publishing to journal failed")

// ErrNilJournalSupplied is returned when NewJournalSink receives a nil journal.
var ErrNilJournalSupplied = errors.New("nil journal supplied")

// Journal defines the interface needed by the JournalSink to append entries.
// Both the postgres and the memory engine satisfy it.
type Journal interface {
	Append(ctx context.Context, event journal.StorableEvent, additionalEvents ...journal.StorableEvent) error
}

// JournalSink is a ledger.EventSink that appends every published domain event
// to a journal, stamped with fresh tracking metadata. The ledger emits events
// post-commit, one per mutation, so each published event becomes the root of
// its own causation chain: message, causation, and correlation id are the
// same fresh UUID.
type JournalSink struct {
	journal Journal
}

// NewJournalSink creates a new JournalSink writing to the given journal.
func NewJournalSink(j Journal) (JournalSink, error) {
	if j == nil {
		return JournalSink{}, ErrNilJournalSupplied
	}

	return JournalSink{journal: j}, nil
}

// Publish converts the domain event to a storable event and appends it to the journal.
func (s JournalSink) Publish(ctx context.Context, event core.DomainEvent) error {
	uid := uuid.New()
	metadata := BuildEventMetadata(uid, uid, uid)

	storableEvent, marshalErr := StorableEventFrom(event, metadata)
	if marshalErr != nil {
		return errors.Join(ErrPublishingToJournalFailed, marshalErr)
	}

	if appendErr := s.journal.Append(ctx, storableEvent); appendErr != nil {
		return errors.Join(ErrPublishingToJournalFailed, appendErr)
	}

	return nil
}
