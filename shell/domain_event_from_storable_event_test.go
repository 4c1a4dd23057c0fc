package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookledger/bookledger-go/core"
	"github.com/bookledger/bookledger-go/journal"
	"github.com/bookledger/bookledger-go/shell"
)

func Test_DomainEventFrom_RoundTrip_BookRegistered(t *testing.T) {
	// arrange
	original := core.BuildBookRegistered(0, "The Witcher", 3, time.Now())
	storableEvent := givenStorableEventFrom(t, original)

	// act
	domainEvent, err := shell.DomainEventFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, original, domainEvent)
}

func Test_DomainEventFrom_RoundTrip_BookBorrowed(t *testing.T) {
	// arrange
	original := core.BuildBookBorrowed(7, "alice", time.Now())
	storableEvent := givenStorableEventFrom(t, original)

	// act
	domainEvent, err := shell.DomainEventFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, original, domainEvent)
}

func Test_DomainEventFrom_RoundTrip_BookReturned(t *testing.T) {
	// arrange
	original := core.BuildBookReturned(7, "bob", time.Now())
	storableEvent := givenStorableEventFrom(t, original)

	// act
	domainEvent, err := shell.DomainEventFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, original, domainEvent)
}

func Test_DomainEventFrom_Error_UnknownEventType(t *testing.T) {
	// arrange
	storableEvent, err := journal.BuildStorableEventWithEmptyMetadata("SomethingElse", time.Now(), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storableEvent)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_DomainEventsFrom_ConvertsAllInOrder(t *testing.T) {
	// arrange
	now := time.Now()
	storableEvents := journal.StorableEvents{
		givenStorableEventFrom(t, core.BuildBookRegistered(0, "The Witcher", 1, now)),
		givenStorableEventFrom(t, core.BuildBookBorrowed(0, "alice", now.Add(time.Minute))),
		givenStorableEventFrom(t, core.BuildBookReturned(0, "alice", now.Add(2*time.Minute))),
	}

	// act
	domainEvents, err := shell.DomainEventsFrom(storableEvents)

	// assert
	require.NoError(t, err)
	require.Len(t, domainEvents, 3)
	assert.Equal(t, core.BookRegisteredEventType, domainEvents[0].IsEventType())
	assert.Equal(t, core.BookBorrowedEventType, domainEvents[1].IsEventType())
	assert.Equal(t, core.BookReturnedEventType, domainEvents[2].IsEventType())
}

func Test_EventEnvelopeFrom_CarriesMetadata(t *testing.T) {
	// arrange
	event := core.BuildBookBorrowed(1, "alice", time.Now())
	metadata := shell.BuildEventMetadata(uuid.New(), uuid.New(), uuid.New())

	storableEvent, err := shell.StorableEventFrom(event, metadata)
	require.NoError(t, err)

	// act
	envelope, err := shell.EventEnvelopeFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, event, envelope.DomainEvent)
	assert.Equal(t, metadata, envelope.EventMetadata)
}

func givenStorableEventFrom(t *testing.T, event core.DomainEvent) journal.StorableEvent {
	t.Helper()

	storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(event)
	require.NoError(t, err)

	return storableEvent
}
