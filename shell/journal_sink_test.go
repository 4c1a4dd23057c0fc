package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookledger/bookledger-go/core"
	"github.com/bookledger/bookledger-go/journal/memoryengine"
	"github.com/bookledger/bookledger-go/ledger"
	"github.com/bookledger/bookledger-go/shell"
)

func Test_NewJournalSink_Error_NilJournal(t *testing.T) {
	// act
	_, err := shell.NewJournalSink(nil)

	// assert
	assert.ErrorIs(t, err, shell.ErrNilJournalSupplied)
}

func Test_JournalSink_Publish_AppendsStorableEventWithMetadata(t *testing.T) {
	// arrange
	ctx := context.Background()
	memJournal := memoryengine.NewJournal()

	sink, err := shell.NewJournalSink(memJournal)
	require.NoError(t, err)

	event := core.BuildBookBorrowed(0, "alice", time.Now())

	// act
	err = sink.Publish(ctx, event)

	// assert
	require.NoError(t, err)

	entries, _, readErr := memJournal.Read(ctx)
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, core.BookBorrowedEventType, entries[0].EventType)

	metadata, metadataErr := shell.EventMetadataFrom(entries[0])
	require.NoError(t, metadataErr)
	assert.NotEmpty(t, metadata.MessageID)
	assert.Equal(t, metadata.MessageID, metadata.CausationID, "a published event roots its own causation chain")
	assert.Equal(t, metadata.MessageID, metadata.CorrelationID)
}

func Test_JournalSink_EndToEnd_LedgerFlowIsJournaled(t *testing.T) {
	// arrange
	ctx := context.Background()
	memJournal := memoryengine.NewJournal()

	sink, err := shell.NewJournalSink(memJournal)
	require.NoError(t, err)

	lgr, err := ledger.NewLedger(ledger.WithEventSink(sink))
	require.NoError(t, err)

	// act - the canonical flow: register, borrow and return by one actor, borrow by another
	bookID, err := lgr.RegisterBook(ctx, "The Witcher", 1)
	require.NoError(t, err)
	require.NoError(t, lgr.BorrowBook(ctx, bookID, "alice"))
	require.NoError(t, lgr.ReturnBook(ctx, bookID, "alice"))
	require.NoError(t, lgr.BorrowBook(ctx, bookID, "bob"))

	// a failed borrow must not be journaled
	require.Error(t, lgr.BorrowBook(ctx, bookID, "alice"))

	// assert
	entries, maxSequenceNumber, readErr := memJournal.Read(ctx)
	require.NoError(t, readErr)
	require.Len(t, entries, 4)
	assert.EqualValues(t, 4, maxSequenceNumber)

	history, historyErr := shell.DomainEventsFrom(entries)
	require.NoError(t, historyErr)

	assert.Equal(t, core.BookRegisteredEventType, history[0].IsEventType())
	assert.Equal(t, core.BookBorrowedEventType, history[1].IsEventType())
	assert.Equal(t, core.BookReturnedEventType, history[2].IsEventType())
	assert.Equal(t, core.BookBorrowedEventType, history[3].IsEventType())

	finalBorrow, ok := history[3].(core.BookBorrowed)
	require.True(t, ok)
	assert.Equal(t, "bob", finalBorrow.BorrowerID)
}
