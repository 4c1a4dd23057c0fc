package journal

import (
	"errors"
)

var (
	// ErrEmptyTableNameSupplied is returned when an engine is configured with an empty table name.
	ErrEmptyTableNameSupplied = errors.New("empty journalTableName supplied")

	// ErrNilDatabaseConnection is returned when an engine constructor receives a nil connection.
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")

	// ErrBuildingQueryFailed is returned when SQL query building fails.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrAppendingEntryFailed is returned when appending entries to the journal fails.
	ErrAppendingEntryFailed = errors.New("appending journal entry failed")

	// ErrReadingEntriesFailed is returned when reading entries from the journal fails.
	ErrReadingEntriesFailed = errors.New("reading journal entries failed")

	// ErrScanningDBRowFailed is returned when scanning a database row fails.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingStorableEventFailed is returned when a database row does not yield a valid StorableEvent.
	ErrBuildingStorableEventFailed = errors.New("building storable event failed")
)

// SequenceNumberUint is a type alias for uint, representing the position of an entry in the journal.
type SequenceNumberUint = uint
