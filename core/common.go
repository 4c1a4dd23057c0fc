package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// EventTypeString represents an event type identifier.
type EventTypeString = string

// BookIDInt represents a book identifier; ids are assigned sequentially in registration order, starting at 0.
type BookIDInt = int

// TitleString represents a book title; titles are the natural key of the registry.
type TitleString = string

// BorrowerIDString represents an opaque borrower identity supplied by the invocation boundary.
type BorrowerIDString = string

// CopyCountInt represents a number of copies of a book.
type CopyCountInt = int

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
