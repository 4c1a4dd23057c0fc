package core

import (
	"time"
)

// BookReturnedEventType is the event type identifier.
const BookReturnedEventType = "BookReturned"

// BookReturned represents when a borrower returns a previously borrowed copy.
type BookReturned struct {
	EventType  EventTypeString
	BookID     BookIDInt
	BorrowerID BorrowerIDString
	OccurredAt OccurredAtTS
}

// BuildBookReturned creates a new BookReturned event.
func BuildBookReturned(bookID BookIDInt, borrowerID BorrowerIDString, occurredAt time.Time) BookReturned {
	event := BookReturned{
		EventType:  BookReturnedEventType,
		BookID:     bookID,
		BorrowerID: borrowerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookReturned) IsEventType() string {
	return BookReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}
