package core

import (
	"time"
)

// BookBorrowedEventType is the event type identifier.
const BookBorrowedEventType = "BookBorrowed"

// BookBorrowed represents when a copy of a book is borrowed by a borrower.
type BookBorrowed struct {
	EventType  EventTypeString
	BookID     BookIDInt
	BorrowerID BorrowerIDString
	OccurredAt OccurredAtTS
}

// BuildBookBorrowed creates a new BookBorrowed event.
func BuildBookBorrowed(bookID BookIDInt, borrowerID BorrowerIDString, occurredAt time.Time) BookBorrowed {
	event := BookBorrowed{
		EventType:  BookBorrowedEventType,
		BookID:     bookID,
		BorrowerID: borrowerID,
		OccurredAt: ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookBorrowed) IsEventType() string {
	return BookBorrowedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookBorrowed) HasOccurredAt() time.Time {
	return e.OccurredAt
}
