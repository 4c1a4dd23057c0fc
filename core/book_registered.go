package core

import (
	"time"
)

// BookRegisteredEventType is the event type identifier.
const BookRegisteredEventType = "BookRegistered"

// BookRegistered represents when copies of a book are registered with the ledger.
// CopiesAdded is the amount added by this registration, not the resulting total;
// registering a known title tops up its inventory and emits this event as well.
type BookRegistered struct {
	EventType   EventTypeString
	BookID      BookIDInt
	Title       TitleString
	CopiesAdded CopyCountInt
	OccurredAt  OccurredAtTS
}

// BuildBookRegistered creates a new BookRegistered event.
func BuildBookRegistered(bookID BookIDInt, title TitleString, copiesAdded CopyCountInt, occurredAt time.Time) BookRegistered {
	event := BookRegistered{
		EventType:   BookRegisteredEventType,
		BookID:      bookID,
		Title:       title,
		CopiesAdded: copiesAdded,
		OccurredAt:  ToOccurredAt(occurredAt),
	}

	return event
}

// IsEventType returns the event type identifier.
func (e BookRegistered) IsEventType() string {
	return BookRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
