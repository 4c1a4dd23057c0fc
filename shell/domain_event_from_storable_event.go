package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/bookledger/bookledger-go/core"
	"github.com/bookledger/bookledger-go/journal"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents journal.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0)

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent journal.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookRegisteredEventType:
		return unmarshalBookRegistered(storableEvent.PayloadJSON)

	case core.BookBorrowedEventType:
		return unmarshalBookBorrowed(storableEvent.PayloadJSON)

	case core.BookReturnedEventType:
		return unmarshalBookReturned(storableEvent.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

func unmarshalBookRegistered(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookRegistered)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookRegistered{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookRegistered{
		EventType:   payload.EventType,
		BookID:      payload.BookID,
		Title:       payload.Title,
		CopiesAdded: payload.CopiesAdded,
		OccurredAt:  payload.OccurredAt,
	}, nil
}

func unmarshalBookBorrowed(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookBorrowed)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookBorrowed{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookBorrowed{
		EventType:  payload.EventType,
		BookID:     payload.BookID,
		BorrowerID: payload.BorrowerID,
		OccurredAt: payload.OccurredAt,
	}, nil
}

func unmarshalBookReturned(payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(core.BookReturned)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return core.BookReturned{}, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return core.BookReturned{
		EventType:  payload.EventType,
		BookID:     payload.BookID,
		BorrowerID: payload.BorrowerID,
		OccurredAt: payload.OccurredAt,
	}, nil
}
