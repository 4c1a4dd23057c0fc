package ledger

import (
	"errors"
)

// Validation errors: bad input shape, always recoverable by caller correction.
var (
	// ErrEmptyTitleSupplied is returned when a book is registered with an empty title.
	ErrEmptyTitleSupplied = errors.New("empty title supplied")

	// ErrInvalidCopyCount is returned when a book is registered with fewer than one copy.
	ErrInvalidCopyCount = errors.New("invalid copy count")

	// ErrBookDoesNotExist is returned when an operation references an unregistered book id.
	ErrBookDoesNotExist = errors.New("book does not exist")
)

// State-conflict errors: expected, routine outcomes of contended usage.
// The reason strings are part of the contract and are surfaced verbatim
// so automated callers can branch on cause.
var (
	// ErrNoAvailableCopies is returned when all copies of the book are currently borrowed.
	ErrNoAvailableCopies = errors.New("No available copies.")

	// ErrAlreadyBorrowed is returned when the borrower already holds an active loan of this book.
	ErrAlreadyBorrowed = errors.New("Please return the book first.")

	// ErrNotBorrowedBySender is returned when the borrower has no active loan of this book,
	// covering both "never borrowed" and "already returned".
	ErrNotBorrowedBySender = errors.New("Sender doesn't have this book.")
)
