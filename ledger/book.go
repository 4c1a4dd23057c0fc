package ledger

import (
	"github.com/bookledger/bookledger-go/core"
)

// Book is a read-only snapshot of one registered book.
type Book struct {
	ID            core.BookIDInt
	Title         core.TitleString
	TotalCopies   core.CopyCountInt
	BorrowedCount core.CopyCountInt
}

// IsAvailable returns true if at least one copy is not currently borrowed.
func (b Book) IsAvailable() bool {
	return b.BorrowedCount < b.TotalCopies
}

// AvailableBooks is a slice of AvailableBook instances.
type AvailableBooks = []AvailableBook

// AvailableBook identifies one book with at least one free copy.
type AvailableBook struct {
	ID    core.BookIDInt
	Title core.TitleString
}

// bookRecord is the mutable registry entry; the registry slice index is the book id.
type bookRecord struct {
	title         core.TitleString
	totalCopies   core.CopyCountInt
	borrowedCount core.CopyCountInt
	borrowers     []core.BorrowerIDString // first-borrow order, append-once, never pruned
}
