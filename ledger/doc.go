// Package ledger implements the authoritative state machine for a shared,
// finite inventory of lendable books and the borrowing relationship between
// books and borrowers.
//
// The Ledger is a single owned aggregate: an append-only book registry where
// the slice index is the stable book id, a per-(book, borrower) borrow record
// map, and a per-book history of every borrower who ever held a loan. All
// mutating operations (RegisterBook, BorrowBook, ReturnBook) are serialized
// through a write lock and are atomic: they either fully apply or leave the
// state untouched. Read-only queries (AvailableBooks, Borrowers, Book) may run
// concurrently with each other and always observe a fully settled state.
//
// Copies are fungible: availability is tracked in aggregate per book, the
// ledger does not distinguish which physical copy is borrowed or returned.
//
// Every successful mutation emits exactly one core.DomainEvent to the
// configured EventSink after the state change has been applied. Emission is a
// side channel: a failing sink is logged and never fails or rolls back the
// operation.
//
// Common usage pattern:
//
//	lgr, err := ledger.NewLedger(
//		ledger.WithEventSink(sink),
//		ledger.WithLogger(slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	bookID, err := lgr.RegisterBook(ctx, "The Witcher", 1)
//	if err != nil {
//		// handle error
//	}
//
//	if err := lgr.BorrowBook(ctx, bookID, "alice"); err != nil {
//		// errors.Is against the Err* sentinels to branch on cause
//	}
package ledger
