package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/bookledger/bookledger-go/core"
)

const (
	logMsgBookRegistered        = "book registered"
	logMsgBookBorrowed          = "book borrowed"
	logMsgBookReturned          = "book returned"
	logMsgPublishingEventFailed = "publishing domain event failed"
	logAttrError                = "error"
	logAttrBookID               = "book_id"
	logAttrTitle                = "title"
	logAttrBorrowerID           = "borrower_id"
	logAttrCopiesAdded          = "copies_added"
	logAttrEventType            = "event_type"
	metricOperations            = "ledger_operations_total"
	metricPublishFailures       = "ledger_event_publish_failures_total"
	labelOperation              = "operation"
	labelOutcome                = "outcome"
	operationRegister           = "register"
	operationBorrow             = "borrow"
	operationReturn             = "return"
	outcomeSuccess              = "success"
	outcomeError                = "error"
)

// borrowKey identifies one (book, borrower) pair.
type borrowKey struct {
	bookID     core.BookIDInt
	borrowerID core.BorrowerIDString
}

// Ledger is the authoritative, single-writer state store for books, borrow
// records, and borrower history. The zero value is not usable; construct it
// with NewLedger.
type Ledger struct {
	mu               sync.RWMutex
	registry         []bookRecord      // index is the stable book id, never reused
	idsByTitle       map[core.TitleString]core.BookIDInt
	borrowRecords    map[borrowKey]bool // created lazily on first borrow, flipped, never deleted
	eventSink        EventSink
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	clock            Clock
}

// NewLedger creates an empty Ledger with optional configuration.
func NewLedger(options ...Option) (*Ledger, error) {
	l := &Ledger{
		registry:      make([]bookRecord, 0),
		idsByTitle:    make(map[core.TitleString]core.BookIDInt),
		borrowRecords: make(map[borrowKey]bool),
		clock:         time.Now,
	}

	for _, option := range options {
		if err := option(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// RegisterBook registers copies of a book with the ledger and returns the book id.
//
// Registering an unknown title creates a new book with the next sequential id.
// Registering a known title (exact, byte-for-byte match) tops up its total
// copy count instead of creating a duplicate entry - this is a valid
// accumulation, not a failure. Emits a BookRegistered event carrying the
// copies added by this call.
func (l *Ledger) RegisterBook(ctx context.Context, title core.TitleString, copies core.CopyCountInt) (core.BookIDInt, error) {
	if title == "" {
		l.countOperation(operationRegister, outcomeError)
		return 0, ErrEmptyTitleSupplied
	}

	if copies < 1 {
		l.countOperation(operationRegister, outcomeError)
		return 0, ErrInvalidCopyCount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bookID, exists := l.idsByTitle[title]
	if exists {
		l.registry[bookID].totalCopies += copies
	} else {
		bookID = len(l.registry)
		l.registry = append(l.registry, bookRecord{
			title:       title,
			totalCopies: copies,
		})
		l.idsByTitle[title] = bookID
	}

	l.countOperation(operationRegister, outcomeSuccess)
	l.logOperation(ctx, logMsgBookRegistered, logAttrBookID, bookID, logAttrTitle, title, logAttrCopiesAdded, copies)
	l.publishEvent(ctx, core.BuildBookRegistered(bookID, title, copies, l.clock()))

	return bookID, nil
}

// BorrowBook borrows one copy of the given book for the given borrower.
//
// Preconditions are checked in order, first failure wins:
//  1. the book id must reference a registered book (ErrBookDoesNotExist)
//  2. at least one copy must be free (ErrNoAvailableCopies)
//  3. the borrower must not already hold this book (ErrAlreadyBorrowed)
//
// On success the borrowed count is incremented, the (book, borrower) record
// transitions to borrowed, and - on the borrower's first ever loan of this
// book - the borrower is appended to the book's history. A failed call leaves
// the state untouched. Emits a BookBorrowed event.
func (l *Ledger) BorrowBook(ctx context.Context, bookID core.BookIDInt, borrowerID core.BorrowerIDString) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bookID < 0 || bookID >= len(l.registry) {
		l.countOperation(operationBorrow, outcomeError)
		return ErrBookDoesNotExist
	}

	record := &l.registry[bookID]
	if record.borrowedCount >= record.totalCopies {
		l.countOperation(operationBorrow, outcomeError)
		return ErrNoAvailableCopies
	}

	key := borrowKey{bookID: bookID, borrowerID: borrowerID}
	borrowed, seen := l.borrowRecords[key]
	if borrowed {
		l.countOperation(operationBorrow, outcomeError)
		return ErrAlreadyBorrowed
	}

	record.borrowedCount++
	l.borrowRecords[key] = true

	// A missing record means this pair never had a successful borrow before,
	// so the borrower enters the history exactly once.
	if !seen {
		record.borrowers = append(record.borrowers, borrowerID)
	}

	l.countOperation(operationBorrow, outcomeSuccess)
	l.logOperation(ctx, logMsgBookBorrowed, logAttrBookID, bookID, logAttrBorrowerID, borrowerID)
	l.publishEvent(ctx, core.BuildBookBorrowed(bookID, borrowerID, l.clock()))

	return nil
}

// ReturnBook returns one copy of the given book from the given borrower.
//
// The (book, borrower) record must currently be borrowed, otherwise
// ErrNotBorrowedBySender is returned - covering both "never borrowed" and
// "already returned". On success the borrowed count is decremented and the
// record transitions back to not borrowed; the borrower history is monotonic
// and stays unchanged. Emits a BookReturned event.
func (l *Ledger) ReturnBook(ctx context.Context, bookID core.BookIDInt, borrowerID core.BorrowerIDString) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bookID < 0 || bookID >= len(l.registry) {
		l.countOperation(operationReturn, outcomeError)
		return ErrBookDoesNotExist
	}

	key := borrowKey{bookID: bookID, borrowerID: borrowerID}
	if !l.borrowRecords[key] {
		l.countOperation(operationReturn, outcomeError)
		return ErrNotBorrowedBySender
	}

	l.registry[bookID].borrowedCount--
	l.borrowRecords[key] = false

	l.countOperation(operationReturn, outcomeSuccess)
	l.logOperation(ctx, logMsgBookReturned, logAttrBookID, bookID, logAttrBorrowerID, borrowerID)
	l.publishEvent(ctx, core.BuildBookReturned(bookID, borrowerID, l.clock()))

	return nil
}

// AvailableBooks returns every book with at least one free copy, in registry
// insertion order. Fully borrowed books are omitted entirely. The result is a
// snapshot, recomputed on every call.
func (l *Ledger) AvailableBooks() AvailableBooks {
	l.mu.RLock()
	defer l.mu.RUnlock()

	available := make(AvailableBooks, 0, len(l.registry))

	for bookID := range l.registry {
		record := &l.registry[bookID]
		if record.borrowedCount < record.totalCopies {
			available = append(available, AvailableBook{ID: bookID, Title: record.title})
		}
	}

	return available
}

// Borrowers returns every distinct borrower who has ever successfully
// borrowed the given book, in first-borrow order, regardless of current
// borrow status. Returns ErrBookDoesNotExist for an unregistered book id.
func (l *Ledger) Borrowers(bookID core.BookIDInt) ([]core.BorrowerIDString, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if bookID < 0 || bookID >= len(l.registry) {
		return nil, ErrBookDoesNotExist
	}

	borrowers := make([]core.BorrowerIDString, len(l.registry[bookID].borrowers))
	copy(borrowers, l.registry[bookID].borrowers)

	return borrowers, nil
}

// Book returns a read-only snapshot of one registered book.
// Returns ErrBookDoesNotExist for an unregistered book id.
func (l *Ledger) Book(bookID core.BookIDInt) (Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if bookID < 0 || bookID >= len(l.registry) {
		return Book{}, ErrBookDoesNotExist
	}

	record := &l.registry[bookID]

	return Book{
		ID:            bookID,
		Title:         record.title,
		TotalCopies:   record.totalCopies,
		BorrowedCount: record.borrowedCount,
	}, nil
}

// publishEvent hands the committed event to the sink, if one is configured.
// A sink failure must not fail the operation: the state change is already
// applied, so the error is logged and counted, nothing more.
func (l *Ledger) publishEvent(ctx context.Context, event core.DomainEvent) {
	if l.eventSink == nil {
		return
	}

	if err := l.eventSink.Publish(ctx, event); err != nil {
		if l.contextualLogger != nil {
			l.contextualLogger.WarnContext(ctx, logMsgPublishingEventFailed, logAttrError, err.Error(), logAttrEventType, event.IsEventType())
		} else if l.logger != nil {
			l.logger.Warn(logMsgPublishingEventFailed, logAttrError, err.Error(), logAttrEventType, event.IsEventType())
		}

		if l.metricsCollector != nil {
			l.metricsCollector.IncrementCounter(metricPublishFailures, map[string]string{logAttrEventType: event.IsEventType()})
		}
	}
}

// logOperation logs a successful mutation at debug level.
func (l *Ledger) logOperation(ctx context.Context, msg string, args ...any) {
	if l.contextualLogger != nil {
		l.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

// countOperation records one operation outcome with the metrics collector.
func (l *Ledger) countOperation(operation string, outcome string) {
	if l.metricsCollector == nil {
		return
	}

	l.metricsCollector.IncrementCounter(metricOperations, map[string]string{
		labelOperation: operation,
		labelOutcome:   outcome,
	})
}
