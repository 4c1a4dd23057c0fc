// Command demo drives the library ledger through a full interaction flow:
// two actors register books, borrow and return them, and the borrower
// history is printed at the end. With POSTGRES_DSN set, every emitted
// notification is journaled to PostgreSQL; without it, to memory.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bookledger/bookledger-go/config"
	"github.com/bookledger/bookledger-go/journal/memoryengine"
	"github.com/bookledger/bookledger-go/journal/postgresengine"
	"github.com/bookledger/bookledger-go/ledger"
	"github.com/bookledger/bookledger-go/shell"
)

const (
	actorAlice = "alice"
	actorBob   = "bob"
)

// Config holds the environment-driven settings of the demo.
type Config struct {
	PostgresDSN      string `env:"POSTGRES_DSN"`
	JournalTableName string `env:"JOURNAL_TABLE" envDefault:"ledger_events"`
	Verbose          bool   `env:"VERBOSE" envDefault:"false"`
}

func main() {
	ctx := context.Background()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	sink, cleanup := buildJournalSink(ctx, cfg, logger)
	defer cleanup()

	lgr, err := ledger.NewLedger(
		ledger.WithEventSink(sink),
		ledger.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create ledger: %v", err)
	}

	if runErr := interact(ctx, lgr); runErr != nil {
		log.Fatalf("Demo failed: %v", runErr)
	}
}

// buildJournalSink wires the notification journal: postgres when a DSN is
// configured, in-memory otherwise. The returned cleanup closes the pool.
func buildJournalSink(ctx context.Context, cfg Config, logger *slog.Logger) (ledger.EventSink, func()) {
	if cfg.PostgresDSN == "" {
		sink, err := shell.NewJournalSink(memoryengine.NewJournal())
		if err != nil {
			log.Fatalf("Failed to create journal sink: %v", err)
		}

		return sink, func() {}
	}

	pgxPool, err := pgxpool.NewWithConfig(ctx, config.PostgresPGXPoolConfig(cfg.PostgresDSN))
	if err != nil {
		log.Fatalf("Failed to create pgx pool: %v", err)
	}

	if pingErr := pgxPool.Ping(ctx); pingErr != nil {
		log.Fatalf("Failed to connect to database: %v", pingErr)
	}

	pgJournal, err := postgresengine.NewJournalFromPGXPool(
		pgxPool,
		postgresengine.WithTableName(cfg.JournalTableName),
		postgresengine.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create journal: %v", err)
	}

	sink, err := shell.NewJournalSink(pgJournal)
	if err != nil {
		log.Fatalf("Failed to create journal sink: %v", err)
	}

	return sink, pgxPool.Close
}

// interact replays the canonical flow: register, borrow, return, re-borrow
// by a second actor, then list all borrowers of the contested book.
func interact(ctx context.Context, lgr *ledger.Ledger) error {
	fmt.Println("Adding books")

	bookID, err := lgr.RegisterBook(ctx, "The Witcher", 1)
	if err != nil {
		return err
	}

	if _, err = lgr.RegisterBook(ctx, "Harry Potter", 1); err != nil {
		return err
	}

	if _, err = lgr.RegisterBook(ctx, "Hercule Poirot", 1); err != nil {
		return err
	}

	printAvailableBooks(lgr)

	fmt.Println("Alice borrows.")
	if err = lgr.BorrowBook(ctx, bookID, actorAlice); err != nil {
		return err
	}

	printAvailableBooks(lgr)

	fmt.Println("Alice returns.")
	if err = lgr.ReturnBook(ctx, bookID, actorAlice); err != nil {
		return err
	}

	printAvailableBooks(lgr)

	fmt.Println("Bob borrows.")
	if err = lgr.BorrowBook(ctx, bookID, actorBob); err != nil {
		return err
	}

	borrowers, err := lgr.Borrowers(bookID)
	if err != nil {
		return err
	}

	fmt.Println("All borrowers are", borrowers)

	return nil
}

func printAvailableBooks(lgr *ledger.Ledger) {
	available := lgr.AvailableBooks()

	titles := make([]string, 0, len(available))
	for _, book := range available {
		titles = append(titles, book.Title)
	}

	fmt.Println("Available books are", titles)
}
