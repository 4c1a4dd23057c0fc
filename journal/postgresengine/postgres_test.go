package postgresengine_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookledger/bookledger-go/config"
	"github.com/bookledger/bookledger-go/journal"
	"github.com/bookledger/bookledger-go/journal/postgresengine"
)

func Test_NewJournal_Error_NilDatabaseConnection(t *testing.T) {
	// act
	_, pgxErr := postgresengine.NewJournalFromPGXPool(nil)
	_, sqlErr := postgresengine.NewJournalFromSQLDB(nil)
	_, sqlxErr := postgresengine.NewJournalFromSQLX(nil)

	// assert
	assert.ErrorIs(t, pgxErr, journal.ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlErr, journal.ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlxErr, journal.ErrNilDatabaseConnection)
}

func Test_WithTableName_Error_EmptyTableName(t *testing.T) {
	// arrange
	pool := givenUnconnectedPGXPool(t)
	defer pool.Close()

	// act
	_, err := postgresengine.NewJournalFromPGXPool(pool, postgresengine.WithTableName(""))

	// assert
	assert.ErrorIs(t, err, journal.ErrEmptyTableNameSupplied)
}

func Test_NewJournalFromPGXPool_Success_WithOptions(t *testing.T) {
	// arrange
	pool := givenUnconnectedPGXPool(t)
	defer pool.Close()

	// act - constructing a journal validates options only, no round-trip to the database
	_, err := postgresengine.NewJournalFromPGXPool(pool, postgresengine.WithTableName("ledger_events"))

	// assert
	assert.NoError(t, err)
}

// givenUnconnectedPGXPool builds a pool handle without pinging;
// pgxpool establishes connections lazily, so no database is needed here.
func givenUnconnectedPGXPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	cfg := config.PostgresPGXPoolConfig(config.PostgresLocalDSN())
	cfg.MinConns = 0 // keep the pool from dialing in the background

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)

	return pool
}
