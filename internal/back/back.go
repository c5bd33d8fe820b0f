package back

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"gamerating/internal/util"
	"log"
	"strings"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQL driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// Back owns the database handle and exposes the game rating operations.
type Back struct {
	db     *sqlx.DB
	closed atomic.Bool
}

func New(sqlDriver string, sqlDSN string) (*Back, error) {
	// Columns are the lowercase version of the struct field names.
	// HACK: This is global but putting this in init() makes test ugly.
	// As only the Back relies on the DB, this seems like an okay-ish place.
	sqlx.NameMapper = strings.ToLower

	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database only lives as long as its connection, keep
	// exactly one around forever.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrateUp(db.DB); err != nil {
		if err2 := db.Close(); err2 != nil {
			log.Printf("warning: unable to close database after failed migration: %s", err2)
		}

		return nil, fmt.Errorf("unable to apply schema: %w", err)
	}

	if sqlDSN == ":memory:" {
		log.Print("info: connected to the in-memory SQLite database")
	} else {
		log.Printf("info: connected to the SQLite database %s", sqlDSN)
	}

	return &Back{
		db: db,
	}, nil
}

// Close releases the database handle. Any further operation fails with a
// StoreError, including a second Close.
func (b *Back) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return storeError("close", ErrClosed)
	}

	if err := b.db.Close(); err != nil {
		return storeError("close", err)
	}

	log.Print("info: closing the database connection")

	return nil
}

func (b *Back) transaction(ctx context.Context, cb util.TransactionCallback) error {
	return util.Transaction(ctx, b.db, cb)
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	// Closing the migrator would close the shared handle, let Back.Close do it.
	migrator, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
