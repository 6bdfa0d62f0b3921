package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-help-crypt/internal/config"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
)

func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		driver:             "sqlite3",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}

	return db, nil
}

// NewSQLiteErrorClassifier constructs a classifier that treats every SQLite
// error as non-retryable. The database is a local file: a failed write will
// not succeed on an immediate retry.
func NewSQLiteErrorClassifier() ErrorClassificator {
	return sqliteErrorClassifier{}
}

type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) Classify(err error) ErrorClassification {
	return NonRetryable
}

func createLocalDBFileIfNotExists(dbFile string) error {
	// sqlite URI form "file:path?options" — stat the bare path
	path := strings.TrimPrefix(dbFile, "file:")
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
