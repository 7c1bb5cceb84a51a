package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"codeberg.org/ssidwatch/ssidwatch/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

type sqliteLog struct {
	db     *sql.DB
	insert *sql.Stmt
}

// No-op implementation used when the observation log is disabled.
type noopLog struct{}

// NewObservationLog opens the sqlite observation log, or a no-op log when
// disabled. The log is strictly supplementary: a failure to record never
// interrupts aggregation.
func NewObservationLog(cfg Config) (ObservationLog, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		logger.Debug().Msg("Observation log disabled, using no-op log")
		return &noopLog{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	dsn := cfg.DBPath + "?_journal=WAL&_auto_vacuum=2"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	insert, err := db.Prepare(insertObservationSQL)
	if err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	logger.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Observation log initialized")

	return &sqliteLog{
		db:     db,
		insert: insert,
	}, nil
}

func (l *sqliteLog) Record(ctx context.Context, obs *Observation) error {
	errFactory := errors.New()

	if obs == nil {
		return errFactory.New(ErrRecordFailed)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
	}

	if _, err := l.insert.Exec(
		obs.SSID,
		obs.CapturedAt,
		obs.Latency,
		obs.RecordedAt.Unix(),
	); err != nil {
		return errFactory.Wrap(ErrRecordFailed, err)
	}

	return nil
}

func (l *sqliteLog) Close() error {
	errFactory := errors.New()

	if err := l.insert.Close(); err != nil {
		logger.Debug().Err(err).Msg("Failed to close insert statement")
	}

	// Checkpoint WAL and cleanup on close
	if _, err := l.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	if err := l.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	logger.Info().Msg("Observation log closed gracefully")

	return nil
}

func (*noopLog) Record(_ context.Context, _ *Observation) error {
	return nil
}

func (*noopLog) Close() error {
	return nil
}
