// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/migrations"
)

// Dialect identifies the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps *sql.DB with the backend dialect, its error classifier and the
// per-query timeout.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	queryTimeout       time.Duration
	logger             *logger.Logger
}

// NewConnectDB opens the database selected by cfg.DSN and verifies the
// connection with a ping:
//   - "sqlite://<path>" and "file:<path>" open SQLite via mattn/go-sqlite3;
//   - "postgres://", "postgresql://" and key=value DSNs open PostgreSQL via pgx.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch dialect, dsn := dialectFromDSN(cfg.DSN); dialect {
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, dsn, log)
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DSN))
	}
	if err != nil {
		return nil, err
	}

	db.queryTimeout = cfg.QueryTimeout
	return db, nil
}

// dialectFromDSN picks the backend for dsn and returns the DSN in the form
// the driver expects.
func dialectFromDSN(dsn string) (Dialect, string) {
	switch {
	case dsn == "":
		return "", ""
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn
	case strings.Contains(dsn, "="):
		return DialectPostgres, dsn
	default:
		return "", dsn
	}
}

// redactDSN strips everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	return "..."
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded goose migrations for the backend of db.
func (db *DB) Migrate() error {
	dialect := migrations.DialectPostgres
	if db.dialect == DialectSQLite {
		dialect = migrations.DialectSQLite
	}
	return migrations.Migrate(db.DB, dialect)
}

// withTimeout bounds ctx by the configured query timeout.
// A zero timeout leaves ctx unchanged.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// classify runs err through the backend's error classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
