package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"
	_ "github.com/mattn/go-sqlite3"    // database/sql driver "sqlite3"

	"github.com/minhtran241/bookmarks-api/internal/config"
	"github.com/minhtran241/bookmarks-api/internal/logger"
)

// DB wraps a database/sql connection pool together with the pieces that vary
// per backend: the squirrel placeholder format and the driver error
// classifier. Repositories embed *DB and stay engine-agnostic.
type DB struct {
	*sql.DB

	// Driver is the database/sql driver name the pool was opened with
	// ("pgx" or "sqlite3"). Used to pick the migration dialect.
	Driver string

	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewConnect opens a connection pool for the configured backend, pings it,
// and returns a ready-to-use *DB.
//
// PostgreSQL (driver "pgx") uses $N placeholders; SQLite (driver "sqlite3")
// uses ? placeholders and is restricted to a single open connection so an
// in-memory database behaves like one database.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	db := &DB{
		DB:     conn,
		Driver: cfg.Driver,
		logger: log,
	}

	switch cfg.Driver {
	case "sqlite3":
		conn.SetMaxOpenConns(1)
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.classifier = NewSqliteErrorClassifier()
	default:
		conn.SetMaxOpenConns(10)
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.classifier = NewPostgresErrorClassifier()
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("driver", cfg.Driver).Msg("connected to database successfully")

	return db, nil
}
