package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Each of them is fatal at
// startup.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// supplied (JWT_SECRET / -jwt-secret / json app.jwt_secret).
	ErrMissingTokenSignKey = errors.New("missing JWT signing secret")

	// ErrMissingTokenExpiration indicates that the token TTL is absent or
	// not a positive number of minutes (JWT_EXPIRATION_IN_MINUTES).
	ErrMissingTokenExpiration = errors.New("missing or non-positive JWT expiration in minutes")

	// ErrMissingDatabaseDSN indicates that no database connection string was
	// supplied (STORAGE_DB_DATABASE_URI / -d).
	ErrMissingDatabaseDSN = errors.New("missing database DSN")

	// ErrUnsupportedDBDriver indicates that the configured driver is neither
	// "pgx" nor "sqlite3".
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
)
