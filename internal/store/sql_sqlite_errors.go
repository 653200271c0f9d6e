package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SqliteErrorClassifier implements [ErrorClassificator] for SQLite.
type SqliteErrorClassifier struct{}

// NewSqliteErrorClassifier constructs a [SqliteErrorClassifier] ready for use.
func NewSqliteErrorClassifier() *SqliteErrorClassifier {
	return &SqliteErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassificator]. It matches the
// SQLITE_CONSTRAINT_UNIQUE and SQLITE_CONSTRAINT_PRIMARYKEY extended result
// codes reported by the go-sqlite3 driver.
func (c *SqliteErrorClassifier) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
