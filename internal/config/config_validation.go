// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package config

// Defaults applied after all sources are merged. The token secret and TTL
// deliberately have no defaults: they must be supplied by the operator.
const (
	defaultHTTPAddress = ":8080"
	defaultDBDriver    = "pgx"
	defaultTokenIssuer = "bookmarks-api"
)

// applyDefaults fills in non-security defaults for fields left empty by every
// configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. A failure here aborts the process before the server
// accepts a single request.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenExpirationMinutes <= 0 {
		return ErrMissingTokenExpiration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDBDriver
	}

	return nil
}
