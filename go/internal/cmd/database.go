package main

import (
	"context"
	"database/sql"

	"github.com/mcdev12/transferdesk/go/internal/dbconfig"
	"github.com/rs/zerolog/log"
)

func setupDatabase(ctx context.Context, c dbconfig.Config) (*sql.DB, error) {
	database, err := dbconfig.Open(ctx, c.DSN())
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user", c.User).
		Str("host", c.Host).
		Int("port", c.Port).
		Str("database", c.Database).
		Msg("connected to database")
	return database, nil
}
