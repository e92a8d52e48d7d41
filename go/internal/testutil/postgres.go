// Package testutil starts a throwaway Postgres for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/transferdesk/go/internal/dbconfig"
	"github.com/mcdev12/transferdesk/go/internal/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	adminDSN      string
	containerErr  error
)

// ensureContainer starts one Postgres container per test binary.
// Ryuk removes it when the process exits.
func ensureContainer() (string, error) {
	containerOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("postgres"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start PostgreSQL container: %w", err)
			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = container.Terminate(ctx)
			containerErr = fmt.Errorf("failed to get PostgreSQL connection string: %w", err)
			return
		}
		adminDSN = dsn
	})
	return adminDSN, containerErr
}

// DB returns a connection to a fresh, fully migrated database plus its DSN.
// The test is skipped under -short or when no container runtime is available.
func DB(tb testing.TB) (*sql.DB, string) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping Postgres integration test in -short mode")
	}

	admin, err := ensureContainer()
	if err != nil {
		tb.Skipf("Postgres unavailable: %v", err)
	}

	ctx := context.Background()
	name := "t_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	adminDB, err := dbconfig.Open(ctx, admin)
	require.NoError(tb, err)
	defer adminDB.Close()
	_, err = adminDB.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(tb, err)

	dsn, err := withDatabase(admin, name)
	require.NoError(tb, err)

	db, err := dbconfig.Open(ctx, dsn)
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Apply(ctx, db)
	require.NoError(tb, err)

	return db, dsn
}

func withDatabase(dsn, name string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	u.Path = "/" + name
	return u.String(), nil
}
