package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/tastebite-backend/migrations"
)

const legacyDBName = "legacydb"

var (
	containerOnce sync.Once
	sharedDSN     string
	containerErr  error

	legacyOnce sync.Once
	legacyDSN  string
	legacyErr  error
)

// SetupTestDB starts a shared PostgreSQL container (once per test binary),
// applies all migrations and returns a pool closed via t.Cleanup.
// The container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	containerOnce.Do(func() {
		sharedDSN, containerErr = startContainerAndMigrate()
	})
	if containerErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", containerErr)
	}

	return newPool(t, sharedDSN)
}

// SetupLegacyTestDB returns a pool on a second database in the same
// container, migrated only up to migrations.VersionLegacySchema. It has no
// unique index on recipes.external_id, so duplicate imports can be seeded.
//
// Tests using it share the database and must not run in parallel with other
// tests that merge duplicates.
func SetupLegacyTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	containerOnce.Do(func() {
		sharedDSN, containerErr = startContainerAndMigrate()
	})
	if containerErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", containerErr)
	}

	legacyOnce.Do(func() {
		legacyDSN, legacyErr = createLegacyDB(sharedDSN)
	})
	if legacyErr != nil {
		t.Fatalf("testhelper: failed to setup legacy DB: %v", legacyErr)
	}

	return newPool(t, legacyDSN)
}

func newPool(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	if err := migrate(ctx, dsn, 0); err != nil {
		return "", err
	}

	return dsn, nil
}

func createLegacyDB(baseDSN string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", baseDSN)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+legacyDBName); err != nil {
		return "", fmt.Errorf("create legacy database: %w", err)
	}

	u, err := url.Parse(baseDSN)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	u.Path = "/" + legacyDBName
	dsn := u.String()

	if err := migrate(ctx, dsn, migrations.VersionLegacySchema); err != nil {
		return "", err
	}

	return dsn, nil
}

// migrate applies the embedded migrations. version 0 means all of them.
func migrate(ctx context.Context, dsn string, version int64) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if version == 0 {
		_, err = provider.Up(ctx)
	} else {
		_, err = provider.UpTo(ctx, version)
	}
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
