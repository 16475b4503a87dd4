package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wastefall/wastefall/internal/db/migrations"
)

// testPool is the shared connection pool for every test in the package.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("starting postgres container: %v", err)
	}
	defer func() {
		_ = container.Terminate(ctx)
	}()

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("getting container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("getting container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connecting to test db: %v", err)
	}
	defer testPool.Close()

	if err := runTestMigrations(testPool); err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestDB returns the shared pool with all world tables truncated,
// so tests stay isolated from each other.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()

	ctx := context.Background()
	queries := []string{
		"TRUNCATE missions",
		"TRUNCATE npcs",
		"TRUNCATE submaps",
		"TRUNCATE cities RESTART IDENTITY",
		"TRUNCATE overmap_tiles",
	}
	for _, query := range queries {
		if _, err := testPool.Exec(ctx, query); err != nil {
			tb.Logf("cleanup warning: %v", err) // non-fatal
		}
	}

	return testPool
}

// runTestMigrations applies the embedded migrations through goose.
func runTestMigrations(pool *pgxpool.Pool) error {
	// goose wants *sql.DB, bridge it from the pgx pool config.
	connConfig := pool.Config().ConnConfig
	connStr := stdlib.RegisterConnConfig(connConfig)
	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("opening sql.DB: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	return nil
}
