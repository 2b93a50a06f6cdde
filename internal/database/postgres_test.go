package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	source "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func restorePostgresGlobals() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver source.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restorePostgresGlobals)

	t.Run("connect error", func(t *testing.T) {
		pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) {
			return nil, errors.New("bad dsn")
		}
		_, err := NewPgxPool(context.Background(), "postgres://nope")
		require.Error(t, err)
	})

	t.Run("wraps the pool", func(t *testing.T) {
		pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) {
			return &pgxpool.Pool{}, nil
		}
		db, err := NewPgxPool(context.Background(), "postgres://ok")
		require.NoError(t, err)
		require.IsType(t, &pgxDB{}, db)
	})
}

type fakeMigrator struct {
	upErr   error
	downErr error
	upCalls int
	dnCalls int
}

func (f *fakeMigrator) Up() error   { f.upCalls++; return f.upErr }
func (f *fakeMigrator) Down() error { f.dnCalls++; return f.downErr }

func stubMigrator(t *testing.T, m *fakeMigrator) {
	t.Helper()
	sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, nil }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (source.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, source.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return m, nil
	}
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restorePostgresGlobals)

	t.Run("open error", func(t *testing.T) {
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RunMigrations("postgres://x"))
	})

	t.Run("driver error", func(t *testing.T) {
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, nil }
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) {
			return nil, errors.New("driver")
		}
		require.Error(t, RunMigrations("postgres://x"))
	})

	t.Run("source error", func(t *testing.T) {
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, nil }
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
		iofsNewFn = func(fs.FS, string) (source.Driver, error) { return nil, errors.New("source") }
		require.Error(t, RunMigrations("postgres://x"))
	})

	t.Run("up error", func(t *testing.T) {
		m := &fakeMigrator{upErr: errors.New("up")}
		stubMigrator(t, m)
		require.Error(t, RunMigrations("postgres://x"))
		require.Equal(t, 1, m.upCalls)
	})

	t.Run("no change is clean", func(t *testing.T) {
		m := &fakeMigrator{upErr: migrate.ErrNoChange}
		stubMigrator(t, m)
		require.NoError(t, RunMigrations("postgres://x"))
	})

	t.Run("success", func(t *testing.T) {
		m := &fakeMigrator{}
		stubMigrator(t, m)
		require.NoError(t, RunMigrations("postgres://x"))
		require.Equal(t, 1, m.upCalls)
		require.Zero(t, m.dnCalls)
	})
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restorePostgresGlobals)

	t.Run("down error", func(t *testing.T) {
		m := &fakeMigrator{downErr: errors.New("down")}
		stubMigrator(t, m)
		require.Error(t, RollbackAll("postgres://x"))
	})

	t.Run("success", func(t *testing.T) {
		m := &fakeMigrator{}
		stubMigrator(t, m)
		require.NoError(t, RollbackAll("postgres://x"))
		require.Equal(t, 1, m.dnCalls)
		require.Zero(t, m.upCalls)
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var ups, downs int
	for _, e := range entries {
		switch {
		case len(e.Name()) > 7 && e.Name()[len(e.Name())-7:] == ".up.sql":
			ups++
		case len(e.Name()) > 9 && e.Name()[len(e.Name())-9:] == ".down.sql":
			downs++
		}
	}
	require.Equal(t, ups, downs)
}
