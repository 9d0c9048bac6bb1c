package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainerrors "contract-registry/internal/domain/errors"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	return NewProvider(filepath.Join(t.TempDir(), "contracts.db"))
}

func TestProvider_ConnectCreatesFile(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := os.Stat(p.Path())
	require.True(t, os.IsNotExist(err))

	db, err := p.Connect(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	p.Release(ctx, db)

	_, err = os.Stat(p.Path())
	require.NoError(t, err)
}

func TestProvider_ConnectFailure(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "no-such-dir", "contracts.db"))

	db, err := p.Connect(context.Background())
	require.Error(t, err)
	assert.Nil(t, db)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestProvider_InitializeSchemaIsIdempotent(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.InitializeSchema(ctx))
	require.NoError(t, p.InitializeSchema(ctx))

	var hasTable bool
	var columns []string
	require.NoError(t, p.WithConn(ctx, func(db *gorm.DB) error {
		hasTable = db.Migrator().HasTable("contracts")
		types, err := db.Migrator().ColumnTypes("contracts")
		for _, ct := range types {
			columns = append(columns, ct.Name())
		}
		return err
	}))
	assert.True(t, hasTable)
	assert.Equal(t, []string{
		"id", "name", "created_date", "end_date", "amount", "party_one", "party_two", "document_path",
	}, columns)
}

func TestProvider_InitializeSchemaFailure(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "no-such-dir", "contracts.db"))
	assert.ErrorIs(t, p.InitializeSchema(context.Background()), domainerrors.ErrStoreUnavailable)
}

func TestProvider_WithConnReleasesOnError(t *testing.T) {
	p := newTestProvider(t)
	boom := errors.New("boom")

	var captured *gorm.DB
	err := p.WithConn(context.Background(), func(db *gorm.DB) error {
		captured = db
		return boom
	})
	require.ErrorIs(t, err, boom)

	sqlDB, err := captured.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "connection should be closed after WithConn returns")
}

func TestProvider_WithConnReleasesOnPanic(t *testing.T) {
	p := newTestProvider(t)

	var captured *gorm.DB
	require.Panics(t, func() {
		_ = p.WithConn(context.Background(), func(db *gorm.DB) error {
			captured = db
			panic("boom")
		})
	})

	sqlDB, err := captured.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}

func TestWithLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent":  gormlogger.Silent,
		"error":   gormlogger.Error,
		"WARN":    gormlogger.Warn,
		"info":    gormlogger.Info,
		"garbage": gormlogger.Silent,
	}
	for in, want := range cases {
		p := NewProvider("x.db", WithLogLevel(in))
		assert.Equal(t, want, p.logLevel, in)
	}
}

func TestProvider_DSN(t *testing.T) {
	assert.Equal(t, "a.db?_busy_timeout=5000", NewProvider("a.db").dsn())
	assert.Equal(t, "file:a.db?mode=ro", NewProvider("file:a.db?mode=ro").dsn())
}
