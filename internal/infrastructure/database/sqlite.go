package database

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/pkg/logger"
)

// ContractsTableDDL creates the contracts table when it is absent. Dates are
// TEXT (YYYY-MM-DD) so the engine needs no native date type.
const ContractsTableDDL = `CREATE TABLE IF NOT EXISTS contracts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(255) NOT NULL,
	created_date TEXT,
	end_date TEXT,
	amount DECIMAL(15, 2),
	party_one VARCHAR(255) NOT NULL,
	party_two VARCHAR(255),
	document_path TEXT
)`

const busyTimeoutMillis = 5000

// Provider opens short-lived connections to one local store file.
type Provider struct {
	path     string
	logLevel gormlogger.LogLevel
}

// Option configures a Provider
type Option func(*Provider)

// WithLogLevel sets the gorm SQL log level: silent, error, warn or info.
func WithLogLevel(level string) Option {
	return func(p *Provider) {
		switch strings.ToLower(level) {
		case "error":
			p.logLevel = gormlogger.Error
		case "warn":
			p.logLevel = gormlogger.Warn
		case "info":
			p.logLevel = gormlogger.Info
		default:
			p.logLevel = gormlogger.Silent
		}
	}
}

// NewProvider creates a provider for the store file at path.
func NewProvider(path string, opts ...Option) *Provider {
	p := &Provider{path: path, logLevel: gormlogger.Silent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the store file path.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) dsn() string {
	if strings.Contains(p.path, "?") {
		return p.path
	}
	return fmt.Sprintf("%s?_busy_timeout=%d", p.path, busyTimeoutMillis)
}

// Connect opens a live handle, creating the store file on first use. On
// failure it logs and returns a nil handle with an error wrapping
// ErrStoreUnavailable. The caller must Release the handle.
func (p *Provider) Connect(ctx context.Context) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(p.dsn()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(p.logLevel),
	})
	if err != nil {
		if db != nil {
			p.Release(ctx, db)
		}
		logger.Error(ctx, "Failed to connect to contract store", zap.String("path", p.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domainerrors.ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error(ctx, "Failed to get generic database object", zap.String("path", p.path), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domainerrors.ErrStoreUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db.WithContext(ctx), nil
}

// Release closes a handle returned by Connect.
func (p *Provider) Release(ctx context.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn(ctx, "Failed to close contract store connection", zap.String("path", p.path), zap.Error(err))
	}
}

// WithConn runs fn on a fresh connection and releases it on every exit path.
func (p *Provider) WithConn(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	defer p.Release(ctx, db)
	return fn(db)
}

// InitializeSchema creates the contracts table if it does not exist. It is
// safe to call on every startup.
func (p *Provider) InitializeSchema(ctx context.Context) error {
	err := p.WithConn(ctx, func(db *gorm.DB) error {
		return db.Exec(ContractsTableDDL).Error
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize contract schema", zap.String("path", p.path), zap.Error(err))
		return err
	}
	logger.Debug(ctx, "Contract schema ready", zap.String("path", p.path))
	return nil
}
