package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contract-registry/internal/infrastructure/database"
)

func newTestProvider(t *testing.T) *database.Provider {
	t.Helper()
	p := database.NewProvider(filepath.Join(t.TempDir(), "contracts.db"))
	require.NoError(t, p.InitializeSchema(context.Background()), "initialize schema")
	return p
}

func newTestRepo(t *testing.T) (*ContractRepository, *database.Provider) {
	t.Helper()
	p := newTestProvider(t)
	return NewContractRepository(p), p
}

func mustExec(t *testing.T, p *database.Provider, q string, args ...interface{}) {
	t.Helper()
	err := p.WithConn(context.Background(), func(db *gorm.DB) error {
		return db.Exec(q, args...).Error
	})
	require.NoError(t, err, "exec failed: query=%s", q)
}

func mustCount(t *testing.T, p *database.Provider, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	err := p.WithConn(context.Background(), func(db *gorm.DB) error {
		return db.Table("contracts").Where(where, args...).Count(&n).Error
	})
	require.NoError(t, err)
	return n
}
