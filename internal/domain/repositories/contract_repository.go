package repositories

import (
	"context"

	"contract-registry/internal/domain/entities"
)

// ContractRepository persists contracts. Each call is independent and
// best-effort: a store failure is logged where it happens and returned.
type ContractRepository interface {
	Add(ctx context.Context, contract *entities.Contract) error
	GetAll(ctx context.Context) ([]*entities.Contract, error)
	// Update reports whether a row with contract.ID existed.
	Update(ctx context.Context, contract *entities.Contract) (bool, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
