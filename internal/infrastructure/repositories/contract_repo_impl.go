package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"contract-registry/internal/domain/entities"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/infrastructure/database"
	"contract-registry/internal/infrastructure/models"
	"contract-registry/pkg/logger"
	"contract-registry/pkg/metrics"
)

// ContractRepository implements contract data operations. Every call opens
// and releases its own connection.
type ContractRepository struct {
	provider *database.Provider
}

// NewContractRepository creates a new contract repository
func NewContractRepository(provider *database.Provider) *ContractRepository {
	return &ContractRepository{provider: provider}
}

// Add inserts a new row and writes the store-assigned ID back to contract.
func (r *ContractRepository) Add(ctx context.Context, contract *entities.Contract) error {
	if err := contract.Validate(); err != nil {
		return err
	}

	m := r.toModel(contract)
	m.ID = 0
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		return db.Create(m).Error
	})
	metrics.ObserveStore("add", err)
	if err != nil {
		logger.Error(ctx, "Failed to save contract", zap.String("name", contract.Name), zap.Error(err))
		return domainerrors.Store("add contract", err)
	}

	contract.ID = m.ID
	logger.Info(ctx, "Contract saved", zap.Int64("id", m.ID), zap.String("name", contract.Name))
	return nil
}

// GetAll returns every contract ordered by name.
func (r *ContractRepository) GetAll(ctx context.Context) ([]*entities.Contract, error) {
	var ms []models.Contract
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		return db.Order("name ASC").Order("id ASC").Find(&ms).Error
	})
	metrics.ObserveStore("get_all", err)
	if err != nil {
		logger.Error(ctx, "Failed to list contracts", zap.Error(err))
		return nil, domainerrors.Store("list contracts", err)
	}

	items := make([]*entities.Contract, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(ctx, &ms[i]))
	}
	return items, nil
}

// Update overwrites every column of the row keyed by contract.ID.
func (r *ContractRepository) Update(ctx context.Context, contract *entities.Contract) (bool, error) {
	if err := contract.Validate(); err != nil {
		return false, err
	}

	m := r.toModel(contract)
	updates := map[string]interface{}{
		"name":          m.Name,
		"created_date":  m.CreatedDate,
		"end_date":      m.EndDate,
		"amount":        m.Amount,
		"party_one":     m.PartyOne,
		"party_two":     m.PartyTwo,
		"document_path": m.DocumentPath,
	}

	var affected int64
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		result := db.Model(&models.Contract{}).Where("id = ?", contract.ID).Updates(updates)
		affected = result.RowsAffected
		return result.Error
	})
	metrics.ObserveStore("update", err)
	if err != nil {
		logger.Error(ctx, "Failed to update contract", zap.Int64("id", contract.ID), zap.Error(err))
		return false, domainerrors.Store("update contract", err)
	}
	if affected == 0 {
		logger.Warn(ctx, "No contract matched update", zap.Int64("id", contract.ID))
		return false, nil
	}

	logger.Info(ctx, "Contract updated", zap.Int64("id", contract.ID), zap.String("name", contract.Name))
	return true, nil
}

// Delete removes the row with the given id. Deleting a missing id is not an error.
func (r *ContractRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var affected int64
	err := r.provider.WithConn(ctx, func(db *gorm.DB) error {
		result := db.Delete(&models.Contract{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	metrics.ObserveStore("delete", err)
	if err != nil {
		logger.Error(ctx, "Failed to delete contract", zap.Int64("id", id), zap.Error(err))
		return false, domainerrors.Store("delete contract", err)
	}
	if affected == 0 {
		logger.Info(ctx, "Nothing to delete", zap.Int64("id", id))
		return false, nil
	}

	logger.Info(ctx, "Contract deleted", zap.Int64("id", id))
	return true, nil
}

func (r *ContractRepository) toEntity(ctx context.Context, m *models.Contract) *entities.Contract {
	amount := decimal.Zero
	if m.Amount.Valid {
		amount = m.Amount.Decimal
	}
	return &entities.Contract{
		ID:           m.ID,
		Name:         m.Name,
		CreatedDate:  r.parseStoredDate(ctx, m.ID, "created_date", m.CreatedDate),
		EndDate:      r.parseStoredDate(ctx, m.ID, "end_date", m.EndDate),
		Amount:       amount,
		PartyOne:     m.PartyOne,
		PartyTwo:     m.PartyTwo,
		DocumentPath: m.DocumentPath,
	}
}

// parseStoredDate nulls out a value that is not a valid date instead of
// failing the whole list.
func (r *ContractRepository) parseStoredDate(ctx context.Context, id int64, column string, raw null.String) null.Time {
	if !raw.Valid {
		return null.Time{}
	}
	t, err := entities.ParseDate(raw.String)
	if err != nil {
		logger.Warn(ctx, "Ignoring unparseable stored date",
			zap.Int64("id", id),
			zap.String("column", column),
			zap.String("value", raw.String),
			zap.Error(err),
		)
		return null.Time{}
	}
	return t
}

func (r *ContractRepository) toModel(e *entities.Contract) *models.Contract {
	return &models.Contract{
		ID:           e.ID,
		Name:         e.Name,
		CreatedDate:  entities.FormatDate(e.CreatedDate),
		EndDate:      entities.FormatDate(e.EndDate),
		Amount:       decimal.NewNullDecimal(e.Amount.Round(2)),
		PartyOne:     e.PartyOne,
		PartyTwo:     e.PartyTwo,
		DocumentPath: e.DocumentPath,
	}
}
