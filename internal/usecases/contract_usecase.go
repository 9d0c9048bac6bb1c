package usecases

import (
	"context"

	"go.uber.org/zap"

	"contract-registry/internal/domain/entities"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/domain/repositories"
	"contract-registry/pkg/logger"
)

// DocumentOpener opens a linked document with the OS default application.
type DocumentOpener interface {
	Open(path string) error
}

// ContractUsecase backs the record list, detail view and editor.
type ContractUsecase struct {
	repo   repositories.ContractRepository
	opener DocumentOpener
}

// NewContractUsecase creates a new contract usecase
func NewContractUsecase(repo repositories.ContractRepository, opener DocumentOpener) *ContractUsecase {
	return &ContractUsecase{repo: repo, opener: opener}
}

// ListContracts re-reads the full list, sorted by name.
func (u *ContractUsecase) ListContracts(ctx context.Context) ([]*entities.Contract, error) {
	return u.repo.GetAll(ctx)
}

// GetContract finds a contract by id in a fresh full read.
func (u *ContractUsecase) GetContract(ctx context.Context, id int64) (*entities.Contract, error) {
	items, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerrors.NotFound("contract not found")
}

// NewCreateForm starts a create-mode editor session.
func (u *ContractUsecase) NewCreateForm(onSaved func(*entities.Contract)) *ContractForm {
	return NewContractForm(u.repo, Create(), onSaved)
}

// NewEditForm starts an edit-mode editor session for the contract with id.
func (u *ContractUsecase) NewEditForm(ctx context.Context, id int64, onSaved func(*entities.Contract)) (*ContractForm, error) {
	c, err := u.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewContractForm(u.repo, Edit(c), onSaved), nil
}

// DeleteContract removes a contract permanently. It reports false when
// there was nothing to delete.
func (u *ContractUsecase) DeleteContract(ctx context.Context, id int64) (bool, error) {
	return u.repo.Delete(ctx, id)
}

// OpenDocument opens the document linked to the contract with id.
func (u *ContractUsecase) OpenDocument(ctx context.Context, id int64) error {
	c, err := u.GetContract(ctx, id)
	if err != nil {
		return err
	}
	if !c.HasDocument() {
		return domainerrors.DocumentNotSet()
	}
	if err := u.opener.Open(c.DocumentPath.String); err != nil {
		logger.Warn(ctx, "Failed to open contract document",
			zap.Int64("id", id),
			zap.String("path", c.DocumentPath.String),
			zap.Error(err),
		)
		return err
	}
	logger.Info(ctx, "Opened contract document", zap.Int64("id", id), zap.String("path", c.DocumentPath.String))
	return nil
}
