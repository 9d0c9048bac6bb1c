package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"contract-registry/internal/domain/entities"
)

// Mock ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Add(ctx context.Context, contract *entities.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) GetAll(ctx context.Context) ([]*entities.Contract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(ctx context.Context, contract *entities.Contract) (bool, error) {
	args := m.Called(ctx, contract)
	return args.Bool(0), args.Error(1)
}

func (m *MockContractRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Mock DocumentOpener
type MockDocumentOpener struct {
	mock.Mock
}

func (m *MockDocumentOpener) Open(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
