package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"contract-registry/internal/domain/entities"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/usecases"
)

func TestContractUsecase_ListContracts(t *testing.T) {
	repo := new(MockContractRepository)
	uc := usecases.NewContractUsecase(repo, new(MockDocumentOpener))

	items := []*entities.Contract{persisted()}
	repo.On("GetAll", mock.Anything).Return(items, nil).Once()

	got, err := uc.ListContracts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestContractUsecase_ListContracts_StoreError(t *testing.T) {
	repo := new(MockContractRepository)
	uc := usecases.NewContractUsecase(repo, new(MockDocumentOpener))

	repo.On("GetAll", mock.Anything).Return(nil, domainerrors.Store("list contracts", errors.New("boom"))).Once()

	_, err := uc.ListContracts(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrStoreOperation)
}

func TestContractUsecase_GetContract(t *testing.T) {
	repo := new(MockContractRepository)
	uc := usecases.NewContractUsecase(repo, new(MockDocumentOpener))

	other := &entities.Contract{ID: 3, Name: "A", PartyOne: "B"}
	repo.On("GetAll", mock.Anything).Return([]*entities.Contract{other, persisted()}, nil)

	got, err := uc.GetContract(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Office lease", got.Name)

	_, err = uc.GetContract(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContractUsecase_NewEditForm(t *testing.T) {
	repo := new(MockContractRepository)
	uc := usecases.NewContractUsecase(repo, new(MockDocumentOpener))
	repo.On("GetAll", mock.Anything).Return([]*entities.Contract{persisted()}, nil)

	form, err := uc.NewEditForm(context.Background(), 7, nil)
	require.NoError(t, err)
	mode, ok := form.Mode().(usecases.EditMode)
	require.True(t, ok)
	assert.Equal(t, int64(7), mode.Target.ID)
	assert.Equal(t, "Office lease", form.LoadInitialValues().Name)

	_, err = uc.NewEditForm(context.Background(), 8, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContractUsecase_NewCreateForm(t *testing.T) {
	uc := usecases.NewContractUsecase(new(MockContractRepository), new(MockDocumentOpener))
	form := uc.NewCreateForm(nil)
	assert.IsType(t, usecases.CreateMode{}, form.Mode())
	assert.False(t, form.Closed())
}

func TestContractUsecase_DeleteContract(t *testing.T) {
	repo := new(MockContractRepository)
	uc := usecases.NewContractUsecase(repo, new(MockDocumentOpener))

	repo.On("Delete", mock.Anything, int64(7)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, int64(7)).Return(false, nil).Once()

	removed, err := uc.DeleteContract(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = uc.DeleteContract(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, removed)
	repo.AssertExpectations(t)
}

func TestContractUsecase_OpenDocument(t *testing.T) {
	repo := new(MockContractRepository)
	opener := new(MockDocumentOpener)
	uc := usecases.NewContractUsecase(repo, opener)

	repo.On("GetAll", mock.Anything).Return([]*entities.Contract{persisted()}, nil)
	opener.On("Open", "/docs/lease.pdf").Return(nil).Once()

	require.NoError(t, uc.OpenDocument(context.Background(), 7))
	opener.AssertExpectations(t)
}

func TestContractUsecase_OpenDocument_NotSet(t *testing.T) {
	repo := new(MockContractRepository)
	opener := new(MockDocumentOpener)
	uc := usecases.NewContractUsecase(repo, opener)

	c := persisted()
	c.DocumentPath = null.String{}
	repo.On("GetAll", mock.Anything).Return([]*entities.Contract{c}, nil)

	err := uc.OpenDocument(context.Background(), 7)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotSet)
	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestContractUsecase_OpenDocument_OpenerError(t *testing.T) {
	repo := new(MockContractRepository)
	opener := new(MockDocumentOpener)
	uc := usecases.NewContractUsecase(repo, opener)

	repo.On("GetAll", mock.Anything).Return([]*entities.Contract{persisted()}, nil)
	opener.On("Open", "/docs/lease.pdf").Return(domainerrors.DocumentMissing("/docs/lease.pdf")).Once()

	err := uc.OpenDocument(context.Background(), 7)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentMissing)

	_, err = uc.GetContract(context.Background(), 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
