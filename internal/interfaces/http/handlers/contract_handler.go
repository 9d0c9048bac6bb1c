package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contract-registry/internal/domain/entities"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/interfaces/http/response"
	"contract-registry/internal/interfaces/view"
	"contract-registry/internal/usecases"
)

type contractService interface {
	ListContracts(ctx context.Context) ([]*entities.Contract, error)
	GetContract(ctx context.Context, id int64) (*entities.Contract, error)
	NewCreateForm(onSaved func(*entities.Contract)) *usecases.ContractForm
	NewEditForm(ctx context.Context, id int64, onSaved func(*entities.Contract)) (*usecases.ContractForm, error)
	DeleteContract(ctx context.Context, id int64) (bool, error)
	OpenDocument(ctx context.Context, id int64) error
}

type ContractHandler struct {
	service  contractService
	renderer *view.Renderer
}

func NewContractHandler(service *usecases.ContractUsecase, renderer *view.Renderer) *ContractHandler {
	return &ContractHandler{service: service, renderer: renderer}
}

// ListContracts returns every contract sorted by name.
// GET /api/v1/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	items, err := h.service.ListContracts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]entities.ContractResponse, 0, len(items))
	for _, item := range items {
		out = append(out, entities.NewContractResponse(item))
	}
	response.Success(c, http.StatusOK, gin.H{"items": out})
}

// GetContract returns one contract with its rendered detail text.
// GET /api/v1/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	contract, err := h.service.GetContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"contract": entities.NewContractResponse(contract),
		"detail":   h.renderer.Detail(contract),
		"amount":   h.renderer.FormatAmount(contract.Amount),
	})
}

// GetContractForm returns the editor's initial values for a contract.
// GET /api/v1/contracts/:id/form
func (h *ContractHandler) GetContractForm(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	form, err := h.service.NewEditForm(c.Request.Context(), id, nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"form": form.LoadInitialValues()})
}

// CreateContract validates the raw form and adds a contract.
// POST /api/v1/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var input entities.ContractFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Format("invalid request body", err))
		return
	}

	saved, err := h.service.NewCreateForm(nil).Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Contract created",
		"contract": entities.NewContractResponse(saved),
	})
}

// UpdateContract validates the raw form and overwrites every field of the
// contract.
// PUT /api/v1/contracts/:id
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	var input entities.ContractFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Format("invalid request body", err))
		return
	}

	form, err := h.service.NewEditForm(c.Request.Context(), id, nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	saved, err := form.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Contract updated",
		"contract": entities.NewContractResponse(saved),
	})
}

// DeleteContract removes a contract. Deleting a missing id succeeds with
// deleted=false.
// DELETE /api/v1/contracts/:id
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	removed, err := h.service.DeleteContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Contract deleted", "deleted": removed})
}

// OpenDocument opens the linked document on the host running the server.
// POST /api/v1/contracts/:id/open
func (h *ContractHandler) OpenDocument(c *gin.Context) {
	id, ok := contractID(c)
	if !ok {
		return
	}
	if err := h.service.OpenDocument(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Document opened"})
}

func contractID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, domainerrors.Validation("invalid contract ID"))
		return 0, false
	}
	return id, true
}
