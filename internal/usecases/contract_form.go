package usecases

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"contract-registry/internal/domain/entities"
	domainerrors "contract-registry/internal/domain/errors"
	"contract-registry/internal/domain/repositories"
	"contract-registry/pkg/logger"
)

const (
	amountFormatMessage = "amount must be a number, e.g. 150000.50"
	dateFormatMessage   = "dates must use the YYYY-MM-DD format, e.g. 2025-10-30"
)

// FormMode selects between creating a new contract and editing an existing
// one. It is fixed for the lifetime of a form.
type FormMode interface {
	formMode()
}

// CreateMode produces a new contract without an ID.
type CreateMode struct{}

// EditMode updates Target, which must already be persisted.
type EditMode struct {
	Target *entities.Contract
}

func (CreateMode) formMode() {}
func (EditMode) formMode() {}

// Create returns the create-mode variant.
func Create() FormMode { return CreateMode{} }

// Edit returns the edit-mode variant for c.
func Edit(c *entities.Contract) FormMode { return EditMode{Target: c} }

// ContractForm validates raw editor input and persists it. It is UI-agnostic:
// a presentation layer binds to LoadInitialValues, Submit and Cancel.
type ContractForm struct {
	repo    repositories.ContractRepository
	mode    FormMode
	onSaved func(*entities.Contract)
	closed  bool
}

// NewContractForm creates a form session. onSaved, if set, runs after a
// successful save, e.g. to refresh a list view.
func NewContractForm(repo repositories.ContractRepository, mode FormMode, onSaved func(*entities.Contract)) *ContractForm {
	if mode == nil {
		mode = CreateMode{}
	}
	return &ContractForm{repo: repo, mode: mode, onSaved: onSaved}
}

// Mode returns the form mode.
func (f *ContractForm) Mode() FormMode {
	return f.mode
}

// Closed reports whether the session has ended.
func (f *ContractForm) Closed() bool {
	return f.closed
}

// Cancel ends the session without saving.
func (f *ContractForm) Cancel() {
	f.closed = true
}

// LoadInitialValues returns the values the editor starts with.
func (f *ContractForm) LoadInitialValues() entities.ContractFormInput {
	if m, ok := f.mode.(EditMode); ok && m.Target != nil {
		return m.Target.FormInput()
	}
	return entities.ContractFormInput{}
}

// Submit validates and parses raw, then adds or updates the contract.
// Validation and format errors leave both the session and the edit target
// untouched.
func (f *ContractForm) Submit(ctx context.Context, raw entities.ContractFormInput) (*entities.Contract, error) {
	if f.closed {
		return nil, domainerrors.FormClosed()
	}

	parsed, err := parseFormInput(raw)
	if err != nil {
		logger.Debug(ctx, "Contract form rejected", zap.Error(err))
		return nil, err
	}

	var saved *entities.Contract
	switch m := f.mode.(type) {
	case CreateMode:
		if err := f.repo.Add(ctx, parsed); err != nil {
			return nil, err
		}
		saved = parsed
	case EditMode:
		if m.Target == nil || !m.Target.IsPersisted() {
			return nil, domainerrors.NotFound("contract to edit has no id")
		}
		updated := *m.Target
		updated.Name = parsed.Name
		updated.PartyOne = parsed.PartyOne
		updated.PartyTwo = parsed.PartyTwo
		updated.CreatedDate = parsed.CreatedDate
		updated.EndDate = parsed.EndDate
		updated.Amount = parsed.Amount
		updated.DocumentPath = parsed.DocumentPath

		if _, err := f.repo.Update(ctx, &updated); err != nil {
			return nil, err
		}
		*m.Target = updated
		saved = m.Target
	}

	if f.onSaved != nil {
		f.onSaved(saved)
	}
	f.closed = true
	return saved, nil
}

// parseFormInput turns raw field text into a new, unpersisted contract.
func parseFormInput(raw entities.ContractFormInput) (*entities.Contract, error) {
	name := strings.TrimSpace(raw.Name)
	partyOne := strings.TrimSpace(raw.PartyOne)
	if name == "" || partyOne == "" {
		return nil, domainerrors.Validation(entities.RequiredFieldsMessage)
	}

	amount := decimal.Zero
	if s := strings.TrimSpace(raw.Amount); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, domainerrors.Format(amountFormatMessage, err)
		}
		amount = d
	}

	createdDate, err := entities.ParseDate(raw.CreatedDate)
	if err != nil {
		return nil, domainerrors.Format(dateFormatMessage, err)
	}
	endDate, err := entities.ParseDate(raw.EndDate)
	if err != nil {
		return nil, domainerrors.Format(dateFormatMessage, err)
	}

	c := &entities.Contract{
		Name:        name,
		PartyOne:    partyOne,
		CreatedDate: createdDate,
		EndDate:     endDate,
		Amount:      amount,
	}
	if s := strings.TrimSpace(raw.PartyTwo); s != "" {
		c.PartyTwo = null.StringFrom(s)
	}
	if raw.DocumentPath != "" {
		c.DocumentPath = null.StringFrom(raw.DocumentPath)
	}
	return c, nil
}
