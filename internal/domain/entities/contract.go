package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"

	domainerrors "contract-registry/internal/domain/errors"
)

// DateLayout is the ISO-8601 calendar date format used for storage and input.
const DateLayout = "2006-01-02"

// RequiredFieldsMessage is reported when name or party one is blank.
const RequiredFieldsMessage = "contract name and party one are required"

// Contract represents one tracked agreement
type Contract struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CreatedDate  null.Time       `json:"createdDate"`
	EndDate      null.Time       `json:"endDate"`
	Amount       decimal.Decimal `json:"amount"`
	PartyOne     string          `json:"partyOne"`
	PartyTwo     null.String     `json:"partyTwo"`
	DocumentPath null.String     `json:"documentPath"`
}

// String is the label shown in list views.
func (c *Contract) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.PartyOne)
}

// IsPersisted reports whether the store has assigned an ID.
func (c *Contract) IsPersisted() bool {
	return c.ID > 0
}

// HasDocument reports whether a document path is linked.
func (c *Contract) HasDocument() bool {
	return c.DocumentPath.Valid && c.DocumentPath.String != ""
}

// Validate checks the fields that must never be empty in persisted state.
func (c *Contract) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.PartyOne) == "" {
		return domainerrors.Validation(RequiredFieldsMessage)
	}
	return nil
}

// FormInput renders the contract as raw form fields.
func (c *Contract) FormInput() ContractFormInput {
	return ContractFormInput{
		Name:         c.Name,
		PartyOne:     c.PartyOne,
		PartyTwo:     c.PartyTwo.String,
		CreatedDate:  FormatDate(c.CreatedDate).String,
		EndDate:      FormatDate(c.EndDate).String,
		Amount:       c.Amount.StringFixed(2),
		DocumentPath: c.DocumentPath.String,
	}
}

// ContractFormInput holds the raw, unparsed values of the record editor.
type ContractFormInput struct {
	Name         string `json:"name"`
	PartyOne     string `json:"partyOne"`
	PartyTwo     string `json:"partyTwo"`
	CreatedDate  string `json:"createdDate"`
	EndDate      string `json:"endDate"`
	Amount       string `json:"amount"`
	DocumentPath string `json:"documentPath"`
}

// ContractResponse is the wire shape of a contract, dates as YYYY-MM-DD.
type ContractResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Label        string      `json:"label"`
	CreatedDate  null.String `json:"createdDate"`
	EndDate      null.String `json:"endDate"`
	Amount       string      `json:"amount"`
	PartyOne     string      `json:"partyOne"`
	PartyTwo     null.String `json:"partyTwo"`
	DocumentPath null.String `json:"documentPath"`
	HasDocument  bool        `json:"hasDocument"`
}

// NewContractResponse maps a contract to its wire shape.
func NewContractResponse(c *Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		Name:         c.Name,
		Label:        c.String(),
		CreatedDate:  FormatDate(c.CreatedDate),
		EndDate:      FormatDate(c.EndDate),
		Amount:       c.Amount.StringFixed(2),
		PartyOne:     c.PartyOne,
		PartyTwo:     c.PartyTwo,
		DocumentPath: c.DocumentPath,
		HasDocument:  c.HasDocument(),
	}
}

// ParseDate parses a YYYY-MM-DD string. Empty input yields a null date.
func ParseDate(s string) (null.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

// FormatDate renders a date as YYYY-MM-DD, or null when absent.
func FormatDate(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.Format(DateLayout))
}
