package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"contract-registry/internal/domain/entities"
)

// NotAvailable is printed for an absent optional field.
const NotAvailable = "N/A"

// Renderer renders contracts as plain text.
type Renderer struct {
	printer  *message.Printer
	currency string
}

// NewRenderer creates a renderer for locale, e.g. "en" or "hu". An
// unparseable locale falls back to English.
func NewRenderer(locale, currency string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Renderer{printer: message.NewPrinter(tag), currency: currency}
}

// FormatAmount renders amount with thousands separators, two decimals and
// the currency label.
func (r *Renderer) FormatAmount(amount decimal.Decimal) string {
	s := r.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
	if r.currency == "" {
		return s
	}
	return s + " " + r.currency
}

// Detail renders every field of c, one per line.
func (r *Renderer) Detail(c *entities.Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:\t\t%d\n", c.ID)
	fmt.Fprintf(&b, "NAME*:\t\t%s\n", c.Name)
	fmt.Fprintf(&b, "PARTY ONE*:\t%s\n", c.PartyOne)
	b.WriteString("--------------------------------------\n")
	fmt.Fprintf(&b, "CREATED:\t%s\n", orNA(entities.FormatDate(c.CreatedDate)))
	fmt.Fprintf(&b, "ENDS:\t\t%s\n", orNA(entities.FormatDate(c.EndDate)))
	fmt.Fprintf(&b, "AMOUNT:\t\t%s\n", r.FormatAmount(c.Amount))
	fmt.Fprintf(&b, "PARTY TWO:\t%s\n", orNA(c.PartyTwo))
	fmt.Fprintf(&b, "DOCUMENT:\t%s\n", orNA(c.DocumentPath))
	return b.String()
}

// List writes one "id<TAB>label" line per contract, in the given order.
func (r *Renderer) List(w io.Writer, items []*entities.Contract) error {
	for _, c := range items {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", c.ID, c.String()); err != nil {
			return err
		}
	}
	return nil
}

func orNA(s null.String) string {
	if !s.Valid {
		return NotAvailable
	}
	return s.String
}
