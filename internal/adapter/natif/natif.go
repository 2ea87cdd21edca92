// Package natif normalizes natif.ai receipt-extraction output. The natif
// schema wraps most scalar fields as {"value": ...} objects but occasionally
// emits them bare; both shapes are accepted.
package natif

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/maximvlah/ntf/internal/adapter"
	"github.com/maximvlah/ntf/internal/domain"
	"github.com/maximvlah/ntf/internal/port"
)

// Name is the adapter identifier used in configuration.
const Name = "natif"

func init() {
	adapter.Register(Name, func() port.DocumentAdapter { return New() })
}

// Adapter implements port.DocumentAdapter for natif.ai parser output.
type Adapter struct{}

// New creates a natif Adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string {
	return Name
}

// Normalize converts one natif.ai extraction result into a StructuredReceipt.
// Header and item fields follow the value-or-absent rule; a document missing
// the customer or vendor object entirely cannot be traversed and fails with
// domain.ErrNormalizationFailed.
func (a *Adapter) Normalize(doc map[string]any) (*domain.StructuredReceipt, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", domain.ErrNormalizationFailed)
	}

	customer, ok := doc["customer"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing customer object", domain.ErrNormalizationFailed)
	}
	vendor, ok := doc["vendor"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing vendor object", domain.ErrNormalizationFailed)
	}

	header := domain.Header{
		ReceiptNumber: scalar(doc["number"]),
		Company:       scalar(customer["name"]),
		Vendor:        scalar(vendor["name"]),
		Date:          scalar(doc["date"]),
		NetAmount:     scalar(doc["net_amount"]),
		GrossAmount:   scalar(doc["gross_amount"]),
		TaxAmount:     scalar(doc["tax_amount"]),
	}

	// line_item must be a list; anything else means no items.
	var items []domain.LineItem
	if rawItems, ok := doc["line_item"].([]any); ok {
		for i, raw := range rawItems {
			fields, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: line_item %d is not an object", domain.ErrNormalizationFailed, i)
			}
			items = append(items, domain.LineItem{
				EAN:           scalar(fields["ean"]),
				Description:   scalar(fields["description"]),
				ArticleID:     scalar(fields["article_id"]),
				Quantity:      scalar(fields["quantity"]),
				UnitOfMeasure: scalar(fields["unit_of_measure"]),
				UnitPrice:     scalar(fields["unit_price"]),
				TaxRate:       scalar(fields["tax_rate"]),
				TotalPrice:    scalar(fields["total_price"]),
			})
		}
	}

	return &domain.StructuredReceipt{Header: header, Items: items}, nil
}

// scalar applies the value-or-absent extraction rule: a {"value": ...}
// wrapper is unwrapped first, then known scalar shapes are formatted for the
// output table. Anything else (missing key, null, nested structure) is absent.
func scalar(v any) string {
	if wrapped, ok := v.(map[string]any); ok {
		v = wrapped["value"]
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
