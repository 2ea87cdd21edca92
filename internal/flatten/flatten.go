// Package flatten expands a normalized receipt into flat output rows.
package flatten

import "github.com/maximvlah/ntf/internal/domain"

// Flatten emits one row per line item, in item order, with the header fields
// merged into each. Header-only receipts produce no rows: the output schema
// requires line-item context. The filename column is left empty for the
// caller to fill in.
func Flatten(r *domain.StructuredReceipt) []domain.FlatRow {
	rows := make([]domain.FlatRow, 0, len(r.Items))
	for _, item := range r.Items {
		rows = append(rows, row(r.Header, item))
	}
	return rows
}

func row(h domain.Header, item domain.LineItem) domain.FlatRow {
	return domain.FlatRow{
		"filename":        "",
		"receipt_number":  h.ReceiptNumber,
		"company":         h.Company,
		"vendor":          h.Vendor,
		"date":            h.Date,
		"net_amount":      h.NetAmount,
		"gross_amount":    h.GrossAmount,
		"tax_amount":      h.TaxAmount,
		"ean":             item.EAN,
		"description":     item.Description,
		"article_id":      item.ArticleID,
		"quantity":        item.Quantity,
		"unit_of_measure": item.UnitOfMeasure,
		"unit_price":      item.UnitPrice,
		"tax_rate":        item.TaxRate,
		"total_price":     item.TotalPrice,
	}
}
