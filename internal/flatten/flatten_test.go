package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximvlah/ntf/internal/domain"
)

func sampleReceipt() *domain.StructuredReceipt {
	return &domain.StructuredReceipt{
		Header: domain.Header{
			ReceiptNumber: "R-1",
			Company:       "Acme",
			Vendor:        "Baumarkt",
			Date:          "2024-01-01",
			NetAmount:     "84.03",
			GrossAmount:   "100",
			TaxAmount:     "15.97",
		},
		Items: []domain.LineItem{
			{Description: "Schrauben", Quantity: "2", TotalPrice: "25"},
			{Description: "Dübel", Quantity: "1", TotalPrice: "3.49", EAN: "4006381333931"},
		},
	}
}

func TestFlatten_OneRowPerItem(t *testing.T) {
	rows := Flatten(sampleReceipt())
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Len(t, row, len(domain.Columns))
		// Header fields are merged unchanged into every row
		assert.Equal(t, "R-1", row["receipt_number"])
		assert.Equal(t, "Acme", row["company"])
		assert.Equal(t, "Baumarkt", row["vendor"])
		assert.Equal(t, "2024-01-01", row["date"])
		assert.Equal(t, "84.03", row["net_amount"])
		assert.Equal(t, "100", row["gross_amount"])
		assert.Equal(t, "15.97", row["tax_amount"])
		assert.Empty(t, row["filename"])
	}

	// Row order matches item order
	assert.Equal(t, "Schrauben", rows[0]["description"])
	assert.Equal(t, "2", rows[0]["quantity"])
	assert.Equal(t, "Dübel", rows[1]["description"])
	assert.Equal(t, "4006381333931", rows[1]["ean"])
}

func TestFlatten_NoItems(t *testing.T) {
	r := sampleReceipt()
	r.Items = nil

	rows := Flatten(r)
	assert.Empty(t, rows)
}

func TestFlatten_Idempotent(t *testing.T) {
	r := sampleReceipt()
	first := Flatten(r)
	second := Flatten(r)
	assert.Equal(t, first, second)
}

func TestFailureRow_SentinelColumns(t *testing.T) {
	row := domain.FailureRow("bad.json")

	assert.Len(t, row, len(domain.Columns))
	assert.Equal(t, "bad.json", row["filename"])
	for _, col := range domain.Columns {
		if col == "filename" {
			continue
		}
		assert.Equal(t, domain.ParserFailed, row[col], "column %s", col)
	}
}
