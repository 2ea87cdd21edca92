package domain

// ParserFailed is the sentinel written into every data column of a document
// whose normalization failed entirely.
const ParserFailed = "PARSER FAILED"

// Columns defines the fixed output table schema (16 columns, order fixed).
var Columns = []string{
	"filename",
	"receipt_number",
	"company",
	"vendor",
	"date",
	"net_amount",
	"gross_amount",
	"tax_amount",
	"ean",
	"description",
	"article_id",
	"quantity",
	"unit_of_measure",
	"unit_price",
	"tax_rate",
	"total_price",
}

// Header holds the receipt-level fields of a normalized document. Values are
// already formatted for the output table; the empty string marks an absent
// field, never an error.
type Header struct {
	ReceiptNumber string
	Company       string
	Vendor        string
	Date          string
	NetAmount     string
	GrossAmount   string
	TaxAmount     string
}

// LineItem holds the item-level fields of a normalized document.
type LineItem struct {
	EAN           string
	Description   string
	ArticleID     string
	Quantity      string
	UnitOfMeasure string
	UnitPrice     string
	TaxRate       string
	TotalPrice    string
}

// StructuredReceipt is the normalized intermediate form produced by a schema
// adapter. It is a value type with no shared state; Items may be empty.
type StructuredReceipt struct {
	Header Header
	Items  []LineItem
}

// FlatRow is one output record over exactly the Columns schema.
type FlatRow map[string]string

// FailureRow returns the single sentinel row emitted for a document that
// could not be read, parsed, or normalized: filename is set and all other
// columns carry the ParserFailed marker.
func FailureRow(filename string) FlatRow {
	row := make(FlatRow, len(Columns))
	for _, col := range Columns {
		row[col] = ParserFailed
	}
	row["filename"] = filename
	return row
}
