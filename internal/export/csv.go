package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"facturo/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// csvColumns defines the CSV header row, one row per line item.
var csvColumns = []string{
	"Invoice Ref",
	"Invoice Date",
	"Buyer",
	"Vendor",
	"Item",
	"Item Ref",
	"Category",
	"Qty",
	"Unit Price",
	"Line Total",
	"Subtotal",
	"Tax",
	"Total",
	"Payment Terms",
	"Due Date",
}

// CSV renders a record as CSV bytes, BOM first. Record-level columns
// repeat on every item row; a record with no items still produces one
// row so its totals are visible.
func CSV(rec *domain.InvoiceRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	base := func() []string {
		row := make([]string, len(csvColumns))
		row[0] = rec.InvoiceRef
		row[1] = rec.InvoiceDate.Format("2006-01-02")
		row[2] = rec.BuyerName
		row[3] = rec.Vendor.Name
		row[10] = fmtAmount(rec.Subtotal)
		row[11] = fmtAmount(rec.Tax)
		row[12] = fmtAmount(rec.Total)
		row[13] = rec.PaymentTerms
		if rec.DueDate != nil {
			row[14] = rec.DueDate.Format("2006-01-02")
		}
		return row
	}

	if len(rec.Items) == 0 {
		if err := w.Write(base()); err != nil {
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}
	for _, it := range rec.Items {
		row := base()
		row[4] = it.Name
		row[5] = it.Ref
		row[6] = it.Category
		row[7] = strconv.Itoa(it.Qty)
		row[8] = fmtAmount(it.UnitPrice)
		row[9] = fmtAmount(float64(it.Qty) * it.UnitPrice)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
