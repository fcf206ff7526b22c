package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"facturo/internal/domain"
)

const sheet = "Invoice"

// XLSX renders a record as an XLSX workbook: a header block with the
// invoice identity, an items table and the reconciled totals.
func XLSX(rec *domain.InvoiceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	set := func(cell string, v any) {
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Identity block
	set("A1", "Invoice Ref")
	set("B1", rec.InvoiceRef)
	set("A2", "Invoice Date")
	set("B2", rec.InvoiceDate.Format("2006-01-02"))
	set("A3", "Buyer")
	set("B3", rec.BuyerName)
	set("A4", "Vendor")
	set("B4", rec.Vendor.Name)
	set("A5", "Payment Terms")
	set("B5", rec.PaymentTerms)
	if rec.DueDate != nil {
		set("A6", "Due Date")
		set("B6", rec.DueDate.Format("2006-01-02"))
	}

	// Items table
	headers := []string{"Item", "Ref", "Category", "Qty", "Unit Price", "Line Total"}
	const tableStart = 8
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableStart)
		set(cell, h)
	}
	row := tableStart + 1
	for _, it := range rec.Items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			set(cell, v)
		}
		write(1, it.Name)
		write(2, it.Ref)
		write(3, it.Category)
		write(4, it.Qty)
		write(5, it.UnitPrice)
		write(6, float64(it.Qty)*it.UnitPrice)
		row++
	}

	// Totals
	row++
	for _, line := range []struct {
		label string
		value float64
	}{
		{"Subtotal", rec.Subtotal},
		{"Tax", rec.Tax},
		{"Total", rec.Total},
	} {
		labelCell, _ := excelize.CoordinatesToCellName(5, row)
		valueCell, _ := excelize.CoordinatesToCellName(6, row)
		set(labelCell, line.label)
		set(valueCell, line.value)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "F", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
