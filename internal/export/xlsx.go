// Package export writes canonical records as a spreadsheet, a CSV file or
// a JSON preview.
package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/cleared-dev/passbook/internal/model"
)

const (
	// SheetName is the single worksheet in an exported workbook.
	SheetName = "Bank Statement"

	headerFill   = "D9EAD3"
	amountFormat = "₹#,##0.00"
)

// WriteXLSX writes records to a workbook at path.
func WriteXLSX(path string, records []model.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	numFmt := amountFormat
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	widths := make([]int, len(model.Columns))
	setCell := func(col, row int, value any, display string) error {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("writing %s: %w", cell, err)
		}
		if n := utf8.RuneCountInString(display); n > widths[col] {
			widths[col] = n
		}
		return nil
	}

	for i, h := range model.Columns {
		if err := setCell(i, 1, h, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", lastColumn()+"1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, r := range records {
		row := i + 2
		cells := []struct {
			value   any
			display string
		}{
			{r.DateString(), r.DateString()},
			{r.Description, r.Description},
			{r.ChequeNumber, r.ChequeNumber},
			{r.Debit.InexactFloat64(), r.Debit.String()},
			{r.Credit.InexactFloat64(), r.Credit.String()},
			{r.Balance.InexactFloat64(), r.Balance.String()},
		}
		for col, c := range cells {
			if err := setCell(col, row, c.value, c.display); err != nil {
				return err
			}
		}
	}
	if len(records) > 0 {
		last := fmt.Sprintf("%s%d", lastColumn(), len(records)+1)
		if err := f.SetCellStyle(SheetName, "D2", last, amountStyle); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}

	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(w+2)*1.2); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func lastColumn() string {
	name, _ := excelize.ColumnNumberToName(len(model.Columns))
	return name
}
