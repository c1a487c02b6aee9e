package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/cleared-dev/passbook/internal/model"
)

type csvRecord struct {
	Date         string `csv:"Date"`
	Description  string `csv:"Description"`
	ChequeNumber string `csv:"Cheque No."`
	Debit        string `csv:"Debit"`
	Credit       string `csv:"Credit"`
	Balance      string `csv:"Balance"`
}

// WriteCSV writes records as CSV with the canonical header. Amounts have two
// decimal places.
func WriteCSV(w io.Writer, records []model.Record) error {
	rows := make([]csvRecord, len(records))
	for i, r := range records {
		rows[i] = csvRecord{
			Date:         r.DateString(),
			Description:  r.Description,
			ChequeNumber: r.ChequeNumber,
			Debit:        r.Debit.StringFixed(2),
			Credit:       r.Credit.StringFixed(2),
			Balance:      r.Balance.StringFixed(2),
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
