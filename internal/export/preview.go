package export

import (
	"encoding/json"
	"fmt"

	"github.com/cleared-dev/passbook/internal/model"
)

// DefaultPreviewRows is how many records Preview shows when asked for n <= 0.
const DefaultPreviewRows = 10

// previewRecord keeps the canonical key order in JSON output.
type previewRecord struct {
	Date         string      `json:"Date"`
	Description  string      `json:"Description"`
	ChequeNumber string      `json:"Cheque No."`
	Debit        json.Number `json:"Debit"`
	Credit       json.Number `json:"Credit"`
	Balance      json.Number `json:"Balance"`
}

// Preview renders the first n records as a single-line JSON array.
func Preview(records []model.Record, n int) (string, error) {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	if len(records) < n {
		n = len(records)
	}

	out := make([]previewRecord, n)
	for i, r := range records[:n] {
		out[i] = previewRecord{
			Date:         r.DateString(),
			Description:  r.Description,
			ChequeNumber: r.ChequeNumber,
			Debit:        json.Number(r.Debit.String()),
			Credit:       json.Number(r.Credit.String()),
			Balance:      json.Number(r.Balance.String()),
		}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding preview: %w", err)
	}
	return string(b), nil
}
