package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column labels, in output order.
const (
	ColDate        = "Date"
	ColDescription = "Description"
	ColCheque      = "Cheque No."
	ColDebit       = "Debit"
	ColCredit      = "Credit"
	ColBalance     = "Balance"
)

// Columns is the fixed canonical column order.
var Columns = []string{ColDate, ColDescription, ColCheque, ColDebit, ColCredit, ColBalance}

// DateFormat renders record dates as DD-MM-YYYY.
const DateFormat = "02-01-2006"

// Record is one normalized statement line.
type Record struct {
	Date         time.Time
	Description  string
	ChequeNumber string          // empty when the statement has none
	Debit        decimal.Decimal // never negative
	Credit       decimal.Decimal // never negative
	Balance      decimal.Decimal
}

// DateString returns the date as DD-MM-YYYY.
func (r Record) DateString() string { return r.Date.Format(DateFormat) }

// RecordsTable renders records back into a RawTable with canonical labels.
func RecordsTable(records []Record) RawTable {
	t := RawTable{Header: append([]string(nil), Columns...)}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.DateString(),
			r.Description,
			r.ChequeNumber,
			r.Debit.String(),
			r.Credit.String(),
			r.Balance.String(),
		})
	}
	return t
}
