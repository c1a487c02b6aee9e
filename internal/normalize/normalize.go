// Package normalize turns raw extracted tables into canonical records. It
// never fails: malformed amounts become zero and rows without a readable
// date are dropped.
package normalize

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cleared-dev/passbook/internal/model"
)

// Normalizer applies an alias table to raw tables.
type Normalizer struct {
	aliases *AliasTable
}

// New creates a Normalizer. A nil table means DefaultAliases.
func New(aliases *AliasTable) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Normalizer{aliases: aliases}
}

// Normalize maps t onto canonical records.
func (n *Normalizer) Normalize(t model.RawTable) []model.Record {
	// Canonical column → source index; the first source column wins.
	index := make(map[string]int, len(model.Columns))
	for i, h := range t.Header {
		label := n.aliases.Resolve(h)
		if _, seen := index[label]; !seen {
			index[label] = i
		}
	}
	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok {
			return ""
		}
		return strings.TrimSpace(model.Cell(row, i))
	}

	records := make([]model.Record, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		date, ok := ParseDate(cell(row, model.ColDate))
		if !ok {
			dropped++
			continue
		}
		records = append(records, model.Record{
			Date:         date,
			Description:  cell(row, model.ColDescription),
			ChequeNumber: cell(row, model.ColCheque),
			Debit:        Amount(cell(row, model.ColDebit)).Abs(),
			Credit:       Amount(cell(row, model.ColCredit)).Abs(),
			Balance:      Amount(cell(row, model.ColBalance)),
		})
	}

	log.Debug().
		Int("rows", len(t.Rows)).
		Int("records", len(records)).
		Int("dropped", dropped).
		Msg("normalized")
	return records
}
