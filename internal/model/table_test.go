package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_AlignsByLabel(t *testing.T) {
	a := RawTable{
		Header: []string{"Date", "Description"},
		Rows:   [][]string{{"01-01-2024", "first"}},
	}
	b := RawTable{
		Header: []string{"Description", "Date", "Balance"},
		Rows:   [][]string{{"second", "02-01-2024", "10"}},
	}

	got := Stack(a, b)
	assert.Equal(t, []string{"Date", "Description", "Balance"}, got.Header)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, []string{"01-01-2024", "first", ""}, got.Rows[0])
	assert.Equal(t, []string{"02-01-2024", "second", "10"}, got.Rows[1])
}

func TestStack_KeepsRepeatedLabels(t *testing.T) {
	a := RawTable{
		Header: []string{"Date", "Date"},
		Rows:   [][]string{{"01-01-2024", "03-01-2024"}},
	}
	got := Stack(a)
	assert.Equal(t, []string{"Date", "Date"}, got.Header)
	assert.Equal(t, []string{"01-01-2024", "03-01-2024"}, got.Rows[0])
}

func TestStack_Empty(t *testing.T) {
	got := Stack()
	assert.Equal(t, 0, got.Len())
	assert.Empty(t, got.Header)
}

func TestStack_RaggedRows(t *testing.T) {
	a := RawTable{
		Header: []string{"Date", "Description", "Balance"},
		Rows:   [][]string{{"01-01-2024"}},
	}
	got := Stack(a)
	assert.Equal(t, []string{"01-01-2024", "", ""}, got.Rows[0])
}

func TestDropUnnamed(t *testing.T) {
	tbl := RawTable{
		Header: []string{"Date", "", "Description", "Date", " "},
		Rows:   [][]string{{"01-01-2024", "x", "desc", "dup", "y"}, {"02-01-2024"}},
	}
	got := tbl.DropUnnamed()
	assert.Equal(t, []string{"Date", "Description"}, got.Header)
	assert.Equal(t, []string{"01-01-2024", "desc"}, got.Rows[0])
	assert.Equal(t, []string{"02-01-2024", ""}, got.Rows[1])
}

func TestParseBank(t *testing.T) {
	tests := []struct {
		in      string
		want    Bank
		wantErr bool
	}{
		{"hdfc", BankHDFC, false},
		{" Generic ", BankGeneric, false},
		{"CANARA", BankCanara, false},
		{"citi", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBank(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseBank(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRecordsTable(t *testing.T) {
	records := []Record{{
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "Salary",
		Credit:      decimal.RequireFromString("50000"),
	}}
	got := RecordsTable(records)
	assert.Equal(t, Columns, got.Header)
	assert.Equal(t, []string{"05-01-2024", "Salary", "", "0", "50000", "0"}, got.Rows[0])
}
