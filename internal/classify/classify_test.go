package classify

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
	"github.com/cleared-dev/passbook/internal/pdftest"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want model.Bank
	}{
		{"hdfc bank statement", model.BankHDFC},
		{"state bank of india\naccount statement", model.BankSBI},
		{"your sbi savings account", model.BankSBI},
		{"icici bank ltd", model.BankICICI},
		{"axis bank", model.BankAxis},
		{"punjab national bank", model.BankPNB},
		{"kotak mahindra bank", model.BankKotak},
		{"bank of baroda", model.BankBOB},
		{"union bank of india", model.BankUnion},
		{"canara bank", model.BankCanara},
		{"some credit union", model.BankGeneric},
		{"", model.BankGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_FirstSignatureWins(t *testing.T) {
	// HDFC appears first in the text, but SBI is earlier in signature order.
	assert.Equal(t, model.BankSBI, Classify("hdfc bank transfer to state bank of india"))
	assert.Equal(t, model.BankHDFC, Classify("hdfc bank neft from icici bank"))
}

func TestClassify_ExpectsLowerCase(t *testing.T) {
	assert.Equal(t, model.BankGeneric, Classify("HDFC Bank"))
}

type pages []layout.Page

func (p pages) NumPages() int { return len(p) }

func (p pages) Page(n int) (layout.Page, error) {
	if n > len(p) {
		return layout.Page{}, errors.New("out of range")
	}
	return p[n-1], nil
}

func glyphs(y float64, s string) []layout.Glyph {
	var out []layout.Glyph
	for i, r := range s {
		out = append(out, layout.Glyph{X: 20 + float64(i)*5, Y: y, W: 5, Size: 10, S: string(r)})
	}
	return out
}

func TestDetect_OnlyLeadingPages(t *testing.T) {
	src := pages{
		{Number: 1, Glyphs: glyphs(700, "Account Statement")},
		{Number: 2, Glyphs: glyphs(700, "Page two")},
		{Number: 3, Glyphs: glyphs(700, "HDFC Bank")},
	}
	bank, err := Detect(src, layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.BankGeneric, bank)

	bank, err = Detect(src[1:], layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.BankHDFC, bank)
}

func TestDetect_NoPages(t *testing.T) {
	bank, err := Detect(pages{}, layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.BankGeneric, bank)
}

func TestDetectFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stmt.pdf")
	require.NoError(t, pdftest.Write(path, pdftest.Page{Lines: []string{"HDFC Bank Statement"}}))

	bank, err := DetectFile(path, layout.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.BankHDFC, bank)
}

func TestDetectFile_NotPDF(t *testing.T) {
	_, err := DetectFile(filepath.Join(t.TempDir(), "missing.pdf"), layout.DefaultOptions())
	assert.Error(t, err)
}
