package pdfdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/pdftest"
)

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.pdf")
	err := pdftest.Write(path,
		pdftest.Page{
			Lines: []string{"HDFC BANK Ltd", "Statement of account"},
			Tables: []pdftest.Table{{
				Header: []string{"Date", "Narration", "Closing Balance"},
				Rows:   [][]string{{"01/04/2024", "OPENING", "1,000.00"}},
				Ruled:  true,
			}},
		},
		pdftest.Page{Lines: []string{"Page two"}},
	)
	require.NoError(t, err)
	return path
}

func TestOpen_ReadsPages(t *testing.T) {
	doc, err := Open(writeStatement(t))
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.NumPages())

	page, err := doc.Page(1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.NotEmpty(t, page.Glyphs)
	assert.Len(t, page.Rules, 6)
	for _, r := range page.Rules {
		assert.LessOrEqual(t, r.X0, r.X1)
		assert.LessOrEqual(t, r.Y0, r.Y1)
	}
}

func TestText_FirstPages(t *testing.T) {
	doc, err := Open(writeStatement(t))
	require.NoError(t, err)
	defer doc.Close()

	text, err := Text(doc, 1, layout.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, text, "HDFC BANK Ltd")
	assert.NotContains(t, text, "Page two")

	all, err := Text(doc, 0, layout.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, strings.Contains(all, "Page two"))
}

func TestOpen_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pdf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a pdf"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening pdf")
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestClose_Twice(t *testing.T) {
	doc, err := Open(writeStatement(t))
	require.NoError(t, err)
	require.NoError(t, doc.Close())
	assert.NoError(t, doc.Close())
}
