package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.3"), 0o644))
}

func TestScan_OnlyPDFs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ImportDir, "sbi.pdf"))
	writeFile(t, filepath.Join(root, ImportDir, "HDFC.PDF"))
	writeFile(t, filepath.Join(root, ImportDir, "notes.txt"))
	writeFile(t, filepath.Join(root, ProcessedDir, "old.pdf"))

	files, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "HDFC.PDF", files[0].Name)
	assert.Equal(t, "sbi.pdf", files[1].Name)
	assert.Equal(t, filepath.Join(root, ImportDir, "sbi.pdf"), files[1].Path)
	assert.Equal(t, int64(8), files[1].Size)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestExportPath(t *testing.T) {
	f := FileInfo{Name: "hdfc-march.PDF"}
	assert.Equal(t, "hdfc-march", f.Stem())
	assert.Equal(t, filepath.Join("root", ExportDir, "hdfc-march.xlsx"), ExportPath("root", f))
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ImportDir, "sbi.pdf"))

	require.NoError(t, MarkProcessed(root, "sbi.pdf"))
	assert.NoFileExists(t, filepath.Join(root, ImportDir, "sbi.pdf"))
	assert.FileExists(t, filepath.Join(root, ProcessedDir, "sbi.pdf"))

	files, err := Scan(root)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed_Missing(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "ghost.pdf")
	assert.ErrorContains(t, err, "moving ghost.pdf")
}
