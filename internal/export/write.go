package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/passbook/internal/model"
)

// Write saves records at path: CSV when the extension is .csv, a workbook
// otherwise.
func Write(path string, records []model.Record) error {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return WriteXLSX(path, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
