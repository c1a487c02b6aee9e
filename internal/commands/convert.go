package commands

import (
	"fmt"
	"io"

	"github.com/cleared-dev/passbook/internal/config"
	"github.com/cleared-dev/passbook/internal/export"
	"github.com/cleared-dev/passbook/internal/model"
	"github.com/cleared-dev/passbook/internal/pipeline"
)

// runConvert writes the detected bank and then a one-line JSON preview of
// the converted records to w. A non-empty bankTag replaces detection.
func runConvert(w io.Writer, cfg *config.Config, in, out, bankTag string) error {
	var bank model.Bank
	if bankTag != "" {
		b, err := model.ParseBank(bankTag)
		if err != nil {
			return err
		}
		bank = b
	}

	svc, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	if bank == "" {
		bank, err = svc.Detect(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Detected bank type: %s\n", bank)
	}

	res, err := svc.ConvertAs(bank, in, out)
	if err != nil {
		return err
	}
	if bankTag != "" {
		fmt.Fprintf(w, "Detected bank type: %s\n", bank)
	}

	preview, err := export.Preview(res.Records, cfg.Preview.Rows)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, preview)
	return nil
}
