package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/config"
	"github.com/cleared-dev/passbook/internal/importer"
	"github.com/cleared-dev/passbook/internal/pipeline"
	"github.com/cleared-dev/passbook/internal/runlog"
)

func newBatchCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [directory]",
		Short: "Convert every statement waiting in a workspace's import directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := loadConfig(flags.configPath, filepath.Join(absDir, config.FileName))
			if err != nil {
				return err
			}
			return runBatch(cmd.OutOrStdout(), cfg, absDir)
		},
	}
}

func runBatch(w io.Writer, cfg *config.Config, root string) error {
	svc, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	files, err := importer.Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "No statements to convert")
		return nil
	}

	if err := os.MkdirAll(filepath.Join(root, importer.ExportDir), 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}

	entries := make([]runlog.Entry, 0, len(files))
	failed := 0
	for _, f := range files {
		out := importer.ExportPath(root, f)
		entry := runlog.Entry{
			Timestamp: time.Now().UTC(),
			Input:     filepath.Join(importer.ImportDir, f.Name),
			Output:    filepath.Join(importer.ExportDir, filepath.Base(out)),
		}

		res, err := svc.Convert(f.Path, out)
		if err == nil {
			entry.Bank = string(res.Bank)
			entry.Strategy = string(res.Strategy)
			entry.Rows = len(res.Records)
			err = importer.MarkProcessed(root, f.Name)
		}
		if err != nil {
			failed++
			entry.Output = ""
			entry.Error = err.Error()
			log.Error().Err(err).Str("file", f.Name).Msg("conversion failed")
			fmt.Fprintf(w, "FAILED %s: %v\n", f.Name, err)
		} else {
			fmt.Fprintf(w, "%s -> %s (%s, %s, %d rows)\n", f.Name, entry.Output, entry.Bank, entry.Strategy, entry.Rows)
		}
		entries = append(entries, entry)
	}

	if err := runlog.Append(root, entries); err != nil {
		return fmt.Errorf("writing conversion log: %w", err)
	}

	fmt.Fprintf(w, "Converted %d of %d statements\n", len(files)-failed, len(files))
	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(files))
	}
	return nil
}
