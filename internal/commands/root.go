package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/buildinfo"
	"github.com/cleared-dev/passbook/internal/config"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// The root command itself converts one statement.
func NewRootCommand() *cobra.Command {
	var flags globalFlags
	var bank string

	rootCmd := &cobra.Command{
		Use:     "passbook <pdf_path> <output_path>",
		Short:   "Convert Indian bank statement PDFs into spreadsheets",
		Version: buildinfo.String(),
		Args:    cobra.ExactArgs(2),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath, config.FileName)
			if err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), cfg, args[0], args[1], bank)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a passbook.yaml file")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&bank, "bank", "", "skip detection and treat the statement as this bank (e.g. SBI, HDFC, GENERIC)")

	rootCmd.AddCommand(newDetectCommand(&flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBatchCommand(&flags))

	return rootCmd
}

// loadConfig reads the file named by --config, which must exist. Without
// the flag it reads fallback when present and uses defaults otherwise.
func loadConfig(path, fallback string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if fallback != "" {
		if _, err := os.Stat(fallback); err == nil {
			return config.Load(fallback)
		}
	}
	return config.Default(), nil
}
