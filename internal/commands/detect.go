package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/config"
	"github.com/cleared-dev/passbook/internal/pipeline"
)

func newDetectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "detect <pdf_path>",
		Short: "Print the issuing bank of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath, config.FileName)
			if err != nil {
				return err
			}
			svc, err := pipeline.New(cfg)
			if err != nil {
				return err
			}
			bank, err := svc.Detect(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bank)
			return nil
		},
	}
}
