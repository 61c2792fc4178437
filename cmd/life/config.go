package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the search order:
--config, ~/.life/configs/life.yaml, ./configs/life.yaml, then built-in
defaults. The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
