package main

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladders/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration 'ladders play' would use, as YAML.

Configuration is read from the first of:
  --config <path>
  ~/.ladders/configs/ladders.yaml
  ./configs/ladders.yaml
  the built-in defaults

Examples:
  ladders config
  ladders config --default > ~/.ladders/configs/ladders.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		exitOnError(printConfig(cmd.OutOrStdout()))
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file instead")
}

func printConfig(w io.Writer) error {
	if flagDefault {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
