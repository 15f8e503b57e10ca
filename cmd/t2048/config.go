package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration file. Save it as ~/.t2048/config.yaml
or ./configs/t2048.yaml to customise the game.

With --resolved, print the configuration in effect after loading files
and applying flags instead.

Examples:
  t2048 config > ~/.t2048/config.yaml
  t2048 config --resolved --db /tmp/t2048.db`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := loadConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
