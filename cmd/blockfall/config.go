package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration for a variant the same way play does and
print it as YAML. The output can be saved and edited as a custom config.

Search order:
  --config <path>
  ~/.blockfall/configs/<variant>.yaml
  ./configs/<variant>.yaml
  built-in defaults

Examples:
  blockfall config classic
  blockfall config tetromino > ~/.blockfall/configs/tetromino.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q", args[0])
	}

	cfg, err := config.Load(args[0], flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", cfg.Source)
	_, err = out.Write(data)
	return err
}
