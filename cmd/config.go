package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/solstats/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set solstats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "column: %s\n", c.Column)
		fmt.Fprintf(out, "zero_substitute: %g\n", c.ZeroSubstitute)
		if c.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", c.Delimiter)
		} else {
			fmt.Fprintln(out, "delimiter: (auto)")
		}
		fmt.Fprintf(out, "format: %s\n", c.Format)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "column":
			if val == "" {
				return fmt.Errorf("column must not be empty")
			}
			cfg.Column = val
		case "zero_substitute":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid zero_substitute: %w", err)
			}
			if f < 0 {
				return fmt.Errorf("zero_substitute must be >= 0")
			}
			cfg.ZeroSubstitute = f
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "format":
			switch val {
			case "text", "markdown", "json":
				cfg.Format = val
			default:
				return fmt.Errorf("invalid format: %s (use text|markdown|json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
