package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/solstats/internal/analysis"
	"github.com/KaramelBytes/solstats/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	repNumInstances int
	repOutputPath   string
	repFormat       string
	repColumn       string
	repDelimiter    string
	repDecimal      string
	repSheetName    string
)

func init() {
	f := rootCmd.Flags()
	f.IntVar(&repNumInstances, "num_instances", 0, "number of valid rows to consider (default: all)")
	f.StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report instead of stdout")
	f.StringVar(&repFormat, "format", "", "report format: text | markdown | json (overrides config)")
	f.StringVar(&repColumn, "column", "", "column to summarize (overrides config)")
	f.StringVar(&repDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (overrides config)")
	f.StringVar(&repDecimal, "decimal", "", "decimal separator for numbers: '.' | 'comma'")
	f.StringVar(&repSheetName, "sheet-name", "", "XLSX: sheet name to read (default: first sheet)")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]
	flags := cmd.Flags()
	if flags.Changed("num_instances") && repNumInstances <= 0 {
		return fmt.Errorf("--num_instances must be a positive integer, got %d", repNumInstances)
	}

	c := effectiveConfig()
	if flags.Changed("format") {
		c.Format = repFormat
	}
	if flags.Changed("column") {
		c.Column = repColumn
	}
	if flags.Changed("delimiter") {
		c.Delimiter = repDelimiter
	}
	format := strings.ToLower(strings.TrimSpace(c.Format))
	switch format {
	case "", "text", "markdown", "md", "json":
	default:
		return fmt.Errorf("unsupported --format: %s (use text|markdown|json)", c.Format)
	}

	opt := analysis.DefaultOptions()
	if strings.TrimSpace(c.Column) != "" {
		opt.Column = strings.TrimSpace(c.Column)
	}
	opt.Limit = repNumInstances
	opt.Sheet = repSheetName
	delim, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return err
	}
	opt.Delimiter = delim
	switch strings.ToLower(strings.TrimSpace(repDecimal)) {
	case ",", "comma":
		opt.DecimalSeparator = ','
	case ".", "dot", "":
	default:
		return fmt.Errorf("unsupported --decimal: %s (use '.'|'comma')", repDecimal)
	}

	rep, series, err := analysis.Summarize(path, opt, c.ZeroSubstitute)
	if series != nil {
		logger.WithFields(logrus.Fields{
			"source":  path,
			"rows":    series.Rows,
			"missing": series.Missing,
			"kept":    len(series.Values),
			"limit":   opt.Limit,
		}).Debug("series loaded")
	}
	if err != nil {
		return err
	}

	var out string
	switch format {
	case "markdown", "md":
		out = rep.Markdown()
	case "json":
		b, err := rep.JSON(uuid.NewString())
		if err != nil {
			return err
		}
		out = string(b) + "\n"
	default:
		out = rep.Text()
	}

	if repOutputPath != "" {
		if err := utils.SafeWriteFile(repOutputPath, []byte(out)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", repOutputPath)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}
