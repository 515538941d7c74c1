// Package cli wires the fin command line onto the fileinspector package.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jstrait/fileinspector"
	"github.com/jstrait/fileinspector/internal/byterange"
	"github.com/jstrait/fileinspector/internal/config"
	"github.com/jstrait/fileinspector/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flags holds the raw command line values. Settings that also live in the
// config file only override it when the flag was given explicitly.
type flags struct {
	verbosity  int
	configPath string
	bytes      string
	output     string
	border     string
	pageSize   int
	indent     string
}

// NewRootCmd creates the fin command tree.
func NewRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "fin [-b start:end] <file> [formats]",
		Short: "Display the bytes of a file as a multi-format table",
		Long: `fin shows a byte range of a file as a table in which every column
reads the same bytes under a different format: characters, signed and
unsigned integers, floats, bit strings and hex.

Formats are given as a string of codes, e.g. "aCsH". Run "fin codes" for
the list of supported codes.`,
		Version: Version,
		Args:    cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(f.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, &f, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&f.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/fin/config.yaml)")
	pf.StringVarP(&f.output, "output", "o", "", "output format: classic, table, markdown, csv, tsv, json, jsonl, yaml, html or go-template=<tmpl>")
	pf.StringVar(&f.border, "border", "", "table border: rounded, none, ascii, heavy or double")
	pf.IntVar(&f.pageSize, "page-size", 0, "repeat the table header every n rows")
	pf.StringVar(&f.indent, "indent", "", "indentation for json and yaml output")

	rootCmd.Flags().StringVarP(&f.bytes, "bytes", "b", "", "byte range to display, as start:end (inclusive)")

	rootCmd.AddCommand(newCodesCmd(&f))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// settings merges the config file with explicitly given flags.
func (f *flags) settings(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("border") {
		cfg.Border = f.border
	}
	if fs.Changed("page-size") {
		cfg.PageSize = f.pageSize
	}
	return cfg, nil
}

// writeOptions turns the settings into [fileinspector.Write] options.
func (f *flags) writeOptions(cfg *config.Config, out io.Writer) ([]fileinspector.Option, error) {
	border, err := fileinspector.ParseBorder(cfg.Border)
	if err != nil {
		return nil, err
	}
	opts := []fileinspector.Option{
		fileinspector.WithBorder(border),
		fileinspector.WithPageSize(cfg.PageSize),
	}
	if f.indent != "" {
		opts = append(opts, fileinspector.WithIndent(f.indent))
	}
	if isTerminal(out) {
		opts = append(opts, fileinspector.WithHeaderStyle(styleHeader))
	}
	return opts, nil
}

func runDump(cmd *cobra.Command, f *flags, args []string) error {
	logger := logging.GetLogger("dump")
	done := logging.LogOperationStart(logger, "dump")
	defer done()

	cfg, err := f.settings(cmd.Flags())
	if err != nil {
		return err
	}

	spec := cfg.Formats
	if len(args) > 1 {
		spec = args[1]
	}
	layout, err := fileinspector.Compile(spec)
	if err != nil {
		return err
	}
	format, err := fileinspector.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	r, err := byterange.Parse(f.bytes, len(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if r.Clamped {
		logger.Warn().Int("end", r.End).Msg("Ending byte is greater than length of file")
	}
	logger.Info().
		Str("file", path).
		Str("formats", layout.Spec()).
		Int("stride", layout.RowStride()).
		Int("start", r.Start).
		Int("end", r.End).
		Msg("Dumping byte range")

	dump := fileinspector.Dump{Layout: layout, Data: data, Start: r.Start, End: r.End}
	if _, err := dump.Rows(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts, err := f.writeOptions(cfg, out)
	if err != nil {
		return err
	}
	if format == fileinspector.Classic {
		if _, err := fmt.Fprintf(out, "Start Byte: %d, End Byte: %d\n", r.Start, r.End); err != nil {
			return err
		}
	}
	return fileinspector.Write(out, format, dump, opts...)
}
