package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/huy16/sheetpeek/internal/config"
	"github.com/huy16/sheetpeek/pkg/sheetpeek"
	"github.com/huy16/sheetpeek/pkg/sheetpeek/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the flags shared by every subcommand.
type app struct {
	cfg      *config.Config
	format   string
	engine   string
	encoding string
	comma    string
	logLevel string
	pretty   bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "sheetpeek",
		Short: "Preview sheets and rows of spreadsheet files",
		Long: `sheetpeek opens a workbook (.xlsx, .xlsm, .xls, .csv) and prints its sheet
names and a bounded preview of leading rows, optionally with descriptive
statistics. Errors reading a file or sheet are printed and do not change
the exit status.`,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.format, "format", "f", string(cfg.Format), "Output format: text, json, markdown, toon (env: SHEETPEEK_FORMAT)")
	flags.StringVar(&a.engine, "engine", string(cfg.Engine), "Backend for .xlsx files: auto, excelize, stream (env: SHEETPEEK_ENGINE)")
	flags.StringVar(&a.encoding, "encoding", cfg.Encoding, "Text encoding of CSV files (env: SHEETPEEK_ENCODING)")
	flags.StringVar(&a.comma, "comma", "", "CSV field delimiter (default: tab for .tsv, comma otherwise)")
	flags.StringVar(&a.logLevel, "log-level", cfg.LogLevel.String(), "Diagnostic log level on stderr (env: SHEETPEEK_LOG_LEVEL)")
	flags.BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		a.newSheetsCmd(),
		a.newPreviewCmd(),
		a.newDescribeCmd(),
		a.newRangeCmd(),
		a.newHeadersCmd(),
		a.newFindCmd(),
	)
	return rootCmd
}

// setup validates the shared flags and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", a.logLevel)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(cmd.ErrOrStderr())

	if _, err := output.ParseFormat(a.format); err != nil {
		return err
	}
	if _, err := sheetpeek.ParseEngine(a.engine); err != nil {
		return err
	}
	if _, err := a.commaRune(); err != nil {
		return err
	}

	// Flag errors above print usage; failures after this point are
	// reported on stdout by the command itself.
	cmd.SilenceUsage = true
	return nil
}

func (a *app) commaRune() (rune, error) {
	switch a.comma {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(a.comma) != 1 {
		return 0, fmt.Errorf("invalid delimiter: %q (must be a single character)", a.comma)
	}
	r, _ := utf8.DecodeRuneInString(a.comma)
	return r, nil
}

// addBoundFlags registers the row and column bounds shared by the
// preview commands.
func (a *app) addBoundFlags(flags *pflag.FlagSet, rows, maxCols *int, rowsUsage string) {
	flags.IntVarP(rows, "rows", "n", a.cfg.Rows, rowsUsage+" (env: SHEETPEEK_ROWS)")
	flags.IntVar(maxCols, "max-cols", a.cfg.MaxCols, "Maximum number of columns, 0 for all (env: SHEETPEEK_MAX_COLS)")
}

// options builds preview options from the shared flags.
func (a *app) options() sheetpeek.Options {
	opts := sheetpeek.DefaultOptions()
	opts.Rows = a.cfg.Rows
	opts.MaxCols = a.cfg.MaxCols
	opts.Engine, _ = sheetpeek.ParseEngine(a.engine)
	opts.Encoding = a.encoding
	opts.Comma, _ = a.commaRune()
	return opts
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	format, _ := output.ParseFormat(a.format)
	p := output.NewPrinter(cmd.OutOrStdout(), format)
	p.Pretty = a.pretty
	return p
}

// open opens the workbook, printing the failure when it cannot. A nil
// workbook with a nil error means the failure was already reported.
func (a *app) open(cmd *cobra.Command, path string, opts sheetpeek.Options) (*sheetpeek.Workbook, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	wb, err := sheetpeek.Open(path, opts)
	if err != nil {
		logrus.WithError(err).WithField("file", path).Debug("open failed")
		return nil, a.printer(cmd).FileError(err)
	}
	return wb, nil
}

// firstSheet returns the sheet named by flag, or the first sheet.
func firstSheet(wb *sheetpeek.Workbook, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	names := wb.SheetNames()
	if len(names) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	return names[0], nil
}

// sheetCause strips the SheetError wrapper, since the sheet name is printed
// next to the message.
func sheetCause(err error) error {
	var se *sheetpeek.SheetError
	if errors.As(err, &se) {
		return se.Err
	}
	return err
}
