// Package commands implements the vecstat command line interface.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eadf/vector-traits/internal/cli"
	"github.com/eadf/vector-traits/internal/constants"
	"github.com/eadf/vector-traits/internal/pointfile"
)

// App encapsulates the commands and the configuration of the vecstat
// application.
type App struct {
	cmd    *cobra.Command
	config appConfig
}

type appConfig struct {
	Verbose   int
	Precision int
	Format    string
	Dim       int
	MaxPoints int
}

// New registers the commands and returns a new App.
func New() (*App, error) {
	a := App{}
	a.cmd = &cobra.Command{
		Use:   constants.CmdName + " COMMAND",
		Short: "Compute statistics over point-set files",
		Long: `Decode 2D or 3D point sets from YAML or JSON files and compute
statistics or derived point sets over them.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetVerbosity(a.config.Verbose)
			if a.config.Precision != 32 && a.config.Precision != 64 {
				return fmt.Errorf("precision must be 32 or 64, got %d", a.config.Precision)
			}
			if a.config.Format != "" {
				if _, err := pointfile.ParseFormat(a.config.Format); err != nil {
					return err
				}
			}
			if err := a.decodeOptions().Validate(); err != nil {
				return err
			}
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			return nil
		},
	}

	a.cmd.PersistentFlags().CountVarP(&a.config.Verbose, "verbose", "v", "issue INFO (-v) and DEBUG (-vv) output")
	a.cmd.PersistentFlags().IntVarP(&a.config.Precision, "precision", "p", 64, "scalar precision in bits (32 or 64)")
	a.cmd.PersistentFlags().StringVarP(&a.config.Format, "format", "f", "", "output format (yaml or json, default follows the input file extension)")
	a.cmd.PersistentFlags().IntVar(&a.config.Dim, "dim", 0, "require this point dimension (2 or 3, default inferred)")
	a.cmd.PersistentFlags().IntVar(&a.config.MaxPoints, "max-points", 0, "record count limit (0 uses the default)")

	installStatsCmd(&a)
	installNormalizeCmd(&a)
	installVersionCmd(&a)

	return &a, nil
}

// Run executes the application.
func (a App) Run() error {
	return a.cmd.Execute()
}

// UsageError reports whether the failure was a usage error.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// SetArgs sets the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.cmd.SetArgs(args)
}

// SetOut sets the standard output writer, for tests.
func (a *App) SetOut(w io.Writer) {
	a.cmd.SetOut(w)
}

// SetErr sets the standard error writer, for tests.
func (a *App) SetErr(w io.Writer) {
	a.cmd.SetErr(w)
}

func (a *App) decodeOptions() pointfile.DecodeOptions {
	opts := pointfile.NewDecodeOptions()
	if a.config.Dim != 0 {
		opts = opts.WithDim(a.config.Dim)
	}
	if a.config.MaxPoints != 0 {
		opts = opts.WithMaxPoints(a.config.MaxPoints)
	}
	return opts
}

// outputFormat resolves the output format from the flag, falling back to
// the input file extension.
func (a *App) outputFormat(inputPath string) pointfile.Format {
	if a.config.Format != "" {
		f, err := pointfile.ParseFormat(a.config.Format)
		if err == nil {
			return f
		}
	}
	return pointfile.DetectFormat(inputPath)
}

// reportRecordErrors prints each record error before the summary error is
// returned, so the positions of all the bad records are visible at once.
func reportRecordErrors(cmd *cobra.Command, err error) {
	records, ok := pointfile.AsRecordErrors(err)
	if !ok {
		return
	}
	for _, r := range records {
		fmt.Fprintln(cmd.ErrOrStderr(), r.Error())
	}
}
