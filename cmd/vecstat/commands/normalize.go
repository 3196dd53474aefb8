package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/internal/pointfile"
	"github.com/eadf/vector-traits/internal/veciter"
	"github.com/eadf/vector-traits/vec"
)

func installNormalizeCmd(app *App) {
	normalizeCmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Normalize every point of a point set",
		Long: `Decode a point set, scale every point to unit length and write the
result to standard output. Zero-length points cannot be normalized and are
dropped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running normalize command", "file", args[0], "precision", app.config.Precision)
			return app.normalizeRun(cmd, args[0])
		},
	}

	app.cmd.AddCommand(normalizeCmd)
}

func (a *App) normalizeRun(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open point file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close point file", "path", path, "error", closeErr)
		}
	}()

	format := a.outputFormat(path)
	if a.config.Precision == 32 {
		return runNormalize[float32](cmd, f, a.decodeOptions(), format)
	}
	return runNormalize[float64](cmd, f, a.decodeOptions(), format)
}

func runNormalize[S vectortraits.Scalar](cmd *cobra.Command, r io.Reader, opts pointfile.DecodeOptions, format pointfile.Format) error {
	set, err := pointfile.Decode[S](r, opts)
	if err != nil {
		reportRecordErrors(cmd, err)
		return err
	}

	normalizable := veciter.Filter(set.Seq(), func(p vec.Vec3[S]) bool {
		_, ok := p.SafeNormalize()
		return ok
	})
	normalized := veciter.Collect(veciter.Map(normalizable, func(p vec.Vec3[S]) vec.Vec3[S] {
		n, _ := p.SafeNormalize()
		return n
	}))

	skipped := veciter.Count(veciter.Filter(set.Seq(), func(p vec.Vec3[S]) bool {
		_, ok := p.SafeNormalize()
		return !ok
	}))
	if skipped > 0 {
		slog.Warn("Dropped points that cannot be normalized", "count", skipped)
	}

	out := pointfile.Set[S]{Dim: set.Dim, Points: normalized}
	if err := pointfile.Encode(cmd.OutOrStdout(), out, format); err != nil {
		return err
	}
	return nil
}
