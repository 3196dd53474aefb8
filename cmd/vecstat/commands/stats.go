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

func installStatsCmd(app *App) {
	statsCmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Summarize a point set",
		Long: `Decode a point set and print its count, centroid, bounding box,
polyline length and segment extremes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Running stats command", "file", args[0], "precision", app.config.Precision)
			return app.statsRun(cmd, args[0])
		},
	}

	app.cmd.AddCommand(statsCmd)
}

func (a *App) statsRun(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open point file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close point file", "path", path, "error", closeErr)
		}
	}()

	if a.config.Precision == 32 {
		return runStats[float32](cmd, f, a.decodeOptions())
	}
	return runStats[float64](cmd, f, a.decodeOptions())
}

func runStats[S vectortraits.Scalar](cmd *cobra.Command, r io.Reader, opts pointfile.DecodeOptions) error {
	set, err := pointfile.Decode[S](r, opts)
	if err != nil {
		reportRecordErrors(cmd, err)
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "points: %d\n", set.Len())
	if set.Len() == 0 {
		return nil
	}
	fmt.Fprintf(w, "dim: %d\n", set.Dim)

	if set.Dim == 2 {
		points := set.Points2()
		centroid, _ := vectortraits.Centroid2[vec.Vec2[S], S](points)
		lo, hi, _ := vectortraits.Bounds2[vec.Vec2[S], S](points)
		fmt.Fprintf(w, "centroid: [%g, %g]\n", centroid.X(), centroid.Y())
		fmt.Fprintf(w, "bounds: [%g, %g] .. [%g, %g]\n", lo.X(), lo.Y(), hi.X(), hi.Y())
	} else {
		centroid, _ := vectortraits.Centroid3[vec.Vec3[S], S](set.Points)
		lo, hi, _ := vectortraits.Bounds3[vec.Vec3[S], S](set.Points)
		fmt.Fprintf(w, "centroid: [%g, %g, %g]\n", centroid.X(), centroid.Y(), centroid.Z())
		fmt.Fprintf(w, "bounds: [%g, %g, %g] .. [%g, %g, %g]\n",
			lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
	}

	fmt.Fprintf(w, "path length: %g\n", vectortraits.PathLength3[vec.Vec3[S], S](set.Points))
	if shortest, longest, ok := segmentExtremes(set); ok {
		fmt.Fprintf(w, "shortest segment: %g\n", shortest)
		fmt.Fprintf(w, "longest segment: %g\n", longest)
	}
	return nil
}

// segmentExtremes returns the lengths of the shortest and longest polyline
// segments. ok is false when the set has fewer than two points.
func segmentExtremes[S vectortraits.Scalar](set pointfile.Set[S]) (shortest, longest S, ok bool) {
	for a, b := range veciter.Pairs(set.Seq()) {
		d := a.Distance(b)
		if !ok {
			shortest, longest, ok = d, d, true
			continue
		}
		shortest = min(shortest, d)
		longest = max(longest, d)
	}
	return shortest, longest, ok
}
