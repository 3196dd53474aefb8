package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eadf/vector-traits/cmd/vecstat/commands"
)

func TestStats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args   []string
		file   string
		data   string
		noFile bool

		wantErr      bool
		wantUsageErr bool
		wantLines    []string
		wantErrOut   []string
	}{
		"Square 2D": {
			args: []string{"stats"},
			file: "square.yaml",
			data: "- [0, 0]\n- [2, 0]\n- [2, 2]\n- [0, 2]\n",
			wantLines: []string{
				"points: 4",
				"dim: 2",
				"centroid: [1, 1]",
				"bounds: [0, 0] .. [2, 2]",
				"path length: 6",
				"shortest segment: 2",
				"longest segment: 2",
			},
		},
		"Segment 3D JSON": {
			args: []string{"stats"},
			file: "segment.json",
			data: "[[0, 0, 0], [2, 3, 6]]",
			wantLines: []string{
				"points: 2",
				"dim: 3",
				"centroid: [1, 1.5, 3]",
				"bounds: [0, 0, 0] .. [2, 3, 6]",
				"path length: 7",
				"shortest segment: 7",
				"longest segment: 7",
			},
		},
		"Empty set": {
			args:      []string{"stats"},
			file:      "empty.yaml",
			data:      "[]",
			wantLines: []string{"points: 0"},
		},
		"Single point": {
			args: []string{"stats"},
			file: "one.yaml",
			data: "- [1, 2, 3]\n",
			wantLines: []string{
				"points: 1",
				"dim: 3",
				"centroid: [1, 2, 3]",
				"path length: 0",
			},
		},
		"Reduced precision": {
			args: []string{"stats", "--precision", "32"},
			file: "square.yaml",
			data: "- [0, 0]\n- [2, 0]\n",
			wantLines: []string{
				"points: 2",
				"path length: 2",
			},
		},
		"Forced dimension": {
			args: []string{"stats", "--dim", "2"},
			file: "square.yaml",
			data: "- [0, 0]\n- [2, 0]\n",
			wantLines: []string{"dim: 2"},
		},

		// Errors
		"Errors on bad records": {
			args:       []string{"stats"},
			file:       "bad.yaml",
			data:       "- [0, 0]\n- [1]\n- [2, 2, 2]\n",
			wantErr:    true,
			wantErrOut: []string{"record 1:", "record 2:"},
		},
		"Errors on dimension mismatch": {
			args:       []string{"stats", "--dim", "3"},
			file:       "square.yaml",
			data:       "- [0, 0]\n",
			wantErr:    true,
			wantErrOut: []string{"record 0:"},
		},
		"Errors on record limit": {
			args:    []string{"stats", "--max-points", "1"},
			file:    "square.yaml",
			data:    "- [0, 0]\n- [2, 0]\n",
			wantErr: true,
		},
		"Errors on missing file": {
			args:    []string{"stats"},
			file:    "",
			wantErr: true,
		},

		// Usage errors
		"Usage errors on bad precision": {
			args:         []string{"stats", "--precision", "31"},
			file:         "square.yaml",
			data:         "- [0, 0]\n",
			wantErr:      true,
			wantUsageErr: true,
		},
		"Usage errors on bad format": {
			args:         []string{"stats", "--format", "csv"},
			file:         "square.yaml",
			data:         "- [0, 0]\n",
			wantErr:      true,
			wantUsageErr: true,
		},
		"Usage errors on bad dimension": {
			args:         []string{"stats", "--dim", "4"},
			file:         "square.yaml",
			data:         "- [0, 0]\n",
			wantErr:      true,
			wantUsageErr: true,
		},
		"Usage errors on bad flag": {
			args:         []string{"stats", "--unknown"},
			file:         "square.yaml",
			data:         "- [0, 0]\n",
			wantErr:      true,
			wantUsageErr: true,
		},
		"Usage errors on missing argument": {
			args:         []string{"stats"},
			noFile:       true,
			wantErr:      true,
			wantUsageErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			args := tc.args
			switch {
			case tc.noFile:
			case tc.file == "":
				args = append(args, filepath.Join(t.TempDir(), "missing.yaml"))
			default:
				args = append(args, writePointFile(t, tc.file, tc.data))
			}

			app, stdout, stderr := newAppForTests(t, args)

			err := app.Run()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			if tc.wantUsageErr {
				assert.True(t, app.UsageError())
			} else {
				assert.False(t, app.UsageError())
			}

			for _, line := range tc.wantLines {
				assert.Contains(t, stdout.String(), line+"\n")
			}
			for _, line := range tc.wantErrOut {
				assert.Contains(t, stderr.String(), line)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		file string
		data string

		wantJSON string
	}{
		"JSON output follows extension": {
			args:     []string{"normalize"},
			file:     "points.json",
			data:     "[[3, 4], [0, 0]]",
			wantJSON: `[[0.6, 0.8]]`,
		},
		"Format flag overrides extension": {
			args:     []string{"normalize", "--format", "json"},
			file:     "points.yaml",
			data:     "- [0, 7, 0]\n",
			wantJSON: `[[0, 1, 0]]`,
		},
		"Axis points 3D": {
			args:     []string{"normalize", "-f", "json"},
			file:     "axes.yaml",
			data:     "- [5, 0, 0]\n- [0, 0, -5]\n",
			wantJSON: `[[1, 0, 0], [0, 0, -1]]`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writePointFile(t, tc.file, tc.data)
			app, stdout, _ := newAppForTests(t, append(tc.args, path))

			require.NoError(t, app.Run())
			assert.False(t, app.UsageError())
			require.JSONEq(t, tc.wantJSON, stdout.String())
		})
	}
}

func TestNormalizeYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	path := writePointFile(t, "points.yaml", "- [3, 4]\n")
	app, stdout, _ := newAppForTests(t, []string{"normalize", path})

	require.NoError(t, app.Run())
	assert.Contains(t, stdout.String(), "0.6")
	assert.Contains(t, stdout.String(), "0.8")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	app, stdout, _ := newAppForTests(t, []string{"version"})
	require.NoError(t, app.Run())
	assert.Contains(t, stdout.String(), "vecstat")
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	app, _, _ := newAppForTests(t, []string{"frobnicate"})
	require.Error(t, app.Run())
}

func newAppForTests(t *testing.T, args []string) (a *commands.App, stdout, stderr *bytes.Buffer) {
	t.Helper()

	a, err := commands.New()
	require.NoError(t, err, "Setup: could not create app")

	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	a.SetArgs(args)
	a.SetOut(stdout)
	a.SetErr(stderr)
	return a, stdout, stderr
}

func writePointFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600), "Setup: could not write point file")
	return path
}
