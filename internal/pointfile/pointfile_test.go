package pointfile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/eadf/vector-traits/vec"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml", input: "yml", want: FormatYAML},
		{name: "json upper", input: "JSON", want: FormatJSON},
		{name: "unknown", input: "csv", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, FormatJSON, DetectFormat("points.json"))
	require.Equal(t, FormatJSON, DetectFormat("points.JSON"))
	require.Equal(t, FormatYAML, DetectFormat("points.yaml"))
	require.Equal(t, FormatYAML, DetectFormat("points"))
}

func TestDecodeYAML(t *testing.T) {
	input := `
- [1, 2]
- [3.5, -4]
- ["inf", "0.25"]
`
	set, err := Decode[float64](strings.NewReader(input), NewDecodeOptions())
	require.NoError(t, err)
	require.Equal(t, 2, set.Dim)
	require.Equal(t, 3, set.Len())

	want := []vec.Vec3[float64]{
		{1, 2, 0},
		{3.5, -4, 0},
		{math.Inf(1), 0.25, 0},
	}
	if diff := cmp.Diff(want, set.Points, cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	input := `[[1, 2, 3], [4, 5, 6.5]]`
	set, err := Decode[float32](strings.NewReader(input), NewDecodeOptions())
	require.NoError(t, err)
	require.Equal(t, 3, set.Dim)
	require.Equal(t, []vec.Vec3[float32]{{1, 2, 3}, {4, 5, 6.5}}, set.Points)
}

// Integers above math.MaxInt64 come out of the YAML decoder as uint64 and
// must still decode as scalars.
func TestDecodeLargeInteger(t *testing.T) {
	input := `[[18446744073709551615, 1]]`
	set, err := Decode[float64](strings.NewReader(input), NewDecodeOptions())
	require.NoError(t, err)
	require.Equal(t, []vec.Vec3[float64]{{float64(math.MaxUint64), 1, 0}}, set.Points)
}

func TestDecodeEmpty(t *testing.T) {
	set, err := Decode[float64](strings.NewReader("[]"), NewDecodeOptions())
	require.NoError(t, err)
	require.Equal(t, 0, set.Dim)
	require.Equal(t, 0, set.Len())
}

func TestDecodeRecordErrors(t *testing.T) {
	input := `
- [1, 2]
- [3]
- [4, 5, 6]
- ["what", 7]
`
	_, err := Decode[float64](strings.NewReader(input), NewDecodeOptions())
	require.Error(t, err)

	records, ok := AsRecordErrors(err)
	require.True(t, ok)
	require.Len(t, records, 3)
	require.Equal(t, 1, records[0].Index)
	require.Equal(t, 2, records[1].Index)
	require.ErrorContains(t, records[1], "3D point in a 2D set")
	require.Equal(t, 3, records[2].Index)
	require.ErrorContains(t, records[2], "component 0")
	require.ErrorContains(t, records[2], "bad character")

	require.Contains(t, err.Error(), "(and 2 more)")
}

func TestDecodeForcedDim(t *testing.T) {
	input := `[[1, 2], [3, 4]]`
	_, err := Decode[float64](strings.NewReader(input), NewDecodeOptions().WithDim(3))
	require.Error(t, err)
	require.ErrorContains(t, err, "2D point in a 3D set")

	set, err := Decode[float64](strings.NewReader(input), NewDecodeOptions().WithDim(2))
	require.NoError(t, err)
	require.Equal(t, 2, set.Dim)
}

func TestDecodeMaxPoints(t *testing.T) {
	input := `[[1, 2], [3, 4], [5, 6]]`
	_, err := Decode[float64](strings.NewReader(input), NewDecodeOptions().WithMaxPoints(2))
	require.Error(t, err)
	require.ErrorContains(t, err, "exceed the limit")

	_, err = Decode[float64](strings.NewReader(input), NewDecodeOptions().WithMaxPoints(3))
	require.NoError(t, err)
}

func TestDecodeNotASequence(t *testing.T) {
	_, err := Decode[float64](strings.NewReader(`{"a": 1}`), NewDecodeOptions())
	require.Error(t, err)

	_, err = Decode[float64](strings.NewReader(`[{"a": 1}]`), NewDecodeOptions())
	require.Error(t, err)
	records, ok := AsRecordErrors(err)
	require.True(t, ok)
	require.Len(t, records, 1)
	require.ErrorContains(t, records[0], "want a sequence")
}

func TestDecodeOptionsValidate(t *testing.T) {
	require.NoError(t, NewDecodeOptions().Validate())
	require.NoError(t, NewDecodeOptions().WithMaxPoints(0).Validate())
	require.NoError(t, NewDecodeOptions().WithDim(3).Validate())
	require.Error(t, NewDecodeOptions().WithMaxPoints(-1).Validate())
	require.Error(t, NewDecodeOptions().WithDim(4).Validate())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	set := Set[float64]{
		Dim: 3,
		Points: []vec.Vec3[float64]{
			{1.5, -2, 0.25},
			{math.Inf(1), math.Inf(-1), math.NaN()},
		},
	}

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, set, format))

			got, err := Decode[float64](&buf, NewDecodeOptions())
			require.NoError(t, err)
			require.Equal(t, set.Dim, got.Dim)
			if diff := cmp.Diff(set.Points, got.Points, cmpopts.EquateNaNs()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode2D(t *testing.T) {
	set := Set[float32]{
		Dim:    2,
		Points: []vec.Vec3[float32]{{1, 2, 0}, {3, 4, 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, set, FormatJSON))
	require.JSONEq(t, `[[1, 2], [3, 4]]`, buf.String())
}

func TestPoints2(t *testing.T) {
	set := Set[float64]{
		Dim:    2,
		Points: []vec.Vec3[float64]{{1, 2, 0}, {3, 4, 0}},
	}
	require.Equal(t, []vec.Vec2[float64]{{1, 2}, {3, 4}}, set.Points2())
}
