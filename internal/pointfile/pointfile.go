// Package pointfile decodes and encodes point-set files. A point set is a
// YAML or JSON sequence of records, each record a sequence of 2 or 3
// scalars with a uniform dimension across the file. Scalars may be written
// as numbers or as strings using the lexical forms understood by
// vectortraits.ParseScalar, which is how non-finite values survive JSON.
package pointfile

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/internal/scalarlex"
	"github.com/eadf/vector-traits/internal/veciter"
	"github.com/eadf/vector-traits/vec"
)

// Format identifies an encoding for point-set files.
type Format uint8

const (
	// FormatYAML encodes as a YAML sequence of flow sequences.
	FormatYAML Format = iota
	// FormatJSON encodes as a JSON array of arrays.
	FormatJSON
)

// String returns a stable label for the format.
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatYAML, fmt.Errorf("unknown point file format %q", name)
}

// DetectFormat guesses the format from a file extension, defaulting to
// YAML. YAML is a superset of JSON, so decoding never depends on the
// guess; it only selects the output encoding.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Set is a decoded point set. Points of a 2D set are stored with z = 0.
type Set[S vectortraits.Scalar] struct {
	Dim    int
	Points []vec.Vec3[S]
}

// Len returns the number of points.
func (s Set[S]) Len() int { return len(s.Points) }

// Seq exposes the points as an iterator sequence.
func (s Set[S]) Seq() iter.Seq[vec.Vec3[S]] {
	return veciter.Slice(s.Points)
}

// Points2 projects the points onto the xy plane.
func (s Set[S]) Points2() []vec.Vec2[S] {
	out := make([]vec.Vec2[S], len(s.Points))
	for i, p := range s.Points {
		out[i] = p.To2D()
	}
	return out
}

// Decode reads a point set from r. Bad records are collected and reported
// together as a RecordErrorList; the set is only returned when every
// record decoded.
func Decode[S vectortraits.Scalar](r io.Reader, opts DecodeOptions) (Set[S], error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return Set[S]{}, fmt.Errorf("decode points: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Set[S]{}, fmt.Errorf("decode points: %w", err)
	}

	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Set[S]{}, fmt.Errorf("decode points: %w", err)
	}
	if len(raw) > resolved.maxPoints {
		return Set[S]{}, fmt.Errorf("decode points: %d records exceed the limit of %d", len(raw), resolved.maxPoints)
	}

	set := Set[S]{Dim: resolved.dim, Points: make([]vec.Vec3[S], 0, len(raw))}
	var errs RecordErrorList
	for i, record := range raw {
		p, dim, err := decodeRecord[S](record)
		if err != nil {
			errs = append(errs, RecordError{Index: i, Err: err})
			continue
		}
		if set.Dim == 0 {
			set.Dim = dim
		}
		if dim != set.Dim {
			errs = append(errs, RecordError{
				Index: i,
				Err:   fmt.Errorf("%dD point in a %dD set", dim, set.Dim),
			})
			continue
		}
		set.Points = append(set.Points, p)
	}
	if len(errs) > 0 {
		return Set[S]{}, errs
	}
	return set, nil
}

func decodeRecord[S vectortraits.Scalar](record any) (vec.Vec3[S], int, error) {
	seq, ok := record.([]any)
	if !ok {
		return vec.Vec3[S]{}, 0, fmt.Errorf("record is %T, want a sequence of scalars", record)
	}
	if len(seq) != 2 && len(seq) != 3 {
		return vec.Vec3[S]{}, 0, fmt.Errorf("record has %d components, want 2 or 3", len(seq))
	}
	var p vec.Vec3[S]
	for axis, elem := range seq {
		s, err := decodeScalar[S](elem)
		if err != nil {
			return vec.Vec3[S]{}, 0, fmt.Errorf("component %d: %w", axis, err)
		}
		p[axis] = s
	}
	return p, len(seq), nil
}

func decodeScalar[S vectortraits.Scalar](elem any) (S, error) {
	switch v := elem.(type) {
	case int:
		return S(v), nil
	case int64:
		return S(v), nil
	case uint64:
		// yaml.v3 resolves integers above math.MaxInt64 as uint64.
		return S(v), nil
	case float64:
		return S(v), nil
	case string:
		if perr := scalarlex.Validate([]byte(v)); perr != nil {
			return 0, fmt.Errorf("scalar %q: %w", v, perr)
		}
		return vectortraits.ParseScalar[S](v)
	}
	return 0, fmt.Errorf("component is %T, want a number or scalar string", elem)
}

// Encode writes a point set to w in the requested format. Non-finite
// components are written as scalar strings so the output stays readable
// by Decode in both formats.
func Encode[S vectortraits.Scalar](w io.Writer, set Set[S], format Format) error {
	records := make([]any, 0, len(set.Points))
	for _, p := range set.Points {
		record := make([]any, set.Dim)
		for axis := range set.Dim {
			record[axis] = encodeScalar(p.At(axis))
		}
		records = append(records, record)
	}

	if format == FormatJSON {
		return encodeJSON(w, records)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	return nil
}

func encodeJSON(w io.Writer, records []any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode points: %w", err)
	}
	return nil
}

func encodeScalar[S vectortraits.Scalar](v S) any {
	if !vectortraits.IsFinite(v) {
		switch {
		case v != v:
			return "nan"
		case v > 0:
			return "inf"
		default:
			return "-inf"
		}
	}
	return v
}
