package scalarlex

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"
)

func TestQuickParseRoundTrip64(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
		lexical := strconv.FormatFloat(v, 'g', -1, 64)
		got, class, perr := Parse([]byte(lexical), 64)
		return perr == nil && class == Finite && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickParseRoundTrip32(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v float32) bool {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
		lexical := strconv.FormatFloat(f, 'g', -1, 32)
		got, class, perr := Parse([]byte(lexical), 32)
		return perr == nil && class == Finite && float32(got) == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickValidateAgreesWithParse(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(s string) bool {
		_, _, perr := Parse([]byte(s), 64)
		verr := Validate([]byte(s))
		return (perr == nil) == (verr == nil)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
