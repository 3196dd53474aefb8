package pointfile

import "fmt"

const defaultMaxPoints = 1 << 20

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(fallback int) int {
	if !o.set {
		return fallback
	}
	return o.value
}

// DecodeOptions configures point-set decoding.
type DecodeOptions struct {
	maxPoints intOption
	dim       intOption
}

type resolvedDecodeOptions struct {
	maxPoints int
	dim       int
}

// NewDecodeOptions returns a default, valid decode options value.
func NewDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// WithMaxPoints sets the record count limit (0 uses the default).
func (o DecodeOptions) WithMaxPoints(value int) DecodeOptions {
	o.maxPoints = intOption{value: value, set: true}
	return o
}

// WithDim forces the point dimension to 2 or 3 instead of inferring it
// from the first record (0 infers).
func (o DecodeOptions) WithDim(value int) DecodeOptions {
	o.dim = intOption{value: value, set: true}
	return o
}

// Validate validates decode options values.
func (o DecodeOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o DecodeOptions) withDefaults() (resolvedDecodeOptions, error) {
	maxPoints := o.maxPoints.resolved(defaultMaxPoints)
	if maxPoints == 0 {
		maxPoints = defaultMaxPoints
	}
	if maxPoints < 0 {
		return resolvedDecodeOptions{}, fmt.Errorf("max points must not be negative, got %d", maxPoints)
	}
	dim := o.dim.resolved(0)
	if dim != 0 && dim != 2 && dim != 3 {
		return resolvedDecodeOptions{}, fmt.Errorf("dimension must be 2 or 3, got %d", dim)
	}
	return resolvedDecodeOptions{maxPoints: maxPoints, dim: dim}, nil
}
