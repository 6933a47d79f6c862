package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/rpm4/WrightTools/units"
)

// Channel is a dense N-dimensional signal array stored flat in row-major
// order. It carries a unit, a signed flag (hint for diverging color maps
// downstream) and a null baseline.
type Channel struct {
	object
	values []float64
	shape  []int
	unit   string
	signed bool
	null   float64
}

func newChannel(name string, shape []int, unit string, opts ...ChannelOption) (*Channel, error) {
	s := make([]int, len(shape))
	copy(s, shape)
	ch := &Channel{
		object: object{name: name},
		shape:  s,
		values: make([]float64, sizeOf(s)),
	}
	ch.unit = unit
	for _, opt := range opts {
		if err := opt(ch); err != nil {
			return nil, err
		}
	}
	return ch, nil
}

func sizeOf(shape []int) int {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return size
}

// Shape returns a copy of the channel's dimensions.
func (c *Channel) Shape() []int {
	out := make([]int, len(c.shape))
	copy(out, c.shape)
	return out
}

// NDim returns the number of dimensions.
func (c *Channel) NDim() int { return len(c.shape) }

// Len returns the total number of elements.
func (c *Channel) Len() int { return len(c.values) }

// Units returns the channel unit symbol.
func (c *Channel) Units() string { return c.unit }

// Signed reports whether the channel holds signed data.
func (c *Channel) Signed() bool { return c.signed }

// Null returns the baseline value, zero unless set at creation.
func (c *Channel) Null() float64 { return c.null }

// Values returns a copy of the flat row-major element array.
func (c *Channel) Values() []float64 {
	out := make([]float64, len(c.values))
	copy(out, c.values)
	return out
}

// SetValues replaces the element array. The length must match the shape.
func (c *Channel) SetValues(values []float64) error {
	if len(values) != len(c.values) {
		return fmt.Errorf("channel %q: %w: %d values for shape %v", c.name, ErrShapeMismatch, len(values), c.shape)
	}
	copy(c.values, values)
	return nil
}

// flatIndex converts an N-dimensional index into a flat offset.
func (c *Channel) flatIndex(idx []int) (int, error) {
	if len(idx) != len(c.shape) {
		return 0, fmt.Errorf("channel %q: %w: %d indices for %d dimensions", c.name, ErrShapeMismatch, len(idx), len(c.shape))
	}
	flat := 0
	for i, j := range idx {
		if j < 0 || j >= c.shape[i] {
			return 0, fmt.Errorf("channel %q: index %d out of range for dimension %d (size %d)", c.name, j, i, c.shape[i])
		}
		flat = flat*c.shape[i] + j
	}
	return flat, nil
}

// At returns the element at the given N-dimensional index.
func (c *Channel) At(idx ...int) (float64, error) {
	flat, err := c.flatIndex(idx)
	if err != nil {
		return 0, err
	}
	return c.values[flat], nil
}

// SetAt stores the element at the given N-dimensional index.
func (c *Channel) SetAt(v float64, idx ...int) error {
	flat, err := c.flatIndex(idx)
	if err != nil {
		return err
	}
	c.values[flat] = v
	return nil
}

// Min returns the smallest finite element, or NaN if there is none.
func (c *Channel) Min() float64 {
	min := math.NaN()
	for _, v := range c.values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest finite element, or NaN if there is none.
func (c *Channel) Max() float64 {
	max := math.NaN()
	for _, v := range c.values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Mag returns the channel's major extent: the largest excursion from the
// null baseline.
func (c *Channel) Mag() float64 {
	lo := math.Abs(c.Min() - c.null)
	hi := math.Abs(c.Max() - c.null)
	if math.IsNaN(lo) {
		return hi
	}
	if lo > hi {
		return lo
	}
	return hi
}

// Clip replaces elements outside [lo, hi] with NaN, in place.
func (c *Channel) Clip(lo, hi float64) {
	for i, v := range c.values {
		if v < lo || v > hi {
			c.values[i] = math.NaN()
		}
	}
}

// Normalize rescales the channel in place so its major extent is 1.
// A channel with zero extent is left unchanged.
func (c *Channel) Normalize() {
	mag := c.Mag()
	if mag == 0 || math.IsNaN(mag) {
		return
	}
	vecmath.ScaleBlock(c.values, c.values, 1/mag)
	c.null /= mag
}

// Convert returns a new detached channel with elements and baseline
// rescaled to the target unit. The original channel is unchanged.
// Fails with ErrIncompatibleUnit if the target belongs to another unit
// category.
func (c *Channel) Convert(target string) (*Channel, error) {
	converted, err := units.ConvertSlice(c.values, c.unit, target)
	if err != nil {
		if errors.Is(err, units.ErrIncompatible) {
			return nil, fmt.Errorf("converting channel %q: %w: %s -> %s", c.name, ErrIncompatibleUnit, c.unit, target)
		}
		return nil, fmt.Errorf("converting channel %q: %w", c.name, err)
	}
	null, err := units.Convert(c.null, c.unit, target)
	if err != nil {
		return nil, fmt.Errorf("converting channel %q baseline: %w", c.name, err)
	}
	out := &Channel{
		object: object{name: c.name, attrs: copyAttrs(c.attrs)},
		values: converted,
		shape:  c.Shape(),
		unit:   target,
		signed: c.signed,
		null:   null,
	}
	return out, nil
}
