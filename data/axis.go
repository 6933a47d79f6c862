package data

import (
	"errors"
	"fmt"

	"github.com/rpm4/WrightTools/units"
)

// Axis is an ordered sequence of sample points along one dimension, with a
// physical unit and an optional human-readable label. Its points are fixed
// once attached; Convert produces a new axis instead of mutating.
type Axis struct {
	object
	points []float64
	unit   string
	label  string
}

func newAxis(name string, values []float64, unit string) *Axis {
	points := make([]float64, len(values))
	copy(points, values)
	return &Axis{
		object: object{name: name},
		points: points,
		unit:   unit,
	}
}

// Len returns the number of sample points.
func (a *Axis) Len() int { return len(a.points) }

// Units returns the axis unit symbol.
func (a *Axis) Units() string { return a.unit }

// Label returns the human-readable label, falling back to "name (unit)".
func (a *Axis) Label() string {
	if a.label != "" {
		return a.label
	}
	if a.unit == "" {
		return a.name
	}
	return fmt.Sprintf("%s (%s)", a.name, a.unit)
}

// RawLabel returns the stored label without the Label fallback, empty if
// none was set.
func (a *Axis) RawLabel() string { return a.label }

// SetLabel sets the human-readable label.
func (a *Axis) SetLabel(label string) { a.label = label }

// Values returns a copy of the sample points.
func (a *Axis) Values() []float64 {
	out := make([]float64, len(a.points))
	copy(out, a.points)
	return out
}

// At returns the i-th sample point.
func (a *Axis) At(i int) float64 { return a.points[i] }

// Min returns the smallest sample point.
func (a *Axis) Min() float64 {
	min := a.points[0]
	for _, v := range a.points[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample point.
func (a *Axis) Max() float64 {
	max := a.points[0]
	for _, v := range a.points[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Convert returns a new detached axis with the points rescaled to the
// target unit. The original axis is unchanged.
// Fails with ErrIncompatibleUnit if the target belongs to another unit
// category.
func (a *Axis) Convert(target string) (*Axis, error) {
	converted, err := units.ConvertSlice(a.points, a.unit, target)
	if err != nil {
		if errors.Is(err, units.ErrIncompatible) {
			return nil, fmt.Errorf("converting axis %q: %w: %s -> %s", a.name, ErrIncompatibleUnit, a.unit, target)
		}
		return nil, fmt.Errorf("converting axis %q: %w", a.name, err)
	}
	out := &Axis{
		object: object{name: a.name, attrs: copyAttrs(a.attrs)},
		points: converted,
		unit:   target,
		label:  a.label,
	}
	return out, nil
}

func copyAttrs(attrs map[string]interface{}) map[string]interface{} {
	if attrs == nil {
		return nil
	}
	out := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
