package data

import "fmt"

// AxisOption configures axis creation.
type AxisOption func(*Axis)

// WithLabel sets the axis's human-readable label.
func WithLabel(label string) AxisOption {
	return func(a *Axis) {
		a.label = label
	}
}

// ChannelOption configures channel creation.
type ChannelOption func(*Channel) error

// WithSigned marks the channel as holding signed data. Downstream plotting
// uses this to pick a diverging color map.
func WithSigned() ChannelOption {
	return func(c *Channel) error {
		c.signed = true
		return nil
	}
}

// WithNull sets the channel's null baseline.
func WithNull(null float64) ChannelOption {
	return func(c *Channel) error {
		c.null = null
		return nil
	}
}

// WithValues fills the channel from a flat row-major array.
// The length must match the channel shape.
func WithValues(values []float64) ChannelOption {
	return func(c *Channel) error {
		if len(values) != len(c.values) {
			return fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(values), c.shape)
		}
		copy(c.values, values)
		return nil
	}
}

// WithChannelAttr attaches an attribute during channel creation.
// Multiple WithChannelAttr options can be combined.
func WithChannelAttr(name string, value interface{}) ChannelOption {
	return func(c *Channel) error {
		return c.SetAttr(name, value)
	}
}
