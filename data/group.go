package data

import (
	"fmt"

	"github.com/rpm4/WrightTools/units"
)

// Group is a named node owning axes, channels and nested groups, plus
// arbitrary scalar metadata. Channels in a group share the coordinate
// system defined by the group's axes.
type Group struct {
	object
	children map[string]Node
	order    []string // creation order
}

func newGroup(name string, parent *Group) *Group {
	return &Group{
		object:   object{name: name, parent: parent},
		children: make(map[string]Node),
	}
}

// NewGroup creates a detached root group.
func NewGroup(name string) (*Group, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return newGroup(name, nil), nil
}

// attach registers a child under this group. The caller has already
// validated the name and checked for collisions.
func (g *Group) attach(n Node) {
	g.children[n.Name()] = n
	g.order = append(g.order, n.Name())
	n.base().parent = g
}

// checkNewChild validates a prospective child name.
func (g *Group) checkNewChild(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if _, ok := g.children[name]; ok {
		return fmt.Errorf("%w: %q under %q", ErrNameCollision, name, g.Path())
	}
	return nil
}

// CreateGroup creates a nested group.
// Fails with ErrNameCollision if the name is taken.
func (g *Group) CreateGroup(name string) (*Group, error) {
	if err := g.checkNewChild(name); err != nil {
		return nil, err
	}
	child := newGroup(name, nil)
	g.attach(child)
	return child, nil
}

// CreateAxis creates a coordinate axis from a copy of values.
// The unit must be recognized. If the group already holds channels, the
// extended axis list must keep every channel's shape consistent; otherwise
// the creation fails with ErrShapeMismatch and the group is unchanged.
func (g *Group) CreateAxis(name string, values []float64, unit string, opts ...AxisOption) (*Axis, error) {
	if err := g.checkNewChild(name); err != nil {
		return nil, err
	}
	if !units.Valid(unit) {
		return nil, fmt.Errorf("creating axis %q: %w: %q", name, units.ErrUnknownUnit, unit)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("creating axis %q: %w: no points", name, ErrShapeMismatch)
	}

	axis := newAxis(name, values, unit)
	for _, opt := range opts {
		opt(axis)
	}

	// Adding an axis extends the group's coordinate system; existing
	// channels must still match it.
	newAxes := append(g.Axes(), axis)
	for _, ch := range g.Channels() {
		if err := shapeConsistent(ch.Shape(), newAxes); err != nil {
			return nil, fmt.Errorf("creating axis %q: channel %q: %w", name, ch.Name(), err)
		}
	}

	g.attach(axis)
	return axis, nil
}

// CreateChannel creates a dense N-dimensional channel of the given shape,
// zero-filled unless WithValues is supplied.
// The shape must be consistent with the group's axes: one dimension per
// axis, each equal to the axis length or 1.
func (g *Group) CreateChannel(name string, shape []int, unit string, opts ...ChannelOption) (*Channel, error) {
	if err := g.checkNewChild(name); err != nil {
		return nil, err
	}
	if !units.Valid(unit) {
		return nil, fmt.Errorf("creating channel %q: %w: %q", name, units.ErrUnknownUnit, unit)
	}
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("creating channel %q: %w: dimension %d", name, ErrShapeMismatch, dim)
		}
	}
	if axes := g.Axes(); len(axes) > 0 {
		if err := shapeConsistent(shape, axes); err != nil {
			return nil, fmt.Errorf("creating channel %q: %w", name, err)
		}
	}

	ch, err := newChannel(name, shape, unit, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating channel %q: %w", name, err)
	}

	g.attach(ch)
	return ch, nil
}

// shapeConsistent checks a channel shape against an ordered axis list.
// Each dimension must equal the matching axis length, or 1 to broadcast.
func shapeConsistent(shape []int, axes []*Axis) error {
	if len(shape) != len(axes) {
		return fmt.Errorf("%w: %d dimensions for %d axes", ErrShapeMismatch, len(shape), len(axes))
	}
	for i, axis := range axes {
		if shape[i] != axis.Len() && shape[i] != 1 {
			return fmt.Errorf("%w: dimension %d is %d, axis %q has %d points",
				ErrShapeMismatch, i, shape[i], axis.Name(), axis.Len())
		}
	}
	return nil
}

// Get returns a child by name.
func (g *Group) Get(name string) (Node, error) {
	child, ok := g.children[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q under %q", ErrNotFound, name, g.Path())
	}
	return child, nil
}

// GetGroup returns a child group by name.
func (g *Group) GetGroup(name string) (*Group, error) {
	child, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	grp, ok := child.(*Group)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotGroup, name)
	}
	return grp, nil
}

// GetAxis returns a child axis by name.
func (g *Group) GetAxis(name string) (*Axis, error) {
	child, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	axis, ok := child.(*Axis)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAxis, name)
	}
	return axis, nil
}

// GetChannel returns a child channel by name.
func (g *Group) GetChannel(name string) (*Channel, error) {
	child, err := g.Get(name)
	if err != nil {
		return nil, err
	}
	ch, ok := child.(*Channel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotChannel, name)
	}
	return ch, nil
}

// Remove detaches the named child and recursively releases its subtree.
// Removing an absent name fails with ErrNotFound.
func (g *Group) Remove(name string) error {
	child, ok := g.children[name]
	if !ok {
		return fmt.Errorf("%w: %q under %q", ErrNotFound, name, g.Path())
	}
	delete(g.children, name)
	g.order = removeString(g.order, name)
	release(child)
	return nil
}

// release detaches a node and recursively empties group subtrees, so stale
// references cannot reach removed descendants.
func release(n Node) {
	n.base().parent = nil
	if grp, ok := n.(*Group); ok {
		for _, name := range grp.order {
			release(grp.children[name])
		}
		grp.children = make(map[string]Node)
		grp.order = nil
	}
}

// Rename gives an existing child a new name.
// Fails with ErrNotFound if old is absent and ErrNameCollision if new is
// already taken by a sibling.
func (g *Group) Rename(old, new string) error {
	child, ok := g.children[old]
	if !ok {
		return fmt.Errorf("%w: %q under %q", ErrNotFound, old, g.Path())
	}
	if old == new {
		return nil
	}
	if err := g.checkNewChild(new); err != nil {
		return err
	}
	delete(g.children, old)
	g.children[new] = child
	child.base().name = new
	for i, name := range g.order {
		if name == old {
			g.order[i] = new
			break
		}
	}
	return nil
}

// ConvertUnit converts the named axis or channel to the target unit in
// place, replacing the child with the rescaled entity.
// Fails with ErrIncompatibleUnit if the target belongs to another category.
func (g *Group) ConvertUnit(name, target string) error {
	child, ok := g.children[name]
	if !ok {
		return fmt.Errorf("%w: %q under %q", ErrNotFound, name, g.Path())
	}

	var converted Node
	var err error
	switch c := child.(type) {
	case *Axis:
		converted, err = c.Convert(target)
	case *Channel:
		converted, err = c.Convert(target)
	default:
		return fmt.Errorf("converting %q: a group has no unit", name)
	}
	if err != nil {
		return err
	}

	g.children[name] = converted
	converted.base().parent = g
	child.base().parent = nil
	return nil
}

// Members returns the names of all children in creation order.
func (g *Group) Members() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// NumObjects returns the number of children.
func (g *Group) NumObjects() int {
	return len(g.children)
}

// Axes returns the group's axes in creation order. Their ordered lengths
// define the coordinate system channels are validated against.
func (g *Group) Axes() []*Axis {
	var out []*Axis
	for _, name := range g.order {
		if axis, ok := g.children[name].(*Axis); ok {
			out = append(out, axis)
		}
	}
	return out
}

// Channels returns the group's channels in creation order.
func (g *Group) Channels() []*Channel {
	var out []*Channel
	for _, name := range g.order {
		if ch, ok := g.children[name].(*Channel); ok {
			out = append(out, ch)
		}
	}
	return out
}

// Groups returns the nested groups in creation order.
func (g *Group) Groups() []*Group {
	var out []*Group
	for _, name := range g.order {
		if grp, ok := g.children[name].(*Group); ok {
			out = append(out, grp)
		}
	}
	return out
}

// Shape returns the ordered axis lengths.
func (g *Group) Shape() []int {
	axes := g.Axes()
	out := make([]int, len(axes))
	for i, axis := range axes {
		out[i] = axis.Len()
	}
	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
