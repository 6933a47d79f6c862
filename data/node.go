package data

import (
	"fmt"
	"sort"
	"strings"
)

// Node is implemented by every object in the tree: *Group, *Axis and
// *Channel.
type Node interface {
	// Name returns the object's name within its parent.
	Name() string

	// Path returns the absolute path from the root, e.g. "/scan/w1".
	Path() string

	// Parent returns the owning group, or nil for a detached object or
	// the root.
	Parent() *Group

	// AttrNames returns the attribute names in sorted order.
	AttrNames() []string

	// Attr returns an attribute value by name.
	Attr(name string) (interface{}, bool)

	// SetAttr stores a scalar or string attribute.
	SetAttr(name string, value interface{}) error

	base() *object
}

// object carries the state shared by all node kinds.
type object struct {
	name   string
	parent *Group
	attrs  map[string]interface{}
}

func (o *object) base() *object { return o }

// Name returns the object's name within its parent.
func (o *object) Name() string { return o.name }

// Parent returns the owning group, or nil if the object is detached or root.
func (o *object) Parent() *Group { return o.parent }

// Path returns the absolute path from the root.
func (o *object) Path() string {
	if o.parent == nil {
		return "/"
	}
	parentPath := o.parent.Path()
	if parentPath == "/" {
		return "/" + o.name
	}
	return parentPath + "/" + o.name
}

// SetAttr stores a metadata attribute on this object.
// Accepted value types: string, bool, int, int64, float64.
func (o *object) SetAttr(name string, value interface{}) error {
	if name == "" {
		return fmt.Errorf("%w: empty attribute name", ErrInvalidName)
	}
	switch value.(type) {
	case string, bool, int, int64, float64:
	default:
		return fmt.Errorf("%w: %T", ErrBadAttrValue, value)
	}
	if o.attrs == nil {
		o.attrs = make(map[string]interface{})
	}
	o.attrs[name] = value
	return nil
}

// Attr returns an attribute value by name.
func (o *object) Attr(name string) (interface{}, bool) {
	v, ok := o.attrs[name]
	return v, ok
}

// AttrNames returns the attribute names in sorted order.
func (o *object) AttrNames() []string {
	names := make([]string, 0, len(o.attrs))
	for name := range o.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasAttr returns true if the object has an attribute with the given name.
func (o *object) HasAttr(name string) bool {
	_, ok := o.attrs[name]
	return ok
}

// StringAttr returns a string attribute, or "" if absent or of another type.
func (o *object) StringAttr(name string) string {
	if v, ok := o.attrs[name].(string); ok {
		return v
	}
	return ""
}

// FloatAttr returns a numeric attribute as float64, or 0 if absent.
func (o *object) FloatAttr(name string) float64 {
	switch v := o.attrs[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// IntAttr returns an integer attribute, or 0 if absent or of another type.
func (o *object) IntAttr(name string) int64 {
	switch v := o.attrs[name].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

// checkName validates an object name: non-empty, no path separators, no '@'.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/@") {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidName, name)
	}
	return nil
}
