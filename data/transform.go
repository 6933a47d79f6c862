package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/rpm4/WrightTools/units"
)

// NaturalName converts an axis expression into a valid object name:
// "wa-w1" becomes "wa__m__w1".
func NaturalName(expression string) string {
	r := strings.NewReplacer(
		"+", "__p__",
		"-", "__m__",
		"*", "__t__",
		"/", "__d__",
		" ", "",
		"(", "_",
		")", "_",
	)
	return r.Replace(expression)
}

// DeriveAxis evaluates an arithmetic expression over this group's axes,
// element-wise, and returns a new detached axis named name.
//
// Every axis referenced by the expression must share one unit category;
// their points are converted to the leftmost referenced axis's unit before
// evaluation, and the derived axis carries that unit. Referenced axes must
// have equal length, or length 1 to broadcast.
func (g *Group) DeriveAxis(name, expression string) (*Axis, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	refs := g.referencedAxes(expression)
	if len(refs) == 0 {
		return nil, fmt.Errorf("deriving %q: expression %q references no axis of %q", name, expression, g.Path())
	}

	unit := refs[0].Units()
	length := 1
	for _, axis := range refs {
		if axis.Len() == 1 {
			continue
		}
		if length != 1 && axis.Len() != length {
			return nil, fmt.Errorf("deriving %q: %w: axes %v disagree on length", name, ErrShapeMismatch, axisNames(refs))
		}
		length = axis.Len()
	}

	points := make(map[string][]float64, len(refs))
	for _, axis := range refs {
		converted, err := units.ConvertSlice(axis.Values(), axis.Units(), unit)
		if err != nil {
			if errors.Is(err, units.ErrIncompatible) {
				return nil, fmt.Errorf("deriving %q: %w: axis %q is %s, axis %q is %s",
					name, ErrIncompatibleUnit, refs[0].Name(), unit, axis.Name(), axis.Units())
			}
			return nil, fmt.Errorf("deriving %q: %w", name, err)
		}
		points[axis.Name()] = converted
	}

	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("deriving %q: compiling %q: %w", name, expression, err)
	}

	out := make([]float64, length)
	env := make(map[string]interface{}, len(refs))
	for i := 0; i < length; i++ {
		for axisName, vals := range points {
			if len(vals) == 1 {
				env[axisName] = vals[0]
			} else {
				env[axisName] = vals[i]
			}
		}
		res, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("deriving %q: evaluating %q at %d: %w", name, expression, i, err)
		}
		v, err := toFloat(res)
		if err != nil {
			return nil, fmt.Errorf("deriving %q: %w", name, err)
		}
		out[i] = v
	}

	axis := newAxis(name, out, unit)
	axis.label = expression
	return axis, nil
}

// Transform redefines the group's coordinate system. Each expression is
// either the name of an existing axis, which is kept, or an arithmetic
// expression over existing axes, which becomes a derived axis named by
// NaturalName. The old axes disappear from the group; channels are
// revalidated against the new axis list before anything changes.
func (g *Group) Transform(expressions ...string) error {
	if len(expressions) == 0 {
		return fmt.Errorf("transform of %q: no expressions", g.Path())
	}

	old := g.Axes()
	oldNames := make(map[string]bool, len(old))
	for _, axis := range old {
		oldNames[axis.Name()] = true
	}

	newAxes := make([]*Axis, 0, len(expressions))
	seen := make(map[string]bool, len(expressions))
	for _, expression := range expressions {
		var axis *Axis
		if oldNames[expression] {
			kept, err := g.GetAxis(expression)
			if err != nil {
				return err
			}
			axis = kept
		} else {
			derived, err := g.DeriveAxis(NaturalName(expression), expression)
			if err != nil {
				return fmt.Errorf("transform of %q: %w", g.Path(), err)
			}
			axis = derived
		}
		if seen[axis.Name()] {
			return fmt.Errorf("transform of %q: %w: %q", g.Path(), ErrNameCollision, axis.Name())
		}
		if !oldNames[axis.Name()] {
			if _, taken := g.children[axis.Name()]; taken {
				return fmt.Errorf("transform of %q: %w: %q", g.Path(), ErrNameCollision, axis.Name())
			}
		}
		seen[axis.Name()] = true
		newAxes = append(newAxes, axis)
	}

	for _, ch := range g.Channels() {
		if err := shapeConsistent(ch.Shape(), newAxes); err != nil {
			return fmt.Errorf("transform of %q: channel %q: %w", g.Path(), ch.Name(), err)
		}
	}

	// Validation done; swap the axis set.
	for _, axis := range old {
		delete(g.children, axis.Name())
		g.order = removeString(g.order, axis.Name())
		axis.parent = nil
	}
	for _, axis := range newAxes {
		g.attach(axis)
	}
	return nil
}

// referencedAxes returns the group's axes whose names occur in expression
// as standalone identifiers, in axis creation order.
func (g *Group) referencedAxes(expression string) []*Axis {
	var out []*Axis
	for _, axis := range g.Axes() {
		if containsIdentifier(expression, axis.Name()) {
			out = append(out, axis)
		}
	}
	return out
}

// containsIdentifier reports whether ident occurs in s bounded by
// non-identifier characters.
func containsIdentifier(s, ident string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], ident)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isIdentChar(s[i-1])
		afterIdx := i + len(ident)
		after := afterIdx == len(s) || !isIdentChar(s[afterIdx])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, fmt.Errorf("expression yielded %T, want a number", v)
}

func axisNames(axes []*Axis) []string {
	out := make([]string, len(axes))
	for i, axis := range axes {
		out[i] = axis.Name()
	}
	return out
}
