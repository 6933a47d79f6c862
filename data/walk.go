package data

import "errors"

// ErrStopWalk can be returned from a walk callback to stop the traversal
// without reporting an error.
var ErrStopWalk = errors.New("walk stopped")

// WalkFunc is called for each node during traversal.
// path is the full path to the node; node is a *Group, *Axis or *Channel.
// Return nil to continue walking, ErrStopWalk to stop quietly, or any
// other error to abort.
type WalkFunc func(path string, node Node) error

// Walk traverses the tree rooted at g in depth-first creation order,
// calling fn for every node including g itself.
func Walk(g *Group, fn WalkFunc) error {
	err := walkGroup(g, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walkGroup(g *Group, fn WalkFunc) error {
	if err := fn(g.Path(), g); err != nil {
		return err
	}
	for _, name := range g.Members() {
		child, err := g.Get(name)
		if err != nil {
			return err
		}
		if grp, ok := child.(*Group); ok {
			if err := walkGroup(grp, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(child.Path(), child); err != nil {
			return err
		}
	}
	return nil
}

// AttrInfo describes one attribute encountered during WalkAttrs.
type AttrInfo struct {
	// Path is the full attribute path (e.g. "/scan/signal@units").
	Path string

	// Node is the object carrying the attribute.
	Node Node

	// Name is the attribute name.
	Name string

	// Value is the attribute value.
	Value interface{}
}

// WalkAttrsFunc is the callback type for WalkAttrs.
type WalkAttrsFunc func(info AttrInfo) error

// WalkAttrs traverses every attribute in the tree rooted at g.
func WalkAttrs(g *Group, fn WalkAttrsFunc) error {
	err := Walk(g, func(path string, node Node) error {
		for _, name := range node.AttrNames() {
			value, _ := node.Attr(name)
			info := AttrInfo{
				Path:  JoinAttrPath(path, name),
				Node:  node,
				Name:  name,
				Value: value,
			}
			if err := fn(info); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}
