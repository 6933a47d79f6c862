package data

import (
	"fmt"
	"strings"
)

// ParseAttrPath parses an attribute path into object path and attribute
// name. Path format: /group/subgroup/object@attribute_name
//
// Examples:
//   - "/@created" -> objectPath="/", attrName="created"
//   - "/signal@units" -> objectPath="/signal", attrName="units"
func ParseAttrPath(path string) (objectPath, attrName string, err error) {
	if path == "" {
		return "", "", fmt.Errorf("%w: empty attribute path", ErrInvalidPath)
	}

	atIdx := strings.LastIndex(path, "@")
	if atIdx == -1 {
		return "", "", fmt.Errorf("%w: missing '@' separator: %s", ErrInvalidPath, path)
	}

	objectPath = path[:atIdx]
	attrName = path[atIdx+1:]

	if attrName == "" {
		return "", "", fmt.Errorf("%w: empty attribute name: %s", ErrInvalidPath, path)
	}

	if objectPath == "" {
		objectPath = "/"
	}
	if !strings.HasPrefix(objectPath, "/") {
		objectPath = "/" + objectPath
	}

	return objectPath, attrName, nil
}

// JoinAttrPath creates an attribute path from object path and attribute name.
func JoinAttrPath(objectPath, attrName string) string {
	if objectPath == "/" {
		return "/@" + attrName
	}
	return objectPath + "@" + attrName
}

// SplitPath splits a path into its components. Leading and trailing
// slashes are handled, empty components are removed.
func SplitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return []string{}
	}
	return strings.Split(path, "/")
}

// CleanPath normalizes a path, ensuring it starts with "/" and has no
// trailing slash.
func CleanPath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(path, "/")
}

// Lookup resolves a slash-separated path relative to this group.
// An absolute path resolves against this group too; the root group is the
// natural receiver for those.
func (g *Group) Lookup(path string) (Node, error) {
	parts := SplitPath(path)
	if len(parts) == 0 {
		return g, nil
	}

	current := g
	for i, name := range parts {
		child, err := current.Get(name)
		if err != nil {
			return nil, err
		}
		if i == len(parts)-1 {
			return child, nil
		}
		next, ok := child.(*Group)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotGroup, child.Path())
		}
		current = next
	}
	return current, nil
}

// LookupAttr resolves a /path@attr reference and returns the attribute
// value.
func (g *Group) LookupAttr(path string) (interface{}, error) {
	objectPath, attrName, err := ParseAttrPath(path)
	if err != nil {
		return nil, err
	}
	node, err := g.Lookup(objectPath)
	if err != nil {
		return nil, err
	}
	v, ok := node.Attr(attrName)
	if !ok {
		return nil, fmt.Errorf("%w: attribute %q on %q", ErrNotFound, attrName, node.Path())
	}
	return v, nil
}
