// Package data implements the hierarchical container for multidimensional
// spectroscopy data: named groups holding coordinate axes and signal
// channels that share a coordinate system, with unit-aware metadata on
// every node.
package data

import "errors"

// Common errors
var (
	ErrNameCollision    = errors.New("name already exists under parent")
	ErrNotFound         = errors.New("object not found")
	ErrShapeMismatch    = errors.New("shape inconsistent with axes")
	ErrIncompatibleUnit = errors.New("incompatible unit categories")
	ErrNotGroup         = errors.New("object is not a group")
	ErrNotAxis          = errors.New("object is not an axis")
	ErrNotChannel       = errors.New("object is not a channel")
	ErrInvalidName      = errors.New("invalid object name")
	ErrInvalidPath      = errors.New("invalid path")
	ErrBadAttrValue     = errors.New("unsupported attribute value type")
)
