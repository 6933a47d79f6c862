// Package codec implements the wt5 container format: the byte-level
// encoding of a dataset tree.
//
// # Layout
//
// A wt5 file is written start to finish:
//
//	signature   8 bytes: \x89 W T 5 \r \n \x1a \n
//	version     1 byte
//	reserved    3 bytes, zero
//	source      length-prefixed string (dataset source identifier)
//	root        node record (see below)
//	checksum    4 bytes, lookup3 over everything above
//
// Node records are tagged: a kind byte (group, axis or channel), the
// node's name, its attributes, then kind-specific fields. Group records
// carry a child count followed by the child records in creation order,
// which lets a reader replay creation and re-establish the container's
// invariants without a second pass.
//
// Array payloads (axis points, channel elements) are raw little-endian
// float64 bytes run through a filter pipeline. Each payload records the
// pipeline that produced it, so files written with different compression
// settings read back transparently.
//
// The trailing lookup3 checksum guards all metadata; per-array
// Fletcher-32 frames (when enabled in the pipeline) guard payloads
// individually.
package codec
