// Package filter implements the wt5 array filter pipeline.
//
// Array payloads are transformed by an ordered sequence of filters when
// written and by the same sequence in reverse when read. Each filter is
// symmetric: Encode transforms raw data to stored form, Decode inverts it.
//
// # Filters
//
//   - Shuffle (ID 1): byte shuffling via [Shuffle]. Groups the i-th byte
//     of every element together, which greatly improves the compression
//     of float64 arrays with slowly varying values.
//
//   - Deflate (ID 2): zlib compression via [Deflate], using the standard
//     compress/zlib package.
//
//   - Snappy (ID 3): snappy block compression via [Snappy], a faster,
//     lighter alternative to deflate.
//
//   - Fletcher32 (ID 4): integrity check via [Fletcher32Filter]. Encode
//     appends a 4-byte Fletcher-32 checksum; Decode verifies and strips it.
//
// # Pipeline
//
// The [Pipeline] type manages a filter sequence:
//
//	p := filter.NewPipeline(filter.NewShuffle(8), filter.NewDeflate(6))
//	stored, err := p.Encode(raw)
//	raw2, err := p.Decode(stored)
//
// Encode applies filters first to last; Decode applies them last to
// first. The pipeline is described on disk by the filter IDs and client
// data words, so a reader reconstructs the exact sequence the writer used.
package filter
