package wt5

import "github.com/rpm4/WrightTools/internal/filter"

// WriteOption configures how array payloads are stored.
type WriteOption func(*writeOptions)

type writeOptions struct {
	compressionLvl int
	snappy         bool
	shuffle        bool
	fletcher32     bool
}

func defaultWriteOptions() *writeOptions {
	return &writeOptions{
		compressionLvl: 0,
		snappy:         false,
		shuffle:        false,
		fletcher32:     false,
	}
}

// WithCompression sets the deflate compression level (1-9, 0 = none).
// Deflate and snappy are mutually exclusive; deflate wins if both are set.
func WithCompression(level int) WriteOption {
	return func(o *writeOptions) {
		if level >= 0 && level <= 9 {
			o.compressionLvl = level
		}
	}
}

// WithSnappy compresses payloads with snappy instead of deflate.
// Faster than deflate at a worse ratio.
func WithSnappy() WriteOption {
	return func(o *writeOptions) {
		o.snappy = true
	}
}

// WithShuffle enables the byte shuffle filter (improves compression).
func WithShuffle() WriteOption {
	return func(o *writeOptions) {
		o.shuffle = true
	}
}

// WithFletcher32 enables Fletcher32 checksums on each payload.
func WithFletcher32() WriteOption {
	return func(o *writeOptions) {
		o.fletcher32 = true
	}
}

// pipeline assembles the filter pipeline in encode order.
func (o *writeOptions) pipeline() *filter.Pipeline {
	var filters []filter.Filter
	if o.shuffle {
		filters = append(filters, filter.NewShuffle(8))
	}
	if o.compressionLvl > 0 {
		filters = append(filters, filter.NewDeflate(o.compressionLvl))
	} else if o.snappy {
		filters = append(filters, filter.NewSnappy())
	}
	if o.fletcher32 {
		filters = append(filters, filter.NewFletcher32())
	}
	return filter.NewPipeline(filters...)
}
