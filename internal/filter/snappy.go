package filter

import (
	"fmt"

	"github.com/golang/snappy"
)

// Snappy implements snappy block compression.
type Snappy struct{}

// NewSnappy creates a snappy filter.
func NewSnappy() *Snappy {
	return &Snappy{}
}

func (f *Snappy) ID() uint16 {
	return IDSnappy
}

func (f *Snappy) ClientData() []uint32 {
	return nil
}

func (f *Snappy) Encode(input []byte) ([]byte, error) {
	return snappy.Encode(nil, input), nil
}

func (f *Snappy) Decode(input []byte) ([]byte, error) {
	output, err := snappy.Decode(nil, input)
	if err != nil {
		return nil, fmt.Errorf("snappy decompress: %w", err)
	}
	return output, nil
}
