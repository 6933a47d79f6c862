package filter

import (
	"encoding/binary"
	"fmt"

	binpkg "github.com/rpm4/WrightTools/internal/binary"
)

// Fletcher32Filter guards data integrity with a Fletcher-32 checksum
// appended to the payload.
type Fletcher32Filter struct{}

// NewFletcher32 creates a Fletcher-32 filter.
func NewFletcher32() *Fletcher32Filter {
	return &Fletcher32Filter{}
}

func (f *Fletcher32Filter) ID() uint16 {
	return IDFletcher32
}

func (f *Fletcher32Filter) ClientData() []uint32 {
	return nil
}

// Encode appends the checksum as 4 little-endian bytes.
func (f *Fletcher32Filter) Encode(input []byte) ([]byte, error) {
	checksum := binpkg.Fletcher32(input)
	output := make([]byte, len(input)+4)
	copy(output, input)
	binary.LittleEndian.PutUint32(output[len(input):], checksum)
	return output, nil
}

// Decode verifies the trailing checksum and strips it.
func (f *Fletcher32Filter) Decode(input []byte) ([]byte, error) {
	if len(input) < 4 {
		return nil, fmt.Errorf("fletcher32: input too short for checksum")
	}

	data := input[:len(input)-4]
	stored := binary.LittleEndian.Uint32(input[len(input)-4:])
	computed := binpkg.Fletcher32(data)

	if stored != computed {
		return nil, fmt.Errorf("fletcher32: checksum mismatch (stored=0x%08x, computed=0x%08x)",
			stored, computed)
	}
	return data, nil
}
