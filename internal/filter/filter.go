package filter

import "fmt"

// Filter identifiers stored in the file.
const (
	IDShuffle    uint16 = 1
	IDDeflate    uint16 = 2
	IDSnappy     uint16 = 3
	IDFletcher32 uint16 = 4
)

// Filter is the interface implemented by all wt5 filters.
type Filter interface {
	// ID returns the filter identifier.
	ID() uint16

	// ClientData returns the filter's parameters for storage.
	ClientData() []uint32

	// Encode transforms raw data to stored form.
	Encode(input []byte) ([]byte, error)

	// Decode transforms stored data back to raw form.
	Decode(input []byte) ([]byte, error)
}

// Registry maps filter IDs to constructors taking stored client data.
var Registry = map[uint16]func([]uint32) Filter{
	IDShuffle:    func(cd []uint32) Filter { return newShuffleFromClientData(cd) },
	IDDeflate:    func(cd []uint32) Filter { return newDeflateFromClientData(cd) },
	IDSnappy:     func(cd []uint32) Filter { return NewSnappy() },
	IDFletcher32: func(cd []uint32) Filter { return NewFletcher32() },
}

var filterNames = map[uint16]string{
	IDShuffle:    "shuffle",
	IDDeflate:    "deflate",
	IDSnappy:     "snappy",
	IDFletcher32: "Fletcher32",
}

// New creates a filter from its stored ID and client data.
func New(id uint16, clientData []uint32) (Filter, error) {
	constructor, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unsupported filter ID: %d", id)
	}
	return constructor(clientData), nil
}

// Name returns a human-readable filter name for error messages.
func Name(id uint16) string {
	if name, ok := filterNames[id]; ok {
		return name
	}
	return fmt.Sprintf("filter %d", id)
}
