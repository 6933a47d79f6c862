package filter

import "fmt"

// Pipeline is an ordered filter sequence applied to array payloads.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a pipeline from filters in encode order.
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{filters: filters}
}

// FromStored reconstructs a pipeline from stored (id, clientData) pairs.
func FromStored(ids []uint16, clientData [][]uint32) (*Pipeline, error) {
	if len(ids) != len(clientData) {
		return nil, fmt.Errorf("filter pipeline: %d ids for %d client data words", len(ids), len(clientData))
	}
	filters := make([]Filter, 0, len(ids))
	for i, id := range ids {
		f, err := New(id, clientData[i])
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", Name(id), err)
		}
		filters = append(filters, f)
	}
	return &Pipeline{filters: filters}, nil
}

// Filters returns the pipeline's filters in encode order.
func (p *Pipeline) Filters() []Filter {
	return p.filters
}

// Empty returns true if the pipeline has no filters.
func (p *Pipeline) Empty() bool {
	return len(p.filters) == 0
}

// Len returns the number of filters.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Encode applies the filters first to last.
func (p *Pipeline) Encode(input []byte) ([]byte, error) {
	data := input
	for _, f := range p.filters {
		var err error
		data, err = f.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("%s encode: %w", Name(f.ID()), err)
		}
	}
	return data, nil
}

// Decode applies the filters last to first.
func (p *Pipeline) Decode(input []byte) ([]byte, error) {
	data := input
	for i := len(p.filters) - 1; i >= 0; i-- {
		f := p.filters[i]
		var err error
		data, err = f.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s decode: %w", Name(f.ID()), err)
		}
	}
	return data, nil
}
