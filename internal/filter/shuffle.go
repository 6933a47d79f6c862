package filter

// Shuffle implements the byte shuffle filter. It rearranges bytes so that
// the i-th byte of every element is grouped together, which improves the
// compressibility of arrays of multi-byte values.
type Shuffle struct {
	elemSize int
}

// NewShuffle creates a shuffle filter for elements of the given byte size.
func NewShuffle(elemSize int) *Shuffle {
	if elemSize < 1 {
		elemSize = 1
	}
	return &Shuffle{elemSize: elemSize}
}

func newShuffleFromClientData(clientData []uint32) *Shuffle {
	elemSize := 1
	if len(clientData) > 0 && clientData[0] > 0 {
		elemSize = int(clientData[0])
	}
	return NewShuffle(elemSize)
}

func (f *Shuffle) ID() uint16 {
	return IDShuffle
}

func (f *Shuffle) ClientData() []uint32 {
	return []uint32{uint32(f.elemSize)}
}

// Encode groups bytes by position: [all byte 0s][all byte 1s]...
// A trailing partial element is passed through unshuffled.
func (f *Shuffle) Encode(input []byte) ([]byte, error) {
	if f.elemSize <= 1 {
		return input, nil
	}

	numElems := len(input) / f.elemSize
	if numElems == 0 {
		return input, nil
	}
	shuffled := numElems * f.elemSize

	output := make([]byte, len(input))
	for i := 0; i < numElems; i++ {
		for j := 0; j < f.elemSize; j++ {
			output[j*numElems+i] = input[i*f.elemSize+j]
		}
	}
	copy(output[shuffled:], input[shuffled:])
	return output, nil
}

// Decode gathers bytes from grouped positions back into elements.
func (f *Shuffle) Decode(input []byte) ([]byte, error) {
	if f.elemSize <= 1 {
		return input, nil
	}

	numElems := len(input) / f.elemSize
	if numElems == 0 {
		return input, nil
	}
	shuffled := numElems * f.elemSize

	output := make([]byte, len(input))
	for i := 0; i < numElems; i++ {
		for j := 0; j < f.elemSize; j++ {
			output[i*f.elemSize+j] = input[j*numElems+i]
		}
	}
	copy(output[shuffled:], input[shuffled:])
	return output, nil
}
