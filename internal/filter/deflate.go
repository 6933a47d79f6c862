package filter

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Deflate implements zlib compression.
type Deflate struct {
	level int
}

// NewDeflate creates a deflate filter with the given compression level
// (1-9; out-of-range values fall back to the zlib default).
func NewDeflate(level int) *Deflate {
	if level < 1 || level > 9 {
		level = zlib.DefaultCompression
	}
	return &Deflate{level: level}
}

func newDeflateFromClientData(clientData []uint32) *Deflate {
	level := zlib.DefaultCompression
	if len(clientData) > 0 {
		level = int(clientData[0])
	}
	return NewDeflate(level)
}

func (f *Deflate) ID() uint16 {
	return IDDeflate
}

func (f *Deflate) ClientData() []uint32 {
	return []uint32{uint32(f.level)}
}

func (f *Deflate) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, f.level)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := zw.Write(input); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zlib close: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Deflate) Decode(input []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer zr.Close()

	output, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	return output, nil
}
