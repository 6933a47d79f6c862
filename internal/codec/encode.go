package codec

import (
	"fmt"

	"github.com/rpm4/WrightTools/data"
	"github.com/rpm4/WrightTools/internal/binary"
	"github.com/rpm4/WrightTools/internal/filter"
)

// Signature identifies a wt5 file. The non-ASCII lead byte and embedded
// CR/LF catch text-mode corruption, the same trick the HDF5 and PNG
// signatures use.
var Signature = [8]byte{0x89, 'W', 'T', '5', '\r', '\n', 0x1a, '\n'}

// Version is the current format version.
const Version = 1

// Node kind tags.
const (
	kindGroup   uint8 = 1
	kindAxis    uint8 = 2
	kindChannel uint8 = 3
)

// Attribute type tags.
const (
	attrString  uint8 = 1
	attrFloat64 uint8 = 2
	attrInt64   uint8 = 3
	attrBool    uint8 = 4
)

// EncodeDataset serializes a dataset tree. Array payloads are run
// through pipeline; pass an empty pipeline to store them raw.
func EncodeDataset(d *data.Dataset, pipeline *filter.Pipeline) ([]byte, error) {
	if pipeline == nil {
		pipeline = filter.NewPipeline()
	}

	w := binary.NewWriter()
	w.WriteBytes(Signature[:])
	w.WriteUint8(Version)
	w.WriteZeros(3)
	w.WriteString(d.Source())

	if err := encodeGroup(w, d.Root(), pipeline); err != nil {
		return nil, err
	}

	w.WriteUint32(binary.Lookup3Checksum(w.Bytes()))
	return w.Bytes(), nil
}

func encodeGroup(w *binary.Writer, g *data.Group, pipeline *filter.Pipeline) error {
	w.WriteUint8(kindGroup)
	w.WriteString(g.Name())
	if err := encodeAttrs(w, g); err != nil {
		return err
	}

	members := g.Members()
	w.WriteUint32(uint32(len(members)))
	for _, name := range members {
		child, err := g.Get(name)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", g.Path(), err)
		}
		switch c := child.(type) {
		case *data.Group:
			if err := encodeGroup(w, c, pipeline); err != nil {
				return err
			}
		case *data.Axis:
			if err := encodeAxis(w, c, pipeline); err != nil {
				return err
			}
		case *data.Channel:
			if err := encodeChannel(w, c, pipeline); err != nil {
				return err
			}
		default:
			return fmt.Errorf("encoding %q: unknown node kind %T", child.Path(), child)
		}
	}
	return nil
}

func encodeAxis(w *binary.Writer, a *data.Axis, pipeline *filter.Pipeline) error {
	w.WriteUint8(kindAxis)
	w.WriteString(a.Name())
	if err := encodeAttrs(w, a); err != nil {
		return err
	}
	w.WriteString(a.Units())
	w.WriteString(a.RawLabel())
	w.WriteUint64(uint64(a.Len()))
	return encodePayload(w, a.Values(), pipeline, a.Path())
}

func encodeChannel(w *binary.Writer, c *data.Channel, pipeline *filter.Pipeline) error {
	w.WriteUint8(kindChannel)
	w.WriteString(c.Name())
	if err := encodeAttrs(w, c); err != nil {
		return err
	}
	w.WriteString(c.Units())
	if c.Signed() {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
	w.WriteFloat64(c.Null())

	shape := c.Shape()
	w.WriteUint32(uint32(len(shape)))
	for _, dim := range shape {
		w.WriteUint64(uint64(dim))
	}
	return encodePayload(w, c.Values(), pipeline, c.Path())
}

// encodePayload writes the pipeline description followed by the filtered
// array bytes as one block.
func encodePayload(w *binary.Writer, values []float64, pipeline *filter.Pipeline, path string) error {
	filters := pipeline.Filters()
	w.WriteUint8(uint8(len(filters)))
	for _, f := range filters {
		w.WriteUint16(f.ID())
		cd := f.ClientData()
		w.WriteUint8(uint8(len(cd)))
		for _, word := range cd {
			w.WriteUint32(word)
		}
	}

	encoded, err := pipeline.Encode(binary.Float64SliceBytes(values))
	if err != nil {
		return fmt.Errorf("encoding payload of %q: %w", path, err)
	}
	w.WriteBlock(encoded)
	return nil
}

func encodeAttrs(w *binary.Writer, n data.Node) error {
	names := n.AttrNames()
	w.WriteUint32(uint32(len(names)))
	for _, name := range names {
		value, _ := n.Attr(name)
		w.WriteString(name)
		switch v := value.(type) {
		case string:
			w.WriteUint8(attrString)
			w.WriteString(v)
		case float64:
			w.WriteUint8(attrFloat64)
			w.WriteFloat64(v)
		case int:
			w.WriteUint8(attrInt64)
			w.WriteUint64(uint64(int64(v)))
		case int64:
			w.WriteUint8(attrInt64)
			w.WriteUint64(uint64(v))
		case bool:
			w.WriteUint8(attrBool)
			if v {
				w.WriteUint8(1)
			} else {
				w.WriteUint8(0)
			}
		default:
			return fmt.Errorf("encoding %q: attribute %q has unsupported type %T", n.Path(), name, value)
		}
	}
	return nil
}
