package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/rpm4/WrightTools/data"
	"github.com/rpm4/WrightTools/internal/binary"
	"github.com/rpm4/WrightTools/internal/filter"
)

// Common errors
var (
	ErrNotWT5           = errors.New("not a wt5 file")
	ErrVersion          = errors.New("unsupported wt5 version")
	ErrChecksum         = errors.New("metadata checksum mismatch")
	ErrCorrupt          = errors.New("corrupt wt5 file")
	errRootNotGroup     = errors.New("root record is not a group")
	errUnknownNodeKind  = errors.New("unknown node kind")
	errUnknownAttrType  = errors.New("unknown attribute type")
	errPayloadSizeWrong = errors.New("payload size disagrees with shape")
)

// DecodeDataset parses a wt5 byte stream back into a dataset tree.
// The tree is rebuilt through the data package's creation operations, so
// a decoded file satisfies the same invariants as a freshly built one.
func DecodeDataset(raw []byte) (*data.Dataset, error) {
	if len(raw) < len(Signature)+8 {
		return nil, ErrNotWT5
	}
	if !bytes.Equal(raw[:len(Signature)], Signature[:]) {
		return nil, ErrNotWT5
	}

	body := raw[:len(raw)-4]
	stored, err := binary.NewReader(raw[len(raw)-4:]).ReadUint32()
	if err != nil {
		return nil, err
	}
	if !binary.VerifyLookup3(body, stored) {
		return nil, ErrChecksum
	}

	r := binary.NewReader(body)
	if err := r.Skip(len(Signature)); err != nil {
		return nil, err
	}
	version, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, version)
	}
	if err := r.Skip(3); err != nil {
		return nil, err
	}
	source, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	kind, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if kind != kindGroup {
		return nil, errRootNotGroup
	}
	name, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("reading root name: %w", err)
	}

	d, err := data.NewDataset(name)
	if err != nil {
		return nil, fmt.Errorf("rebuilding root %q: %w", name, err)
	}
	d.SetSource(source)

	if err := decodeAttrs(r, d.Root()); err != nil {
		return nil, err
	}
	if err := decodeChildren(r, d.Root()); err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Remaining())
	}
	return d, nil
}

func decodeChildren(r *binary.Reader, g *data.Group) error {
	count, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("reading child count of %q: %w", g.Path(), err)
	}
	for i := uint32(0); i < count; i++ {
		if err := decodeNode(r, g); err != nil {
			return err
		}
	}
	return nil
}

func decodeNode(r *binary.Reader, parent *data.Group) error {
	kind, err := r.ReadUint8()
	if err != nil {
		return err
	}
	name, err := r.ReadString()
	if err != nil {
		return err
	}

	switch kind {
	case kindGroup:
		child, err := parent.CreateGroup(name)
		if err != nil {
			return fmt.Errorf("rebuilding group %q: %w", name, err)
		}
		if err := decodeAttrs(r, child); err != nil {
			return err
		}
		return decodeChildren(r, child)

	case kindAxis:
		return decodeAxis(r, parent, name)

	case kindChannel:
		return decodeChannel(r, parent, name)

	default:
		return fmt.Errorf("%w: %d for %q", errUnknownNodeKind, kind, name)
	}
}

func decodeAxis(r *binary.Reader, parent *data.Group, name string) error {
	attrs, err := readAttrs(r)
	if err != nil {
		return err
	}
	unit, err := r.ReadString()
	if err != nil {
		return err
	}
	label, err := r.ReadString()
	if err != nil {
		return err
	}
	npoints, err := r.ReadUint64()
	if err != nil {
		return err
	}
	values, err := decodePayload(r, name)
	if err != nil {
		return err
	}
	if uint64(len(values)) != npoints {
		return fmt.Errorf("%w: axis %q has %d points, payload holds %d", errPayloadSizeWrong, name, npoints, len(values))
	}

	var opts []data.AxisOption
	if label != "" {
		opts = append(opts, data.WithLabel(label))
	}
	axis, err := parent.CreateAxis(name, values, unit, opts...)
	if err != nil {
		return fmt.Errorf("rebuilding axis %q: %w", name, err)
	}
	return applyAttrs(axis, attrs)
}

func decodeChannel(r *binary.Reader, parent *data.Group, name string) error {
	attrs, err := readAttrs(r)
	if err != nil {
		return err
	}
	unit, err := r.ReadString()
	if err != nil {
		return err
	}
	signed, err := r.ReadUint8()
	if err != nil {
		return err
	}
	null, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	ndim, err := r.ReadUint32()
	if err != nil {
		return err
	}
	shape := make([]int, ndim)
	size := 1
	for i := range shape {
		dim, err := r.ReadUint64()
		if err != nil {
			return err
		}
		shape[i] = int(dim)
		size *= shape[i]
	}
	values, err := decodePayload(r, name)
	if err != nil {
		return err
	}
	if len(values) != size {
		return fmt.Errorf("%w: channel %q shape %v, payload holds %d", errPayloadSizeWrong, name, shape, len(values))
	}

	opts := []data.ChannelOption{data.WithValues(values), data.WithNull(null)}
	if signed != 0 {
		opts = append(opts, data.WithSigned())
	}
	ch, err := parent.CreateChannel(name, shape, unit, opts...)
	if err != nil {
		return fmt.Errorf("rebuilding channel %q: %w", name, err)
	}
	return applyAttrs(ch, attrs)
}

// decodePayload reads a pipeline description and a filtered block, and
// returns the decoded float64 array.
func decodePayload(r *binary.Reader, name string) ([]float64, error) {
	nfilters, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	ids := make([]uint16, nfilters)
	clientData := make([][]uint32, nfilters)
	for i := range ids {
		if ids[i], err = r.ReadUint16(); err != nil {
			return nil, err
		}
		ncd, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		cd := make([]uint32, ncd)
		for j := range cd {
			if cd[j], err = r.ReadUint32(); err != nil {
				return nil, err
			}
		}
		clientData[i] = cd
	}

	pipeline, err := filter.FromStored(ids, clientData)
	if err != nil {
		return nil, fmt.Errorf("payload of %q: %w", name, err)
	}

	block, err := r.ReadBlock()
	if err != nil {
		return nil, fmt.Errorf("payload of %q: %w", name, err)
	}
	decoded, err := pipeline.Decode(block)
	if err != nil {
		return nil, fmt.Errorf("payload of %q: %w", name, err)
	}
	if len(decoded)%8 != 0 {
		return nil, fmt.Errorf("%w: payload of %q is %d bytes", ErrCorrupt, name, len(decoded))
	}
	return binary.Float64SliceFromBytes(decoded), nil
}

// attr is a decoded attribute pending application.
type attr struct {
	name  string
	value interface{}
}

func readAttrs(r *binary.Reader) ([]attr, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	out := make([]attr, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		typeTag, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		var value interface{}
		switch typeTag {
		case attrString:
			if value, err = r.ReadString(); err != nil {
				return nil, err
			}
		case attrFloat64:
			if value, err = r.ReadFloat64(); err != nil {
				return nil, err
			}
		case attrInt64:
			v, err := r.ReadUint64()
			if err != nil {
				return nil, err
			}
			value = int64(v)
		case attrBool:
			v, err := r.ReadUint8()
			if err != nil {
				return nil, err
			}
			value = v != 0
		default:
			return nil, fmt.Errorf("%w: %d for attribute %q", errUnknownAttrType, typeTag, name)
		}
		out = append(out, attr{name: name, value: value})
	}
	return out, nil
}

func applyAttrs(n data.Node, attrs []attr) error {
	for _, a := range attrs {
		if err := n.SetAttr(a.name, a.value); err != nil {
			return fmt.Errorf("restoring attribute %q on %q: %w", a.name, n.Path(), err)
		}
	}
	return nil
}

func decodeAttrs(r *binary.Reader, n data.Node) error {
	attrs, err := readAttrs(r)
	if err != nil {
		return err
	}
	return applyAttrs(n, attrs)
}
