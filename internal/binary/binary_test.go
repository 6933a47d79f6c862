package binary

import (
	"errors"
	"math"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteUint16(0x1234)
	w.WriteUint32(0xDEADBEEF)
	w.WriteUint64(0x0102030405060708)
	w.WriteFloat64(math.Pi)
	w.WriteString("signal")
	w.WriteBlock([]byte{1, 2, 3})
	w.WriteFloat64Slice([]float64{1.5, -2.5})

	r := NewReader(w.Bytes())

	if v, err := r.ReadUint8(); err != nil || v != 0xAB {
		t.Errorf("ReadUint8 = %v, %v", v, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0x1234 {
		t.Errorf("ReadUint16 = %v, %v", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadUint32 = %v, %v", v, err)
	}
	if v, err := r.ReadUint64(); err != nil || v != 0x0102030405060708 {
		t.Errorf("ReadUint64 = %v, %v", v, err)
	}
	if v, err := r.ReadFloat64(); err != nil || v != math.Pi {
		t.Errorf("ReadFloat64 = %v, %v", v, err)
	}
	if s, err := r.ReadString(); err != nil || s != "signal" {
		t.Errorf("ReadString = %q, %v", s, err)
	}
	if b, err := r.ReadBlock(); err != nil || len(b) != 3 || b[2] != 3 {
		t.Errorf("ReadBlock = %v, %v", b, err)
	}
	if vs, err := r.ReadFloat64Slice(2); err != nil || vs[0] != 1.5 || vs[1] != -2.5 {
		t.Errorf("ReadFloat64Slice = %v, %v", vs, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadUint32(); !errors.Is(err, ErrShortRead) {
		t.Errorf("error = %v, want ErrShortRead", err)
	}

	// A corrupt length prefix must not allocate or panic.
	w := NewWriter()
	w.WriteUint64(1 << 60)
	r = NewReader(w.Bytes())
	if _, err := r.ReadBlock(); !errors.Is(err, ErrShortRead) {
		t.Errorf("oversized block error = %v, want ErrShortRead", err)
	}
}

func TestFloat64SliceBytes(t *testing.T) {
	in := []float64{0, 1, -1, math.Inf(1), math.SmallestNonzeroFloat64}
	out := Float64SliceFromBytes(Float64SliceBytes(in))
	if len(out) != len(in) {
		t.Fatalf("length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestFletcher32(t *testing.T) {
	// Known value: "abcde" has Fletcher-32 checksum 0xF04FC729
	// when processed as 16-bit little-endian words.
	data := []byte("abcde")
	if got := Fletcher32(data); got != 0xF04FC729 {
		t.Errorf("Fletcher32(abcde) = 0x%08X, want 0xF04FC729", got)
	}

	if !VerifyFletcher32(data, Fletcher32(data)) {
		t.Error("VerifyFletcher32 rejected its own checksum")
	}
	if VerifyFletcher32(data, 0) {
		t.Error("VerifyFletcher32 accepted a wrong checksum")
	}
}

func TestLookup3(t *testing.T) {
	// Deterministic and sensitive to single-bit changes.
	a := Lookup3Checksum([]byte("hello wt5"))
	b := Lookup3Checksum([]byte("hello wt5"))
	c := Lookup3Checksum([]byte("hello wt4"))
	if a != b {
		t.Error("Lookup3Checksum is not deterministic")
	}
	if a == c {
		t.Error("Lookup3Checksum collided on a single-byte change")
	}
	if !VerifyLookup3([]byte("x"), Lookup3Checksum([]byte("x"))) {
		t.Error("VerifyLookup3 rejected its own checksum")
	}

	// Empty input hits the length-0 early return.
	if Lookup3Checksum(nil) != Lookup3Checksum([]byte{}) {
		t.Error("empty inputs disagree")
	}
}
