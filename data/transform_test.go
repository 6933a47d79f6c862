package data

import (
	"errors"
	"math"
	"testing"
)

func TestNaturalName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"wa-w1", "wa__m__w1"},
		{"w1+w2", "w1__p__w2"},
		{"w1 * 2", "w1__t__2"},
		{"w1", "w1"},
	}
	for _, tt := range tests {
		if got := NaturalName(tt.in); got != tt.want {
			t.Errorf("NaturalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveAxis(t *testing.T) {
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{12500, 13000, 13500}, "wn"); err != nil {
		t.Fatalf("CreateAxis w1 failed: %v", err)
	}
	if _, err := d.CreateAxis("wa", []float64{25500, 26000, 26500}, "wn"); err != nil {
		t.Fatalf("CreateAxis wa failed: %v", err)
	}

	axis, err := d.DeriveAxis("wa__m__w1", "wa-w1")
	if err != nil {
		t.Fatalf("DeriveAxis failed: %v", err)
	}
	if axis.Parent() != nil {
		t.Error("derived axis should start detached")
	}
	if axis.Units() != "wn" {
		t.Errorf("Units = %q, want wn", axis.Units())
	}
	want := []float64{13000, 13000, 13000}
	for i, w := range want {
		if math.Abs(axis.At(i)-w) > 1e-9 {
			t.Errorf("At(%d) = %v, want %v", i, axis.At(i), w)
		}
	}
	if axis.Label() != "wa-w1" {
		t.Errorf("Label = %q, want the expression", axis.Label())
	}
}

func TestDeriveAxisMixedUnits(t *testing.T) {
	// wa in nm, w1 in wn: both energies, so wa is converted to wn (the
	// leftmost referenced axis is w1 in creation order... the expression
	// references wa first lexically but referencedAxes walks creation
	// order, so the result carries w1's unit).
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{12500}, "wn"); err != nil {
		t.Fatalf("CreateAxis w1 failed: %v", err)
	}
	if _, err := d.CreateAxis("wa", []float64{400}, "nm"); err != nil {
		t.Fatalf("CreateAxis wa failed: %v", err)
	}

	axis, err := d.DeriveAxis("diff", "wa-w1")
	if err != nil {
		t.Fatalf("DeriveAxis failed: %v", err)
	}
	if axis.Units() != "wn" {
		t.Errorf("Units = %q, want wn", axis.Units())
	}
	// 400 nm = 25000 wn; 25000 - 12500 = 12500.
	if math.Abs(axis.At(0)-12500) > 1e-9 {
		t.Errorf("At(0) = %v, want 12500", axis.At(0))
	}
}

func TestDeriveAxisIncompatibleUnits(t *testing.T) {
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{12500}, "wn"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := d.CreateAxis("d1", []float64{100}, "fs"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := d.DeriveAxis("bad", "w1-d1"); !errors.Is(err, ErrIncompatibleUnit) {
		t.Errorf("DeriveAxis error = %v, want ErrIncompatibleUnit", err)
	}
}

func TestDeriveAxisScalarBroadcast(t *testing.T) {
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{100, 200, 300}, "wn"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := d.CreateAxis("offset", []float64{50}, "wn"); err != nil {
		t.Fatalf("CreateAxis offset failed: %v", err)
	}

	// A length-1 axis broadcasts across the expression.
	axis, err := d.DeriveAxis("shifted", "w1 - offset")
	if err != nil {
		t.Fatalf("DeriveAxis failed: %v", err)
	}
	if axis.Len() != 3 || axis.At(0) != 50 || axis.At(2) != 250 {
		t.Errorf("shifted axis = %v, want [50 150 250]", axis.Values())
	}
}

func TestDeriveAxisNoReference(t *testing.T) {
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{1}, "wn"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := d.DeriveAxis("bad", "q * 2"); err == nil {
		t.Error("expected error for expression referencing no axis")
	}
}

func TestTransform(t *testing.T) {
	// The tune-test workflow: scan axes w1 and wa, re-coordinate onto
	// w1 and wa-w1.
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{12500, 13000, 13500}, "wn"); err != nil {
		t.Fatalf("CreateAxis w1 failed: %v", err)
	}
	if _, err := d.CreateAxis("wa", []float64{25000, 26500, 28000}, "wn"); err != nil {
		t.Fatalf("CreateAxis wa failed: %v", err)
	}
	if _, err := d.CreateChannel("array_signal", []int{3, 3}, "a.u."); err != nil {
		t.Fatalf("CreateChannel failed: %v", err)
	}

	if err := d.Transform("w1", "wa-w1"); err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	axes := d.Axes()
	if len(axes) != 2 {
		t.Fatalf("axis count = %d, want 2", len(axes))
	}
	if axes[0].Name() != "w1" || axes[1].Name() != "wa__m__w1" {
		t.Errorf("axes = %v, want [w1 wa__m__w1]", axisNames(axes))
	}
	if _, err := d.Get("wa"); !errors.Is(err, ErrNotFound) {
		t.Error("old axis wa still attached after transform")
	}

	derived, err := d.GetAxis("wa__m__w1")
	if err != nil {
		t.Fatalf("GetAxis failed: %v", err)
	}
	want := []float64{12500, 13500, 14500}
	for i, w := range want {
		if math.Abs(derived.At(i)-w) > 1e-9 {
			t.Errorf("derived At(%d) = %v, want %v", i, derived.At(i), w)
		}
	}

	// The channel is still present and consistent.
	if _, err := d.GetChannel("array_signal"); err != nil {
		t.Fatalf("channel lost in transform: %v", err)
	}
}

func TestTransformShapeGuard(t *testing.T) {
	d := mustDataset(t, "tune")
	if _, err := d.CreateAxis("w1", []float64{1, 2, 3}, "wn"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := d.CreateChannel("signal", []int{3}, "a.u."); err != nil {
		t.Fatalf("CreateChannel failed: %v", err)
	}

	// Dropping to an expression list that changes dimensionality must
	// fail and leave the group unchanged.
	if err := d.Transform("w1", "w1*2"); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Transform error = %v, want ErrShapeMismatch", err)
	}
	if len(d.Axes()) != 1 {
		t.Errorf("failed transform changed axes: %v", axisNames(d.Axes()))
	}
}
