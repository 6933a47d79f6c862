package data

import (
	"errors"
	"math"
	"testing"
)

func TestAxisBasics(t *testing.T) {
	d := mustDataset(t, "scan")
	axis, err := d.CreateAxis("w1", []float64{700, 750, 800}, "nm", WithLabel("pump color"))
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}

	if axis.Len() != 3 {
		t.Errorf("Len = %d, want 3", axis.Len())
	}
	if axis.Units() != "nm" {
		t.Errorf("Units = %q, want nm", axis.Units())
	}
	if axis.Label() != "pump color" {
		t.Errorf("Label = %q, want pump color", axis.Label())
	}
	if axis.Min() != 700 || axis.Max() != 800 {
		t.Errorf("Min/Max = %v/%v, want 700/800", axis.Min(), axis.Max())
	}
	if axis.Path() != "/w1" {
		t.Errorf("Path = %q, want /w1", axis.Path())
	}
}

func TestAxisDefaultLabel(t *testing.T) {
	d := mustDataset(t, "scan")
	axis, err := d.CreateAxis("w1", []float64{1}, "nm")
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if axis.Label() != "w1 (nm)" {
		t.Errorf("Label = %q, want %q", axis.Label(), "w1 (nm)")
	}
}

func TestAxisValuesAreCopied(t *testing.T) {
	src := []float64{1, 2, 3}
	d := mustDataset(t, "scan")
	axis, err := d.CreateAxis("w1", src, "nm")
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}

	src[0] = 99
	if axis.At(0) != 1 {
		t.Error("axis aliases the caller's slice")
	}

	vals := axis.Values()
	vals[1] = 99
	if axis.At(1) != 2 {
		t.Error("Values returned the internal slice")
	}
}

func TestAxisConvert(t *testing.T) {
	d := mustDataset(t, "scan")
	points := make([]float64, 10)
	for i := range points {
		points[i] = 700 + 10*float64(i)
	}
	axis, err := d.CreateAxis("w1", points, "nm")
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}

	ev, err := axis.Convert("eV")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if ev.Units() != "eV" {
		t.Errorf("Units = %q, want eV", ev.Units())
	}
	if ev.Len() != 10 {
		t.Errorf("Len = %d, want 10", ev.Len())
	}
	if ev.Parent() != nil {
		t.Error("converted axis should be detached")
	}
	// Monotonically transformed: wavelength up, energy down.
	prev := math.Inf(1)
	for i := 0; i < ev.Len(); i++ {
		if ev.At(i) >= prev {
			t.Fatalf("energies not strictly decreasing: %v", ev.Values())
		}
		prev = ev.At(i)
	}
	// Original untouched.
	if axis.Units() != "nm" || axis.At(0) != 700 {
		t.Error("Convert mutated the source axis")
	}

	// Round trip within tolerance.
	back, err := ev.Convert("nm")
	if err != nil {
		t.Fatalf("Convert back failed: %v", err)
	}
	for i := 0; i < back.Len(); i++ {
		if math.Abs(back.At(i)-axis.At(i)) > 1e-9 {
			t.Errorf("round trip point %d: %v vs %v", i, back.At(i), axis.At(i))
		}
	}
}

func TestAxisConvertIncompatible(t *testing.T) {
	d := mustDataset(t, "scan")
	axis, err := d.CreateAxis("w1", []float64{800}, "nm")
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := axis.Convert("fs"); !errors.Is(err, ErrIncompatibleUnit) {
		t.Errorf("Convert error = %v, want ErrIncompatibleUnit", err)
	}
}

func TestAxisUnknownUnit(t *testing.T) {
	d := mustDataset(t, "scan")
	if _, err := d.CreateAxis("w1", []float64{1}, "parsecs"); err == nil {
		t.Error("expected error for unrecognized unit")
	}
}
