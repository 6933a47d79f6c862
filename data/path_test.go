package data

import (
	"errors"
	"testing"
)

func TestParseAttrPath(t *testing.T) {
	tests := []struct {
		path       string
		objectPath string
		attrName   string
		wantErr    bool
	}{
		{"/@created", "/", "created", false},
		{"/signal@units", "/signal", "units", false},
		{"/raw/signal@calibration", "/raw/signal", "calibration", false},
		{"signal@units", "/signal", "units", false},
		{"/signal", "", "", true},
		{"/signal@", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		objectPath, attrName, err := ParseAttrPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAttrPath(%q) succeeded, want error", tt.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAttrPath(%q) failed: %v", tt.path, err)
			continue
		}
		if objectPath != tt.objectPath || attrName != tt.attrName {
			t.Errorf("ParseAttrPath(%q) = %q, %q; want %q, %q",
				tt.path, objectPath, attrName, tt.objectPath, tt.attrName)
		}
	}
}

func TestJoinAttrPath(t *testing.T) {
	if got := JoinAttrPath("/", "created"); got != "/@created" {
		t.Errorf("JoinAttrPath(/, created) = %q", got)
	}
	if got := JoinAttrPath("/raw/signal", "units"); got != "/raw/signal@units" {
		t.Errorf("JoinAttrPath = %q", got)
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	if parts := SplitPath("/"); len(parts) != 0 {
		t.Errorf("SplitPath(/) = %v, want empty", parts)
	}
	parts := SplitPath("/foo/bar/")
	if len(parts) != 2 || parts[0] != "foo" || parts[1] != "bar" {
		t.Errorf("SplitPath = %v, want [foo bar]", parts)
	}

	if got := CleanPath(""); got != "/" {
		t.Errorf("CleanPath(\"\") = %q, want /", got)
	}
	if got := CleanPath("foo/bar/"); got != "/foo/bar" {
		t.Errorf("CleanPath = %q, want /foo/bar", got)
	}
}

func TestLookup(t *testing.T) {
	d := mustDataset(t, "scan")
	raw, err := d.CreateGroup("raw")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	axis, err := raw.CreateAxis("w1", []float64{1, 2}, "nm")
	if err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}

	node, err := d.Lookup("/raw/w1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if node != Node(axis) {
		t.Error("Lookup returned wrong node")
	}

	if self, err := d.Lookup("/"); err != nil || self != Node(d.Root()) {
		t.Errorf("Lookup(/) = %v, %v; want the root", self, err)
	}

	if _, err := d.Lookup("/raw/ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup missing error = %v, want ErrNotFound", err)
	}
	if _, err := d.Lookup("/raw/w1/deeper"); !errors.Is(err, ErrNotGroup) {
		t.Errorf("Lookup through axis error = %v, want ErrNotGroup", err)
	}
}

func TestLookupAttr(t *testing.T) {
	d := mustDataset(t, "scan")
	raw, err := d.CreateGroup("raw")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if err := raw.SetAttr("shots", int64(200)); err != nil {
		t.Fatalf("SetAttr failed: %v", err)
	}

	v, err := d.LookupAttr("/raw@shots")
	if err != nil {
		t.Fatalf("LookupAttr failed: %v", err)
	}
	if v != int64(200) {
		t.Errorf("LookupAttr = %v, want 200", v)
	}

	if _, err := d.LookupAttr("/raw@ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupAttr missing error = %v, want ErrNotFound", err)
	}
}

func TestDatasetSource(t *testing.T) {
	d := mustDataset(t, "scan")
	d.SetSource("/data/2016-02-07/w1_wa_000.wt5")
	if d.Source() != "/data/2016-02-07/w1_wa_000.wt5" {
		t.Errorf("Source = %q", d.Source())
	}
	if d.Name() != "scan" {
		t.Errorf("Name = %q, want scan", d.Name())
	}
	if d.Path() != "/" {
		t.Errorf("Path = %q, want /", d.Path())
	}
}

func TestCollection(t *testing.T) {
	c, err := NewCollection("experiment")
	if err != nil {
		t.Fatalf("NewCollection failed: %v", err)
	}

	d1, err := c.CreateDataset("run000")
	if err != nil {
		t.Fatalf("CreateDataset failed: %v", err)
	}
	if _, err := c.CreateDataset("run001"); err != nil {
		t.Fatalf("CreateDataset failed: %v", err)
	}
	if _, err := c.CreateDataset("run000"); !errors.Is(err, ErrNameCollision) {
		t.Errorf("duplicate CreateDataset error = %v, want ErrNameCollision", err)
	}

	got, err := c.Dataset("run000")
	if err != nil {
		t.Fatalf("Dataset failed: %v", err)
	}
	if got != d1 {
		t.Error("Dataset returned wrong object")
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "run000" || names[1] != "run001" {
		t.Errorf("Names = %v", names)
	}

	if err := c.Remove("run000"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := c.Dataset("run000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Dataset after Remove error = %v, want ErrNotFound", err)
	}
	if err := c.Remove("run000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove error = %v, want ErrNotFound", err)
	}
}
