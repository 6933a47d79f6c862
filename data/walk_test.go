package data

import (
	"testing"
)

func walkFixture(t *testing.T) *Dataset {
	t.Helper()
	d := mustDataset(t, "scan")
	raw, err := d.CreateGroup("raw")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if _, err := raw.CreateAxis("w1", []float64{1, 2}, "nm"); err != nil {
		t.Fatalf("CreateAxis failed: %v", err)
	}
	if _, err := raw.CreateChannel("signal", []int{2}, "a.u."); err != nil {
		t.Fatalf("CreateChannel failed: %v", err)
	}
	if _, err := d.CreateGroup("processed"); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return d
}

func TestWalk(t *testing.T) {
	d := walkFixture(t)

	var paths []string
	err := Walk(d.Root(), func(path string, node Node) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"/", "/raw", "/raw/w1", "/raw/signal", "/processed"}
	if len(paths) != len(want) {
		t.Fatalf("visited %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestWalkStop(t *testing.T) {
	d := walkFixture(t)

	count := 0
	err := Walk(d.Root(), func(path string, node Node) error {
		count++
		if count == 2 {
			return ErrStopWalk
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk with stop returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("visited %d nodes after stop, want 2", count)
	}
}

func TestWalkNodeKinds(t *testing.T) {
	d := walkFixture(t)

	groups, axes, channels := 0, 0, 0
	err := Walk(d.Root(), func(path string, node Node) error {
		switch node.(type) {
		case *Group:
			groups++
		case *Axis:
			axes++
		case *Channel:
			channels++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if groups != 3 || axes != 1 || channels != 1 {
		t.Errorf("counts = %d/%d/%d, want 3 groups, 1 axis, 1 channel", groups, axes, channels)
	}
}

func TestWalkAttrs(t *testing.T) {
	d := walkFixture(t)
	if err := d.SetAttr("created", "2016-02-07"); err != nil {
		t.Fatalf("SetAttr failed: %v", err)
	}
	raw, _ := d.GetGroup("raw")
	if err := raw.SetAttr("shots", int64(100)); err != nil {
		t.Fatalf("SetAttr failed: %v", err)
	}

	found := make(map[string]interface{})
	err := WalkAttrs(d.Root(), func(info AttrInfo) error {
		found[info.Path] = info.Value
		return nil
	})
	if err != nil {
		t.Fatalf("WalkAttrs failed: %v", err)
	}

	if found["/@created"] != "2016-02-07" {
		t.Errorf("found = %v, want /@created", found)
	}
	if found["/raw@shots"] != int64(100) {
		t.Errorf("found = %v, want /raw@shots = 100", found)
	}
}
