package hrtf

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSort_ByElevationThenAzimuth(t *testing.T) {
	t.Parallel()

	c := Catalog{
		{Elevation: 10, Azimuth: 5},
		{Elevation: -40, Azimuth: 72},
		{Elevation: 0, Azimuth: 355},
		{Elevation: -40, Azimuth: 0},
		{Elevation: 0, Azimuth: 0},
	}

	got := Sort(c)

	want := [][2]int{{-40, 0}, {-40, 72}, {0, 0}, {0, 355}, {10, 5}}
	for i, w := range want {
		if got[i].Elevation != w[0] || got[i].Azimuth != w[1] {
			t.Errorf("Sort()[%d] = {%d, %d}, want {%d, %d}",
				i, got[i].Elevation, got[i].Azimuth, w[0], w[1])
		}
	}

	// Input is untouched
	if c[0].Elevation != 10 {
		t.Error("Sort() modified its input")
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	t.Parallel()

	c := Catalog{
		{Elevation: 0, Azimuth: 5, Path: "first"},
		{Elevation: -10, Azimuth: 0, Path: "other"},
		{Elevation: 0, Azimuth: 5, Path: "second"},
	}

	got := Sort(c)
	if got[1].Path != "first" || got[2].Path != "second" {
		t.Errorf("Sort() order = %s, %s, want first, second", got[1].Path, got[2].Path)
	}
}

func TestSort_Empty(t *testing.T) {
	t.Parallel()

	if got := Sort(nil); len(got) != 0 {
		t.Errorf("Sort(nil) = %v, want empty", got)
	}
}

func TestSort_KeyOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 50).Draw(t, "n")
		c := make(Catalog, n)
		for i := range c {
			c[i] = OrientationEntry{
				Elevation: rapid.IntRange(-90, 90).Draw(t, "elevation"),
				Azimuth:   rapid.IntRange(0, 359).Draw(t, "azimuth"),
			}
		}

		got := Sort(c)
		if len(got) != len(c) {
			t.Fatalf("Sort() returned %d entries, want %d", len(got), len(c))
		}

		for i := 1; i < len(got); i++ {
			a, b := got[i-1], got[i]
			if a.Key() > b.Key() {
				t.Fatalf("entry %d key %d before entry %d key %d", i-1, a.Key(), i, b.Key())
			}
			// Within the 3 digit azimuth range the key orders by elevation first
			if a.Elevation > b.Elevation {
				t.Fatalf("elevation %d sorted before %d", a.Elevation, b.Elevation)
			}
		}
	})
}
