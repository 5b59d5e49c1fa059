// screen_map_test.go - Tests for screen-map ingestion and layout fallback

package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadScreenMapValid parses a small survey file and expects normalized
// window coordinates.
func TestLoadScreenMapValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	data := `[
		{"segment": 0, "x0": 0, "y0": 0, "x1": 100, "y1": 0},
		{"segment": 1, "x0": 100, "y0": 0, "x1": 100, "y1": 100}
	]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	layout, err := loadScreenMap(path)
	if err != nil {
		t.Fatalf("loadScreenMap: %v", err)
	}
	for seg, s := range layout.segments {
		for i, v := range s {
			if v < 0 || v > windowW {
				t.Fatalf("segment %d coord %d = %v outside the window", seg, i, v)
			}
		}
	}
}

// TestLoadScreenMapMalformed rejects unparseable input with an error the
// caller logs; the simulation keeps running on the derived layout.
func TestLoadScreenMapMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := loadScreenMap(path); err == nil {
		t.Fatalf("malformed screen map accepted")
	}
}

// TestLoadScreenMapUnknownSegment rejects references outside the segment
// table; shipping such a file is a configuration defect to catch before
// deployment.
func TestLoadScreenMapUnknownSegment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	data := `[{"segment": 99, "x0": 0, "y0": 0, "x1": 1, "y1": 1}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := loadScreenMap(path); err == nil {
		t.Fatalf("screen map referencing segment 99 accepted")
	}
}

// TestLoadScreenMapMissing surfaces a missing file as an error.
func TestLoadScreenMapMissing(t *testing.T) {
	if _, err := loadScreenMap(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("missing screen map accepted")
	}
}

// TestDerivedLayout checks the lattice fallback: every segment gets
// distinct endpoints inside the window.
func TestDerivedLayout(t *testing.T) {
	g, err := buildNodeGraph()
	if err != nil {
		t.Fatalf("buildNodeGraph: %v", err)
	}
	layout := derivedLayout(g)
	for seg, s := range layout.segments {
		if s[0] == s[2] && s[1] == s[3] {
			t.Errorf("segment %d collapsed to a point", seg)
		}
		for i, v := range s {
			if v < 0 || v > windowW {
				t.Errorf("segment %d coord %d = %v outside the window", seg, i, v)
			}
		}
	}
}
