// node_graph_test.go - Tests for topology construction and validation

package main

import "testing"

// TestBuildNodeGraph builds the installation graph and checks the contract
// every other component relies on: reciprocal connections, consistent
// segment endpoints, and full coverage of the segment table.
func TestBuildNodeGraph(t *testing.T) {
	g, err := buildNodeGraph()
	if err != nil {
		t.Fatalf("buildNodeGraph: %v", err)
	}

	seen := make(map[int]int)
	for n := 0; n < numNodes; n++ {
		for s := 0; s < slotsPerNode; s++ {
			m := g.connection(n, s)
			if m == absentNode {
				if g.segmentAt(n, s) != -1 {
					t.Errorf("node %d slot %d: absent connection but segment %d", n, s, g.segmentAt(n, s))
				}
				continue
			}
			if g.connection(m, oppositeSlot(s)) != n {
				t.Errorf("node %d slot %d -> %d is not reciprocal", n, s, m)
			}
			seg := g.segmentAt(n, s)
			if seg < 0 || seg >= numSegments {
				t.Fatalf("node %d slot %d: segment %d out of range", n, s, seg)
			}
			ends := g.segmentEnds[seg]
			if !(ends[0] == n && ends[1] == m) && !(ends[0] == m && ends[1] == n) {
				t.Errorf("segment %d endpoints %v do not match nodes %d-%d", seg, ends, n, m)
			}
			seen[seg]++
		}
	}
	if len(seen) != numSegments {
		t.Fatalf("connection table references %d segments, want %d", len(seen), numSegments)
	}
	for seg, count := range seen {
		if count != 2 {
			t.Errorf("segment %d appears %d times in the slot tables, want 2", seg, count)
		}
	}
}

// TestRoleSubsets checks the role bookkeeping the trigger policies draw
// from.
func TestRoleSubsets(t *testing.T) {
	g, err := buildNodeGraph()
	if err != nil {
		t.Fatalf("buildNodeGraph: %v", err)
	}

	if len(g.nonBorder)+len(borderNodes) != numNodes {
		t.Errorf("border (%d) and non-border (%d) do not partition %d nodes",
			len(borderNodes), len(g.nonBorder), numNodes)
	}
	for _, n := range g.nonBorder {
		if g.border[n] {
			t.Errorf("node %d listed as both border and non-border", n)
		}
	}
	for _, n := range g.cube {
		if g.border[n] {
			t.Errorf("cube node %d is a border node", n)
		}
	}

	// The starburst archetype fires all six directions; at the designated
	// center they all exist by construction.
	for s := 0; s < slotsPerNode; s++ {
		if g.connection(g.starburst, s) == absentNode {
			t.Errorf("starburst node %d missing connection in slot %d", g.starburst, s)
		}
	}
}

// TestValidateLEDAssignments accepts the shipped table and rejects
// out-of-range and short-span records.
func TestValidateLEDAssignments(t *testing.T) {
	if err := validateLEDAssignments(ledAssignments[:], stripLengths[:]); err != nil {
		t.Fatalf("shipped LED assignments rejected: %v", err)
	}

	bad := []ledAssignment{{strip: 9, start: 0, end: 13}}
	if err := validateLEDAssignments(bad, stripLengths[:]); err == nil {
		t.Errorf("out-of-range strip accepted")
	}

	bad = []ledAssignment{{strip: 0, start: 150, end: 163}}
	if err := validateLEDAssignments(bad, stripLengths[:]); err == nil {
		t.Errorf("out-of-range end index accepted")
	}

	bad = []ledAssignment{{strip: 0, start: 0, end: 5}}
	if err := validateLEDAssignments(bad, stripLengths[:]); err == nil {
		t.Errorf("short mapping span accepted")
	}
}

// TestStripCapacity confirms the wiring table fills each strip exactly.
func TestStripCapacity(t *testing.T) {
	used := make([]map[int]bool, numStrips)
	for i := range used {
		used[i] = make(map[int]bool)
	}
	for seg, a := range ledAssignments {
		lo, hi := a.start, a.end
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := lo; i <= hi; i++ {
			if used[a.strip][i] {
				t.Fatalf("strip %d LED %d claimed twice (segment %d)", a.strip, i, seg)
			}
			used[a.strip][i] = true
		}
	}
	for strip, leds := range used {
		if len(leds) != stripLengths[strip] {
			t.Errorf("strip %d maps %d LEDs, capacity %d", strip, len(leds), stripLengths[strip])
		}
	}
}
