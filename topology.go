package main

// The installation is a radius-2 patch of a triangular lattice: 19 nodes and
// 42 LED segments. Nodes are addressed by axial coordinates; connection slots
// are the six lattice directions, numbered counterclockwise:
//
//	0: east  1: northeast  2: northwest  3: west  4: southwest  5: southeast
//
// The slot opposite d is always (d+3)%6, which buildNodeGraph verifies.
const (
	slotE = iota
	slotNE
	slotNW
	slotW
	slotSW
	slotSE
)

// absentNode marks an empty connection slot.
const absentNode = -1

// nodeAxial holds the axial (q, r) lattice coordinate of every node. Row
// order, r from -2 to 2, q ascending within each row.
var nodeAxial = [numNodes][2]int{
	{0, -2}, {1, -2}, {2, -2},
	{-1, -1}, {0, -1}, {1, -1}, {2, -1},
	{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	{-2, 1}, {-1, 1}, {0, 1}, {1, 1},
	{-2, 2}, {-1, 2}, {0, 2},
}

// segmentDef declares one realized edge: the segment runs logically from
// node a to node b, leaving a through the given slot. Node b's reciprocal
// slot is implied by the lattice geometry.
type segmentDef struct {
	a, b int
	slot int
}

// segmentTable is the build-time edge list, one entry per segment, grouped
// by lattice direction: east runs, then southeast, then southwest.
var segmentTable = [numSegments]segmentDef{
	// East runs (slot 0 from a).
	{0, 1, slotE}, {1, 2, slotE},
	{3, 4, slotE}, {4, 5, slotE}, {5, 6, slotE},
	{7, 8, slotE}, {8, 9, slotE}, {9, 10, slotE}, {10, 11, slotE},
	{12, 13, slotE}, {13, 14, slotE}, {14, 15, slotE},
	{16, 17, slotE}, {17, 18, slotE},

	// Southeast runs (slot 5 from a).
	{0, 4, slotSE}, {1, 5, slotSE}, {2, 6, slotSE},
	{3, 8, slotSE}, {4, 9, slotSE}, {5, 10, slotSE}, {6, 11, slotSE},
	{7, 12, slotSE}, {8, 13, slotSE}, {9, 14, slotSE}, {10, 15, slotSE},
	{12, 16, slotSE}, {13, 17, slotSE}, {14, 18, slotSE},

	// Southwest runs (slot 4 from a).
	{0, 3, slotSW}, {1, 4, slotSW}, {2, 5, slotSW},
	{3, 7, slotSW}, {4, 8, slotSW}, {5, 9, slotSW}, {6, 10, slotSW},
	{8, 12, slotSW}, {9, 13, slotSW}, {10, 14, slotSW}, {11, 15, slotSW},
	{13, 16, slotSW}, {14, 17, slotSW}, {15, 18, slotSW},
}

// Role subsets. Border nodes form the outer ring, cube nodes are the six
// interior nodes surrounding the center, and the starburst node is the
// lattice center itself (the only node wired in all six directions by
// construction, though starburst bursts never check).
var (
	borderNodes = []int{0, 1, 2, 3, 6, 7, 11, 12, 15, 16, 17, 18}
	cubeNodes   = []int{4, 5, 8, 10, 13, 14}
)

const starburstNode = 9

// ledAssignment maps one segment's 14 logical positions onto a physical
// strip. end may be less than start when the physical wiring runs against
// the segment's logical direction.
type ledAssignment struct {
	strip int
	start int
	end   int
}

// ledAssignments is the per-segment wiring table. Strips 0-2 carry eleven
// segments each, strip 3 carries nine; every other segment on a strip is
// soldered in reverse.
var ledAssignments = [numSegments]ledAssignment{
	{0, 0, 13}, {0, 27, 14}, {0, 28, 41}, {0, 55, 42}, {0, 56, 69},
	{0, 83, 70}, {0, 84, 97}, {0, 111, 98}, {0, 112, 125}, {0, 139, 126},
	{0, 140, 153},

	{1, 0, 13}, {1, 27, 14}, {1, 28, 41}, {1, 55, 42}, {1, 56, 69},
	{1, 83, 70}, {1, 84, 97}, {1, 111, 98}, {1, 112, 125}, {1, 139, 126},
	{1, 140, 153},

	{2, 0, 13}, {2, 27, 14}, {2, 28, 41}, {2, 55, 42}, {2, 56, 69},
	{2, 83, 70}, {2, 84, 97}, {2, 111, 98}, {2, 112, 125}, {2, 139, 126},
	{2, 140, 153},

	{3, 0, 13}, {3, 27, 14}, {3, 28, 41}, {3, 55, 42}, {3, 56, 69},
	{3, 83, 70}, {3, 84, 97}, {3, 111, 98}, {3, 112, 125},
}

// nodePosition converts a node's axial coordinate to unit-lattice cartesian
// coordinates (x grows east, y grows south, matching screen space).
func nodePosition(n int) (float64, float64) {
	q := float64(nodeAxial[n][0])
	r := float64(nodeAxial[n][1])
	return q + r/2, r * 0.8660254037844386
}
