package main

import "fmt"

// nodeGraph is the immutable topology: per-node directional connection
// slots, the segment realizing each connection, and the role subsets used
// by the trigger policies. Built once at startup; any inconsistency in the
// tables is a configuration defect and aborts the build.
type nodeGraph struct {
	connections [numNodes][slotsPerNode]int // neighbor id or absentNode
	segments    [numNodes][slotsPerNode]int // segment id or -1
	segmentEnds [numSegments][2]int         // logical a, b per segment

	border    [numNodes]bool
	cube      []int
	nonBorder []int
	starburst int
}

// oppositeSlot returns the slot a ripple arrives through at the far node
// when it departed through slot d.
func oppositeSlot(d int) int {
	return (d + 3) % slotsPerNode
}

// buildNodeGraph assembles and validates the graph from the build-time
// tables in topology.go.
func buildNodeGraph() (*nodeGraph, error) {
	g := &nodeGraph{starburst: starburstNode}
	for n := 0; n < numNodes; n++ {
		for s := 0; s < slotsPerNode; s++ {
			g.connections[n][s] = absentNode
			g.segments[n][s] = -1
		}
	}

	for id, def := range segmentTable {
		if def.a < 0 || def.a >= numNodes || def.b < 0 || def.b >= numNodes {
			return nil, fmt.Errorf("segment %d: node out of range (%d-%d)", id, def.a, def.b)
		}
		if def.slot < 0 || def.slot >= slotsPerNode {
			return nil, fmt.Errorf("segment %d: slot %d out of range", id, def.slot)
		}
		back := oppositeSlot(def.slot)
		if g.connections[def.a][def.slot] != absentNode {
			return nil, fmt.Errorf("segment %d: node %d slot %d already wired", id, def.a, def.slot)
		}
		if g.connections[def.b][back] != absentNode {
			return nil, fmt.Errorf("segment %d: node %d slot %d already wired", id, def.b, back)
		}
		g.connections[def.a][def.slot] = def.b
		g.connections[def.b][back] = def.a
		g.segments[def.a][def.slot] = id
		g.segments[def.b][back] = id
		g.segmentEnds[id] = [2]int{def.a, def.b}
	}

	for _, n := range borderNodes {
		if n < 0 || n >= numNodes {
			return nil, fmt.Errorf("border node %d out of range", n)
		}
		g.border[n] = true
	}
	for _, n := range cubeNodes {
		if n < 0 || n >= numNodes {
			return nil, fmt.Errorf("cube node %d out of range", n)
		}
		if g.border[n] {
			return nil, fmt.Errorf("cube node %d is also a border node", n)
		}
	}
	g.cube = append([]int(nil), cubeNodes...)
	if starburstNode < 0 || starburstNode >= numNodes {
		return nil, fmt.Errorf("starburst node %d out of range", starburstNode)
	}
	for n := 0; n < numNodes; n++ {
		if !g.border[n] {
			g.nonBorder = append(g.nonBorder, n)
		}
	}

	if err := validateLEDAssignments(ledAssignments[:], stripLengths[:]); err != nil {
		return nil, err
	}
	return g, nil
}

// validateLEDAssignments checks every LED mapping record against the
// physical strip lengths. An out-of-range reference here would corrupt a
// neighboring segment's pixels at runtime, so it is rejected up front.
func validateLEDAssignments(assignments []ledAssignment, lengths []int) error {
	for seg, a := range assignments {
		if a.strip < 0 || a.strip >= len(lengths) {
			return fmt.Errorf("segment %d: strip %d out of range", seg, a.strip)
		}
		n := lengths[a.strip]
		if a.start < 0 || a.start >= n || a.end < 0 || a.end >= n {
			return fmt.Errorf("segment %d: strip %d indices [%d,%d] exceed %d LEDs",
				seg, a.strip, a.start, a.end, n)
		}
		span := a.end - a.start
		if span < 0 {
			span = -span
		}
		if span != ledsPerSegment-1 {
			return fmt.Errorf("segment %d: mapping spans %d LEDs, want %d",
				seg, span+1, ledsPerSegment)
		}
	}
	return nil
}

// connection returns the neighbor reached through the given slot, or
// absentNode.
func (g *nodeGraph) connection(node, slot int) int {
	return g.connections[node][slot]
}

// segmentAt returns the segment realizing the given node slot, or -1.
func (g *nodeGraph) segmentAt(node, slot int) int {
	return g.segments[node][slot]
}

// nextSlot applies the turning policy at a node. enteredSlot is the slot
// the ripple arrived through; the scan covers up to six candidate slots,
// ending with the entered slot itself, and returns -1 when every direction
// is absent (a dead end).
func (g *nodeGraph) nextSlot(node, enteredSlot int, behavior rippleBehavior) int {
	for i := 1; i <= slotsPerNode; i++ {
		var s int
		switch behavior {
		case turnLeft:
			s = (enteredSlot + i) % slotsPerNode
		case turnRight:
			s = (enteredSlot - i + 2*slotsPerNode) % slotsPerNode
		}
		if g.connections[node][s] != absentNode {
			return s
		}
	}
	return -1
}
