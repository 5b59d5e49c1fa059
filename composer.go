package main

import "math"

// frameComposer maps the abstract accumulator onto the physical per-strip
// LED arrays through the per-segment wiring table. It is a pure function of
// the accumulator and the static mapping; the strip arrays are its only
// output.
type frameComposer struct {
	assignments [numSegments]ledAssignment
	strips      [numStrips][]uint8 // RGB bytes per physical LED
}

// newFrameComposer allocates strip arrays sized from stripLengths.
func newFrameComposer() *frameComposer {
	c := &frameComposer{assignments: ledAssignments}
	for i, n := range stripLengths {
		c.strips[i] = make([]uint8, n*numChannels)
	}
	return c
}

// physicalIndex resolves a segment's logical LED position to the physical
// index on its strip, interpolating linearly across [start, end]. end below
// start runs the wiring in reverse.
func physicalIndex(a ledAssignment, pos int) int {
	t := float64(pos) / float64(ledsPerSegment-1)
	return a.start + int(math.Round(float64(a.end-a.start)*t))
}

// compose writes the accumulator into the physical strip arrays. Mapping
// records were validated at startup, so indices are trusted here.
func (c *frameComposer) compose(field *colorField) {
	for seg := 0; seg < numSegments; seg++ {
		a := c.assignments[seg]
		strip := c.strips[a.strip]
		for pos := 0; pos < ledsPerSegment; pos++ {
			src := field.index(seg, pos)
			dst := physicalIndex(a, pos) * numChannels
			strip[dst] = field.data[src]
			strip[dst+1] = field.data[src+1]
			strip[dst+2] = field.data[src+2]
		}
	}
}

// ledColor reads one physical LED's RGB triple from a strip array.
func (c *frameComposer) ledColor(strip, index int) [numChannels]uint8 {
	i := index * numChannels
	s := c.strips[strip]
	return [numChannels]uint8{s[i], s[i+1], s[i+2]}
}
