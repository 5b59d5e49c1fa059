package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// screenSegment gives one segment's endpoint coordinates in an arbitrary
// planar space; the renderer normalizes them to the window.
type screenSegment struct {
	Segment int     `json:"segment"`
	X0      float64 `json:"x0"`
	Y0      float64 `json:"y0"`
	X1      float64 `json:"x1"`
	Y1      float64 `json:"y1"`
}

// screenLayout holds per-segment endpoints in window coordinates, ready for
// drawing. It is read only by the visualization, never by the simulation.
type screenLayout struct {
	segments [numSegments][4]float64
}

// loadScreenMap reads a JSON screen map produced by the installation's
// survey tooling. Entries referencing unknown segments are rejected;
// segments the file omits keep zeroed coordinates.
func loadScreenMap(path string) (*screenLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []screenSegment
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	layout := &screenLayout{}
	for _, e := range entries {
		if e.Segment < 0 || e.Segment >= numSegments {
			return nil, fmt.Errorf("screen map references segment %d (have %d)", e.Segment, numSegments)
		}
		layout.segments[e.Segment] = [4]float64{e.X0, e.Y0, e.X1, e.Y1}
	}
	layout.normalize()
	return layout, nil
}

// derivedLayout computes segment endpoints from the lattice geometry; used
// whenever no usable screen map is supplied.
func derivedLayout(g *nodeGraph) *screenLayout {
	layout := &screenLayout{}
	for seg := 0; seg < numSegments; seg++ {
		a, b := g.segmentEnds[seg][0], g.segmentEnds[seg][1]
		x0, y0 := nodePosition(a)
		x1, y1 := nodePosition(b)
		layout.segments[seg] = [4]float64{x0, y0, x1, y1}
	}
	layout.normalize()
	return layout
}

// normalize rescales all endpoints into window coordinates with a uniform
// margin.
func (l *screenLayout) normalize() {
	minX, minY := l.segments[0][0], l.segments[0][1]
	maxX, maxY := minX, minY
	for _, s := range l.segments {
		for _, p := range [][2]float64{{s[0], s[1]}, {s[2], s[3]}} {
			if p[0] < minX {
				minX = p[0]
			}
			if p[0] > maxX {
				maxX = p[0]
			}
			if p[1] < minY {
				minY = p[1]
			}
			if p[1] > maxY {
				maxY = p[1]
			}
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	const margin = 40.0
	scaleX := (windowW - 2*margin) / spanX
	scaleY := (windowH - 2*margin) / spanY
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	for i := range l.segments {
		s := &l.segments[i]
		s[0] = margin + (s[0]-minX)*scale
		s[1] = margin + (s[1]-minY)*scale
		s[2] = margin + (s[2]-minX)*scale
		s[3] = margin + (s[3]-minY)*scale
	}
}

// resolveLayout loads the flagged screen map, falling back to the derived
// lattice layout on any ingestion failure. The failure is logged and the
// simulation is unaffected.
func resolveLayout(g *nodeGraph) *screenLayout {
	if *screenMapFlag == "" {
		return derivedLayout(g)
	}
	layout, err := loadScreenMap(*screenMapFlag)
	if err != nil {
		log.Printf("Screen map unavailable, using derived layout: %v", err)
		return derivedLayout(g)
	}
	return layout
}
