package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the installation: each segment as a dim guide line with its
// fourteen LEDs drawn from the composed physical strip arrays, node
// markers, and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{8, 8, 12, 255})

	guide := color.RGBA{28, 28, 36, 255}
	for seg := 0; seg < numSegments; seg++ {
		s := g.layout.segments[seg]
		vector.StrokeLine(screen, float32(s[0]), float32(s[1]), float32(s[2]), float32(s[3]), 1, guide, true)
		g.drawSegmentLEDs(screen, seg)
	}

	for n := 0; n < numNodes; n++ {
		g.drawNodeMarker(screen, n)
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		msg := fmt.Sprintf("FPS: %.1f / TPS: %.1f\nRipples: %d/%d\nScheduler: %s",
			fps, tps, g.engine.liveCount(), ripplePoolSize, g.scheduler.mode())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// drawSegmentLEDs plots each logical LED position of a segment along its
// screen line, colored straight from the physical strip bytes so the
// window shows exactly what the hardware would.
func (g *Game) drawSegmentLEDs(screen *ebiten.Image, seg int) {
	s := g.layout.segments[seg]
	a := ledAssignments[seg]
	for pos := 0; pos < ledsPerSegment; pos++ {
		t := float64(pos) / float64(ledsPerSegment-1)
		x := s[0] + (s[2]-s[0])*t
		y := s[1] + (s[3]-s[1])*t
		c := g.composer.ledColor(a.strip, physicalIndex(a, pos))
		if c[0] == 0 && c[1] == 0 && c[2] == 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2.2,
			color.RGBA{c[0], c[1], c[2], 255}, true)
	}
}

// drawNodeMarker renders one lattice node; the starburst center gets a
// brighter ring.
func (g *Game) drawNodeMarker(screen *ebiten.Image, n int) {
	x, y := g.nodeScreenPosition(n)
	clr := color.RGBA{60, 60, 76, 255}
	if n == g.graph.starburst {
		clr = color.RGBA{140, 120, 60, 255}
	}
	vector.StrokeCircle(screen, float32(x), float32(y), nodeMarkerRad, 1, clr, true)
}

// nodeScreenPosition recovers a node's screen coordinate from any segment
// touching it; the layout stores endpoints per segment, logical a first.
func (g *Game) nodeScreenPosition(n int) (float64, float64) {
	for seg := 0; seg < numSegments; seg++ {
		ends := g.graph.segmentEnds[seg]
		s := g.layout.segments[seg]
		if ends[0] == n {
			return s[0], s[1]
		}
		if ends[1] == n {
			return s[2], s[3]
		}
	}
	return 0, 0
}
