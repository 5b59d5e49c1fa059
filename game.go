package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTickMs caps the elapsed time fed into one simulation step so a paused
// or backgrounded window cannot jump every ripple across the graph at once.
const maxTickMs = 100.0

// Game owns the full simulation context: graph, accumulator, ripple pool,
// scheduler, composer, draw buffer, and the collaborating sources and
// sinks. All mutation happens inside step, once per tick.
type Game struct {
	graph     *nodeGraph
	field     *colorField
	engine    *rippleEngine
	scheduler *eventScheduler
	composer  *frameComposer
	drawBuf   *rectangularDrawBuffer
	sink      frameSink
	bio       bioSource
	layout    *screenLayout

	decay    float64
	lastTick time.Time

	// Debug-hotkey heartbeat injection.
	injectedBeat time.Time
}

// newGame wires the simulation context together. Topology or mapping
// defects abort here; they are configuration bugs, not runtime conditions.
func newGame(bio bioSource, sink frameSink) *Game {
	graph, err := buildNodeGraph()
	if err != nil {
		log.Fatalf("Topology validation failed: %v", err)
	}
	field := newColorField()
	engine := newRippleEngine(graph, field)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var enabled []pulseArchetype
	if *enableSingleFlag {
		enabled = append(enabled, patternSingle)
	}
	if *enableCubeFlag {
		enabled = append(enabled, patternCube)
	}
	if *enableStarburstFlag {
		enabled = append(enabled, patternStarburst)
	}

	decay := *decayFlag
	if decay <= 0 || decay > 1 {
		log.Printf("Ignoring out-of-range decay %v, using %v", decay, defaultDecay)
		decay = defaultDecay
	}

	return &Game{
		graph:     graph,
		field:     field,
		engine:    engine,
		scheduler: newEventScheduler(graph, engine, rng, enabled),
		composer:  newFrameComposer(),
		drawBuf:   newRectangularDrawBuffer(),
		sink:      sink,
		bio:       bio,
		layout:    resolveLayout(graph),
		decay:     decay,
	}
}

// step runs one simulation tick: poll the latest biometric reading, let the
// scheduler trigger, decay then advance the accumulator, compose the
// physical arrays, and stage the frame for output.
func (g *Game) step(now time.Time) error {
	if g.lastTick.IsZero() {
		g.lastTick = now
	}
	elapsedMs := now.Sub(g.lastTick).Seconds() * 1000
	g.lastTick = now
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > maxTickMs {
		elapsedMs = maxTickMs
	}

	sample, ok := g.pollBiometrics()
	g.scheduler.tick(elapsedMs, sample, ok)
	g.engine.decay(g.decay)
	g.engine.advance(elapsedMs)
	g.composer.compose(g.field)
	if err := stageFrame(g.drawBuf, g.composer); err != nil {
		return err
	}
	return g.sink.writeFrame(g.drawBuf)
}

// pollBiometrics fetches the latest reading, overriding it with a strong
// synthetic beat when the debug hotkey fired this tick.
func (g *Game) pollBiometrics() (bioSample, bool) {
	if !g.injectedBeat.IsZero() {
		beat := bioSample{When: g.injectedBeat, Pulse: 1, SkinTempC: 34}
		g.injectedBeat = time.Time{}
		return beat, true
	}
	if g.bio == nil {
		return bioSample{}, false
	}
	return g.bio.Latest()
}

// Update advances the simulation by one display tick.
func (g *Game) Update() error {
	g.handleDebugControls()
	return g.step(time.Now())
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return windowW, windowH }

// handleDebugControls processes the debug hotkeys: H injects a heartbeat,
// Space fires one burst of the current archetype immediately.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.injectedBeat = time.Now()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scheduler.firePattern()
	}
}

// runHeadless drives the same tick function from a wall-clock ticker when
// no window is wanted.
func (g *Game) runHeadless() error {
	ticker := time.NewTicker(time.Second / defaultTPS)
	defer ticker.Stop()
	for now := range ticker.C {
		if err := g.step(now); err != nil {
			return err
		}
	}
	return nil
}
