package main

import (
	"math/rand"
	"time"
)

// pulseArchetype identifies one synthetic burst pattern.
type pulseArchetype int

const (
	patternSingle pulseArchetype = iota
	patternCube
	patternStarburst
)

// String names the archetype for the debug overlay and logs.
func (p pulseArchetype) String() string {
	switch p {
	case patternSingle:
		return "single"
	case patternCube:
		return "cube"
	case patternStarburst:
		return "starburst"
	}
	return "unknown"
}

// eventScheduler decides when and what to trigger. Live biometric readings
// drive heartbeat bursts; in their absence a timeout flips the scheduler
// into an autonomous mode that cycles through pulse archetypes.
type eventScheduler struct {
	graph  *nodeGraph
	engine *rippleEngine
	rng    *rand.Rand

	enabled []pulseArchetype

	// Heartbeat acceptance state.
	sinceBeatMs float64
	lastSample  time.Time
	gyroEMA     float64

	// Autonomous mode state.
	autoActive bool
	pulseMs    float64
	patternMs  float64
	current    pulseArchetype
	hasPattern bool

	// Reject-and-resample memory.
	lastSingleNode int
	lastCubeNode   int
}

// newEventScheduler builds a scheduler over the given engine. enabled lists
// the archetypes the autonomous mode may rotate through; an empty list
// disables autonomous bursts entirely. The heartbeat timeout is considered
// already expired at startup so an idle installation lights up immediately.
func newEventScheduler(graph *nodeGraph, engine *rippleEngine, rng *rand.Rand, enabled []pulseArchetype) *eventScheduler {
	return &eventScheduler{
		graph:          graph,
		engine:         engine,
		rng:            rng,
		enabled:        enabled,
		sinceBeatMs:    float64(autoPulseTimeout / time.Millisecond),
		lastSingleNode: -1,
		lastCubeNode:   -1,
	}
}

// tick advances the scheduler by elapsedMs. sample is the latest polled
// biometric reading; ok is false while no reading has ever arrived.
func (s *eventScheduler) tick(elapsedMs float64, sample bioSample, ok bool) {
	s.sinceBeatMs += elapsedMs
	if ok && !sample.When.Equal(s.lastSample) {
		s.lastSample = sample.When
		s.processSample(sample)
	}

	if s.sinceBeatMsBelowTimeout() {
		return
	}
	if len(s.enabled) == 0 {
		return
	}
	if !s.autoActive {
		s.autoActive = true
		s.chooseArchetype()
		s.patternMs = 0
		s.pulseMs = float64(autoPulseInterval / time.Millisecond)
	} else {
		s.pulseMs += elapsedMs
		s.patternMs += elapsedMs
	}
	if s.patternMs >= float64(patternChangeInterval/time.Millisecond) {
		s.chooseArchetype()
		s.patternMs = 0
	}
	if s.pulseMs >= float64(autoPulseInterval/time.Millisecond) {
		s.pulseMs = 0
		s.firePattern()
	}
}

func (s *eventScheduler) sinceBeatMsBelowTimeout() bool {
	return s.sinceBeatMs < float64(autoPulseTimeout/time.Millisecond)
}

// processSample folds one new reading into the motion filter and fires a
// heartbeat burst when the reading qualifies: pulse above threshold, gap
// from the prior accepted beat past the lockout, and smoothed angular rate
// below the motion-artifact ceiling.
func (s *eventScheduler) processSample(sample bioSample) {
	s.gyroEMA += gyroSmoothing * (sample.gyroMagnitude() - s.gyroEMA)
	if sample.Pulse < heartbeatThreshold {
		return
	}
	if s.sinceBeatMs <= float64(heartbeatLockout/time.Millisecond) {
		return
	}
	if s.gyroEMA >= gyroRejectThreshold {
		return
	}
	s.sinceBeatMs = 0
	s.autoActive = false
	s.fireHeartbeat(sample.SkinTempC)
}

// fireHeartbeat starts the fixed outward burst from the installation's
// center, colored and sized by skin temperature.
func (s *eventScheduler) fireHeartbeat(tempC float64) {
	color := temperatureColor(tempC)
	duration := heartbeatDurationMin + (heartbeatDurationMax-heartbeatDurationMin)*temperatureFraction(tempC)
	node := s.graph.starburst
	for slot := 0; slot < slotsPerNode; slot++ {
		if s.graph.connection(node, slot) == absentNode {
			continue
		}
		s.engine.start(node, slot, color, rippleSpeed, duration, turnLeft)
	}
}

// chooseArchetype re-selects the autonomous pattern uniformly among the
// enabled archetypes, rejecting the previous choice with a bounded number
// of resamples. With a single enabled archetype the previous choice wins by
// exhaustion, which is the intended degradation.
func (s *eventScheduler) chooseArchetype() {
	pick := s.enabled[s.rng.Intn(len(s.enabled))]
	if s.hasPattern {
		for attempt := 0; attempt < maxResampleAttempts && pick == s.current; attempt++ {
			pick = s.enabled[s.rng.Intn(len(s.enabled))]
		}
	}
	s.current = pick
	s.hasPattern = true
}

// firePattern emits one burst of the currently selected archetype.
func (s *eventScheduler) firePattern() {
	switch s.current {
	case patternSingle:
		s.fireSingle()
	case patternCube:
		s.fireCube()
	case patternStarburst:
		s.fireStarburst()
	}
}

// pickDifferent draws from candidates, resampling a bounded number of times
// to avoid repeating last.
func (s *eventScheduler) pickDifferent(candidates []int, last int) int {
	pick := candidates[s.rng.Intn(len(candidates))]
	for attempt := 0; attempt < maxResampleAttempts && pick == last; attempt++ {
		pick = candidates[s.rng.Intn(len(candidates))]
	}
	return pick
}

// fireSingle ripples outward from one random non-border node, left-turning,
// one random hue for the whole burst.
func (s *eventScheduler) fireSingle() {
	node := s.pickDifferent(s.graph.nonBorder, s.lastSingleNode)
	s.lastSingleNode = node
	color := hueToColor(s.rng.Float64() * 360)
	for slot := 0; slot < slotsPerNode; slot++ {
		if s.graph.connection(node, slot) == absentNode {
			continue
		}
		s.engine.start(node, slot, color, rippleSpeed, singleDurationMs, turnLeft)
	}
}

// fireCube bursts from one random cube-member node; the whole burst shares
// one randomly chosen turning behavior.
func (s *eventScheduler) fireCube() {
	node := s.pickDifferent(s.graph.cube, s.lastCubeNode)
	s.lastCubeNode = node
	behavior := s.randomBehavior()
	color := hueToColor(s.rng.Float64() * 360)
	for slot := 0; slot < slotsPerNode; slot++ {
		if s.graph.connection(node, slot) == absentNode {
			continue
		}
		s.engine.start(node, slot, color, rippleSpeed, cubeDurationMs, behavior)
	}
}

// fireStarburst always originates at the designated starburst node and
// fires all six directional slots without checking for a connection; the
// engine retires any ripple aimed at an absent slot before it moves. Hues
// spread evenly around the wheel, one per direction.
func (s *eventScheduler) fireStarburst() {
	behavior := s.randomBehavior()
	for slot := 0; slot < slotsPerNode; slot++ {
		color := hueToColor(float64(slot) * 360 / slotsPerNode)
		s.engine.start(s.graph.starburst, slot, color, starburstSpeed, burstDurationMs, behavior)
	}
}

func (s *eventScheduler) randomBehavior() rippleBehavior {
	if s.rng.Intn(2) == 0 {
		return turnLeft
	}
	return turnRight
}

// mode describes the scheduler state for the debug overlay.
func (s *eventScheduler) mode() string {
	if !s.autoActive {
		return "live"
	}
	return "auto/" + s.current.String()
}
