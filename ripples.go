package main

// rippleBehavior selects the turning policy applied when a ripple crosses
// a node. Values are passed as these named constants only.
type rippleBehavior int

const (
	turnLeft rippleBehavior = iota
	turnRight
)

// rippleState distinguishes free pool slots from traveling pulses.
type rippleState int

const (
	rippleDead rippleState = iota
	rippleAlive
)

// segmentSpan is the length of one segment in logical position units.
const segmentSpan = float64(ledsPerSegment)

// ripple is one pooled traveling-pulse record. Records are never allocated
// or freed after startup; start reinitializes a Dead slot in place.
type ripple struct {
	state    rippleState
	node     int  // node most recently departed
	slot     int  // exit slot at that node
	segment  int  // segment currently traversed
	forward  bool // traveling from the segment's logical a toward b
	progress float64
	speed    float64 // logical positions per second
	remainMs float64
	totalMs  float64
	behavior rippleBehavior
	color    [numChannels]uint8
}

// tailWeights shape the leading-edge deposit: head first, trailing
// positions dimmer.
var tailWeights = [rippleTailLength]float64{1.0, 0.55, 0.25}

// rippleEngine advances the fixed pool of ripples and owns their writes
// into the shared accumulator.
type rippleEngine struct {
	graph *nodeGraph
	field *colorField
	pool  [ripplePoolSize]ripple
}

// newRippleEngine creates an engine with an all-Dead pool.
func newRippleEngine(graph *nodeGraph, field *colorField) *rippleEngine {
	return &rippleEngine{graph: graph, field: field}
}

// start reinitializes the first Dead pool slot as a ripple leaving node
// through slot. When every slot is Alive the trigger is silently dropped;
// the pool never grows and the tick loop never blocks on it. Starting into
// an absent connection (the starburst archetype does this deliberately)
// consumes nothing: the ripple is Dead before any movement.
func (e *rippleEngine) start(node, slot int, color [numChannels]uint8, speed, durationMs float64, behavior rippleBehavior) {
	var r *ripple
	for i := range e.pool {
		if e.pool[i].state == rippleDead {
			r = &e.pool[i]
			break
		}
	}
	if r == nil {
		return // pool exhausted
	}
	seg := e.graph.segmentAt(node, slot)
	if seg < 0 {
		return
	}
	ends := e.graph.segmentEnds[seg]
	*r = ripple{
		state:    rippleAlive,
		node:     node,
		slot:     slot,
		segment:  seg,
		forward:  ends[0] == node,
		progress: 0,
		speed:    speed,
		remainMs: durationMs,
		totalMs:  durationMs,
		behavior: behavior,
		color:    color,
	}
}

// advance moves every Alive ripple by speed x elapsed, resolving node
// crossings through the turning policy, then deposits each survivor's
// leading edge into the accumulator. decay must already have run this tick.
func (e *rippleEngine) advance(elapsedMs float64) {
	if elapsedMs <= 0 {
		return
	}
	for i := range e.pool {
		r := &e.pool[i]
		if r.state != rippleAlive {
			continue
		}
		r.remainMs -= elapsedMs
		r.progress += r.speed * elapsedMs / 1000.0
		for r.progress >= segmentSpan {
			r.progress -= segmentSpan
			if !e.crossNode(r) {
				r.state = rippleDead
				break
			}
		}
		if r.state == rippleAlive {
			e.depositRipple(r)
		}
	}
}

// crossNode advances r across the node at the far end of its current
// segment. It reports false when the ripple terminates there, either by
// duration expiry or because the turning policy finds no open slot.
func (e *rippleEngine) crossNode(r *ripple) bool {
	ends := e.graph.segmentEnds[r.segment]
	arrival := ends[0]
	if r.forward {
		arrival = ends[1]
	}
	if r.remainMs <= 0 {
		return false
	}
	entered := oppositeSlot(r.slot)
	next := e.graph.nextSlot(arrival, entered, r.behavior)
	if next < 0 {
		return false // dead end
	}
	seg := e.graph.segmentAt(arrival, next)
	r.node = arrival
	r.slot = next
	r.segment = seg
	r.forward = e.graph.segmentEnds[seg][0] == arrival
	return true
}

// depositRipple writes the pulse's leading edge into the accumulator:
// the head position at full weight, trailing positions tapering, the whole
// profile fading with remaining duration.
func (e *rippleEngine) depositRipple(r *ripple) {
	fade := r.remainMs / r.totalMs
	if fade <= 0 {
		return
	}
	if fade > 1 {
		fade = 1
	}
	head := int(r.progress)
	if head > ledsPerSegment-1 {
		head = ledsPerSegment - 1
	}
	for t := 0; t < rippleTailLength; t++ {
		travel := head - t
		if travel < 0 {
			break
		}
		pos := travel
		if !r.forward {
			pos = ledsPerSegment - 1 - travel
		}
		e.field.deposit(r.segment, pos, r.color, fade*tailWeights[t])
	}
}

// decay drains the accumulator. Called exactly once per tick, strictly
// before advance, so freshly deposited energy survives its first tick.
func (e *rippleEngine) decay(factor float64) {
	e.field.decay(factor)
}

// liveCount reports the number of Alive pool slots.
func (e *rippleEngine) liveCount() int {
	n := 0
	for i := range e.pool {
		if e.pool[i].state == rippleAlive {
			n++
		}
	}
	return n
}
