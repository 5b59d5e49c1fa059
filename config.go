package main

import "time"

// Simulation, topology, and output configuration constants used throughout
// the application. These values define the installation geometry, tick
// timing, and trigger policy for the ripple simulation.
const (
	numNodes       = 19
	numSegments    = 42
	slotsPerNode   = 6
	ledsPerSegment = 14
	numChannels    = 3
	numStrips      = 4

	ripplePoolSize   = 30
	rippleSpeed      = 24.0 // logical LED positions per second
	rippleTailLength = 3    // leading-edge deposit footprint
	defaultDecay     = 0.94 // accumulator retention per tick
	singleDurationMs = 3000.0
	cubeDurationMs   = 3500.0
	starburstSpeed   = 30.0
	burstDurationMs  = 4000.0

	heartbeatThreshold   = 0.5 // normalized pulse-sensor intensity
	heartbeatLockout     = 500 * time.Millisecond
	gyroRejectThreshold  = 0.8 // rad/s, smoothed magnitude
	gyroSmoothing        = 0.2 // EMA coefficient per sample
	skinTempCoolC        = 31.0
	skinTempWarmC        = 37.0
	heartbeatDurationMin = 2500.0 // ms at coolest skin temperature
	heartbeatDurationMax = 4500.0 // ms at warmest skin temperature

	autoPulseTimeout      = 30 * time.Second
	autoPulseInterval     = 4 * time.Second
	patternChangeInterval = 30 * time.Second
	maxResampleAttempts   = 8

	defaultTPS    = 60.0
	windowW       = 640
	windowH       = 640
	windowScale   = 1
	nodeMarkerRad = 3.0

	frameHeaderMagic = 0x48474C57 // "HGLW"
)

// stripLengths lists the physical LED count carried by each output strip.
var stripLengths = [numStrips]int{154, 154, 154, 126}

// stripPins assigns the hardware output pin driving each strip.
var stripPins = [numStrips]uint8{16, 17, 18, 19}
