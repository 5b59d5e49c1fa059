package main

import "flag"

// Command-line flags that control optional rendering, output, and runtime
// behavior. Trigger-policy tuning stays in config.go; flags cover the knobs
// that differ between a gallery deployment and a desk test.
var (
	// headlessFlag runs the tick loop without opening a window.
	headlessFlag = flag.Bool("headless", false, "run without a visualization window")

	// debugFlag enables the FPS and scheduler state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, ripple, and scheduler overlay")

	// decayFlag adjusts how much accumulator energy survives each tick.
	decayFlag = flag.Float64("decay", defaultDecay, "accumulator retention factor per tick (0-1]")

	// screenMapFlag points at the optional JSON layout used for visualization.
	screenMapFlag = flag.String("screen-map", "", "path to a JSON screen map with per-segment coordinates")

	// serialDeviceFlag enables hardware output through a serial device file.
	serialDeviceFlag = flag.String("serial-device", "", "device file receiving framed LED data (empty disables output)")

	// bioListenFlag sets the UDP address polled for biometric readings.
	bioListenFlag = flag.String("bio-listen", "", "UDP listen address for biometric readings (empty disables)")

	// syntheticBioFlag substitutes a scripted biometric source for live input.
	syntheticBioFlag = flag.Bool("synthetic-bio", false, "drive the scheduler from a synthetic heartbeat source")

	// enableSingleFlag, enableCubeFlag, and enableStarburstFlag select which
	// auto-pulse archetypes the scheduler may rotate through.
	enableSingleFlag    = flag.Bool("pattern-single", true, "enable the single-node auto-pulse archetype")
	enableCubeFlag      = flag.Bool("pattern-cube", true, "enable the cube auto-pulse archetype")
	enableStarburstFlag = flag.Bool("pattern-starburst", true, "enable the starburst auto-pulse archetype")

	// recordProfileFlag captures a CPU profile for the run's duration.
	recordProfileFlag = flag.String("cpu-profile", "", "write a CPU profile to the given path")
)
