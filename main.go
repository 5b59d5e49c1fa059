package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	if *recordProfileFlag != "" {
		stop, err := startCPUProfile(*recordProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile setup failed: %v", err)
		}
		defer stop()
	}

	var bio bioSource
	switch {
	case *syntheticBioFlag:
		bio = newSyntheticBioSource()
		log.Printf("Using synthetic biometric source")
	case *bioListenFlag != "":
		src, err := newUDPBioSource(*bioListenFlag)
		if err != nil {
			log.Fatalf("Biometric listener failed on %s: %v", *bioListenFlag, err)
		}
		defer src.Close()
		bio = src
		log.Printf("Listening for biometric readings on %s", *bioListenFlag)
	}

	sink := openFrameSink()
	if closer, ok := sink.(*serialSink); ok {
		defer closer.Close()
	}

	g := newGame(bio, sink)

	if *headlessFlag {
		if err := g.runHeadless(); err != nil {
			log.Fatalf("Tick loop failed: %v", err)
		}
		return
	}

	ebiten.SetWindowSize(windowW*windowScale, windowH*windowScale)
	ebiten.SetWindowTitle("Hexglow")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
