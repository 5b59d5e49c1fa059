package main

import (
	"encoding/binary"
	"log"
	"os"
)

// frameSink consumes one staged rectangular frame per tick. The sink must
// treat each pin's slice as exclusively owned until the next tick begins.
type frameSink interface {
	writeFrame(b *rectangularDrawBuffer) error
}

// stageFrame runs the draw buffer's two-phase protocol for the current
// tick: queue every strip, size the block, then copy the composed strip
// bytes into each pin's slice.
func stageFrame(b *rectangularDrawBuffer, c *frameComposer) error {
	b.startQueueing()
	for i := 0; i < numStrips; i++ {
		if err := b.queue(newDrawItem(stripPins[i], uint16(stripLengths[i]), false)); err != nil {
			return err
		}
	}
	b.finishQueueing()
	for i := 0; i < numStrips; i++ {
		slice, err := b.getSlice(stripPins[i], true)
		if err != nil {
			return err
		}
		copy(slice, c.strips[i])
	}
	return nil
}

// serialSink frames the rectangular block and writes it to a device file.
// The receiving microcontroller splits the payload by the fixed stride and
// clocks each pin's bytes out to its strip.
type serialSink struct {
	f *os.File
}

// newSerialSink opens the device for writing.
func newSerialSink(path string) (*serialSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	return &serialSink{f: f}, nil
}

// writeFrame emits a 12-byte little-endian header (magic, strip count,
// stride) followed by the backing store.
func (s *serialSink) writeFrame(b *rectangularDrawBuffer) error {
	numStrips, bytesPerStrip, totalBytes := b.blockInfo()
	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:4], frameHeaderMagic)
	binary.LittleEndian.PutUint32(header[4:8], uint32(numStrips))
	binary.LittleEndian.PutUint32(header[8:12], uint32(bytesPerStrip))
	if _, err := s.f.Write(header[:]); err != nil {
		return err
	}
	_, err := s.f.Write(b.backing[:totalBytes])
	return err
}

// Close releases the device file.
func (s *serialSink) Close() error {
	return s.f.Close()
}

// discardSink drops frames; used when no hardware is attached.
type discardSink struct{}

func (discardSink) writeFrame(*rectangularDrawBuffer) error { return nil }

// openFrameSink selects the sink from flags, degrading to discard with a
// log line when the device cannot be opened.
func openFrameSink() frameSink {
	if *serialDeviceFlag == "" {
		return discardSink{}
	}
	sink, err := newSerialSink(*serialDeviceFlag)
	if err != nil {
		log.Printf("Serial output disabled: %v", err)
		return discardSink{}
	}
	log.Printf("Serial output enabled on %s", *serialDeviceFlag)
	return sink
}
