package main

import "fmt"

// queueState tracks the rectangular draw buffer's two-phase protocol.
type queueState int

const (
	queueIdle queueState = iota
	queueing
	queueDone
)

// drawItem describes one queued strip: its output pin, logical LED count,
// and color format. RGBW strips are inflated to the equivalent RGB LED
// count up front so all byte math downstream is uniform.
type drawItem struct {
	pin      uint8
	numLeds  uint16
	isRGBW   bool
	numBytes uint32
}

// rgbwSizeAsRGB returns the RGB LED count whose byte size holds n RGBW
// pixels (4 bytes each packed into 3-byte units, rounded up).
func rgbwSizeAsRGB(n uint16) uint16 {
	return (n*4 + 2) / 3
}

// newDrawItem derives the item's byte size from its LED count and format.
func newDrawItem(pin uint8, numLeds uint16, isRGBW bool) drawItem {
	count := numLeds
	if isRGBW {
		count = rgbwSizeAsRGB(numLeds)
	}
	return drawItem{
		pin:      pin,
		numLeds:  numLeds,
		isRGBW:   isRGBW,
		numBytes: uint32(count) * numChannels,
	}
}

// rectangularDrawBuffer packs heterogeneous-length strips into one
// contiguous backing store with a uniform per-pin stride, sized to the
// longest queued strip. The batched output path requires the uniform
// stride; shorter strips simply leave their slice tails zeroed.
type rectangularDrawBuffer struct {
	state        queueState
	drawList     []drawItem
	prevDrawList []drawItem
	pinToSlice   map[uint8][]byte
	backing      []byte
}

// newRectangularDrawBuffer returns an empty buffer in the idle state.
func newRectangularDrawBuffer() *rectangularDrawBuffer {
	return &rectangularDrawBuffer{pinToSlice: make(map[uint8][]byte)}
}

// startQueueing opens a queueing cycle: the current draw list rotates into
// previous, the pin map resets, and the backing store is zeroed and
// released. Calling it again before finishQueueing is a no-op, not a
// re-entrant restart.
func (b *rectangularDrawBuffer) startQueueing() {
	if b.state == queueing {
		return
	}
	b.state = queueing
	for pin := range b.pinToSlice {
		delete(b.pinToSlice, pin)
	}
	b.drawList, b.prevDrawList = b.prevDrawList[:0], b.drawList
	for i := range b.backing {
		b.backing[i] = 0
	}
	b.backing = b.backing[:0]
}

// queue appends an item to the current draw list. Valid only while a
// queueing cycle is open.
func (b *rectangularDrawBuffer) queue(item drawItem) error {
	if b.state != queueing {
		return fmt.Errorf("queue called outside a queueing cycle (state %d)", b.state)
	}
	b.drawList = append(b.drawList, item)
	return nil
}

// finishQueueing closes the cycle: it sizes the backing store to
// numItems x maxBytes and assigns each queued pin a slice of exactly
// maxBytes in queue order. Calling it again without a new startQueueing is
// a no-op.
func (b *rectangularDrawBuffer) finishQueueing() {
	if b.state == queueDone {
		return
	}
	b.state = queueDone
	_, maxBytes, total := b.blockInfo()
	if cap(b.backing) < total {
		b.backing = make([]byte, total)
	} else {
		b.backing = b.backing[:total]
		for i := range b.backing {
			b.backing[i] = 0
		}
	}
	offset := 0
	for _, item := range b.drawList {
		b.pinToSlice[item.pin] = b.backing[offset : offset+maxBytes : offset+maxBytes]
		offset += maxBytes
	}
}

// maxBytesPerStrip returns the largest queued item byte size.
func (b *rectangularDrawBuffer) maxBytesPerStrip() int {
	max := 0
	for _, item := range b.drawList {
		if int(item.numBytes) > max {
			max = int(item.numBytes)
		}
	}
	return max
}

// blockInfo reports the rectangular layout: strip count, uniform stride,
// and total backing size.
func (b *rectangularDrawBuffer) blockInfo() (numStrips, bytesPerStrip, totalBytes int) {
	numStrips = len(b.drawList)
	bytesPerStrip = b.maxBytesPerStrip()
	return numStrips, bytesPerStrip, numStrips * bytesPerStrip
}

// getSlice returns the byte slice staged for pin this cycle, zero-filling
// it first when requested. Asking for a pin that was never queued is a
// configuration error; the caller gets an empty slice and an error to log.
func (b *rectangularDrawBuffer) getSlice(pin uint8, clearFirst bool) ([]byte, error) {
	slice, ok := b.pinToSlice[pin]
	if !ok {
		return nil, fmt.Errorf("pin %d not queued in this draw cycle", pin)
	}
	if clearFirst {
		for i := range slice {
			slice[i] = 0
		}
	}
	return slice, nil
}
