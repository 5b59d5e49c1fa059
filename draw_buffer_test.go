// draw_buffer_test.go - Tests for the rectangular draw buffer protocol

package main

import "testing"

// queueStrips opens a cycle and queues one RGB item per length.
func queueStrips(t *testing.T, b *rectangularDrawBuffer, pins []uint8, leds []uint16) {
	t.Helper()
	b.startQueueing()
	for i := range pins {
		if err := b.queue(newDrawItem(pins[i], leds[i], false)); err != nil {
			t.Fatalf("queue pin %d: %v", pins[i], err)
		}
	}
}

// TestUniformStrideLayout checks the concrete four-strip scenario: the
// stride follows the longest strip and every pin gets exactly that many
// bytes, short strips included.
func TestUniformStrideLayout(t *testing.T) {
	b := newRectangularDrawBuffer()
	pins := []uint8{1, 2, 3, 4}
	leds := []uint16{154, 168, 84, 154}
	queueStrips(t, b, pins, leds)
	b.finishQueueing()

	numStrips, stride, total := b.blockInfo()
	if numStrips != 4 {
		t.Fatalf("numStrips = %d, want 4", numStrips)
	}
	if stride != 168*3 {
		t.Fatalf("stride = %d, want %d", stride, 168*3)
	}
	if total != 4*504 {
		t.Fatalf("total = %d, want %d", total, 4*504)
	}
	if len(b.backing) != total {
		t.Fatalf("backing store is %d bytes, want %d", len(b.backing), total)
	}

	for _, pin := range pins {
		slice, err := b.getSlice(pin, false)
		if err != nil {
			t.Fatalf("getSlice(%d): %v", pin, err)
		}
		if len(slice) != stride {
			t.Errorf("pin %d slice length = %d, want %d", pin, len(slice), stride)
		}
	}

	// The 84-LED strip's slice is still full stride; its tail must read
	// zero after a clear-first fetch.
	short, err := b.getSlice(3, true)
	if err != nil {
		t.Fatalf("getSlice(3): %v", err)
	}
	for i := 84 * 3; i < len(short); i++ {
		if short[i] != 0 {
			t.Fatalf("short strip tail byte %d = %d, want 0", i, short[i])
		}
	}
}

// TestSlicesDoNotOverlap writes a distinct sentinel through each pin's
// slice and verifies no write bleeds into another pin's region.
func TestSlicesDoNotOverlap(t *testing.T) {
	b := newRectangularDrawBuffer()
	pins := []uint8{10, 11, 12}
	queueStrips(t, b, pins, []uint16{20, 30, 10})
	b.finishQueueing()

	for i, pin := range pins {
		slice, err := b.getSlice(pin, false)
		if err != nil {
			t.Fatalf("getSlice(%d): %v", pin, err)
		}
		for j := range slice {
			slice[j] = byte(i + 1)
		}
	}
	for i, pin := range pins {
		slice, _ := b.getSlice(pin, false)
		for j, v := range slice {
			if v != byte(i+1) {
				t.Fatalf("pin %d byte %d = %d, want %d", pin, j, v, i+1)
			}
		}
	}
}

// TestStartQueueingIdempotent verifies a second startQueueing without an
// intervening finish leaves the queued items and backing store untouched.
func TestStartQueueingIdempotent(t *testing.T) {
	b := newRectangularDrawBuffer()
	queueStrips(t, b, []uint8{1, 2}, []uint16{14, 28})

	itemsBefore := len(b.drawList)
	b.startQueueing()
	if len(b.drawList) != itemsBefore {
		t.Fatalf("draw list length changed: %d -> %d", itemsBefore, len(b.drawList))
	}
	b.finishQueueing()
	if _, err := b.getSlice(1, false); err != nil {
		t.Fatalf("pin 1 lost across redundant startQueueing: %v", err)
	}
	if _, err := b.getSlice(2, false); err != nil {
		t.Fatalf("pin 2 lost across redundant startQueueing: %v", err)
	}
}

// TestFinishQueueingIdempotent verifies a second finishQueueing is a no-op.
func TestFinishQueueingIdempotent(t *testing.T) {
	b := newRectangularDrawBuffer()
	queueStrips(t, b, []uint8{1}, []uint16{14})
	b.finishQueueing()
	slice, err := b.getSlice(1, false)
	if err != nil {
		t.Fatalf("getSlice: %v", err)
	}
	slice[0] = 0xAB

	b.finishQueueing()
	again, err := b.getSlice(1, false)
	if err != nil {
		t.Fatalf("getSlice after redundant finish: %v", err)
	}
	if again[0] != 0xAB {
		t.Fatalf("redundant finishQueueing cleared staged data")
	}
}

// TestUnknownPin asks for a pin that was never queued; the caller must get
// an empty slice and an error, never a panic.
func TestUnknownPin(t *testing.T) {
	b := newRectangularDrawBuffer()
	queueStrips(t, b, []uint8{1}, []uint16{14})
	b.finishQueueing()
	slice, err := b.getSlice(99, false)
	if err == nil {
		t.Fatalf("expected error for unknown pin")
	}
	if len(slice) != 0 {
		t.Fatalf("unknown pin returned %d bytes, want 0", len(slice))
	}
}

// TestQueueOutsidePhase rejects queue calls before a cycle opens.
func TestQueueOutsidePhase(t *testing.T) {
	b := newRectangularDrawBuffer()
	if err := b.queue(newDrawItem(1, 14, false)); err == nil {
		t.Fatalf("queue accepted outside the queueing phase")
	}
}

// TestRGBWInflation checks the four-channel byte accounting: n RGBW pixels
// occupy ceil(4n/3) three-byte units.
func TestRGBWInflation(t *testing.T) {
	cases := []struct {
		leds uint16
		want uint32
	}{
		{3, 4 * 3},   // 12 bytes exactly
		{4, 6 * 3},   // 16 bytes rounded up to 18
		{168, 224 * 3},
	}
	for _, c := range cases {
		item := newDrawItem(1, c.leds, true)
		if item.numBytes != c.want {
			t.Errorf("RGBW %d LEDs: numBytes = %d, want %d", c.leds, item.numBytes, c.want)
		}
	}

	rgb := newDrawItem(1, 168, false)
	if rgb.numBytes != 168*3 {
		t.Errorf("RGB 168 LEDs: numBytes = %d, want %d", rgb.numBytes, 168*3)
	}
}

// TestCycleRotation verifies the current list rotates into previous when a
// new cycle opens.
func TestCycleRotation(t *testing.T) {
	b := newRectangularDrawBuffer()
	queueStrips(t, b, []uint8{7, 8}, []uint16{14, 14})
	b.finishQueueing()

	b.startQueueing()
	if len(b.prevDrawList) != 2 {
		t.Fatalf("previous draw list has %d items, want 2", len(b.prevDrawList))
	}
	if len(b.drawList) != 0 {
		t.Fatalf("current draw list has %d items, want 0", len(b.drawList))
	}
	if b.prevDrawList[0].pin != 7 || b.prevDrawList[1].pin != 8 {
		t.Fatalf("previous draw list order wrong: %+v", b.prevDrawList)
	}
}
