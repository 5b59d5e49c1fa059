package main

// colorField is the shared accumulator: one RGB triple per LED position of
// every segment, stored flat. Ripples deposit into it additively and decay
// drains it multiplicatively, each exactly once per tick.
type colorField struct {
	data []uint8
}

// newColorField allocates a zeroed accumulator sized for the installation.
func newColorField() *colorField {
	return &colorField{data: make([]uint8, numSegments*ledsPerSegment*numChannels)}
}

// index returns the offset of the first channel of a segment position.
func (f *colorField) index(segment, pos int) int {
	return (segment*ledsPerSegment + pos) * numChannels
}

// at returns the three channels stored at a segment position.
func (f *colorField) at(segment, pos int) [numChannels]uint8 {
	i := f.index(segment, pos)
	return [numChannels]uint8{f.data[i], f.data[i+1], f.data[i+2]}
}

// set overwrites the three channels at a segment position.
func (f *colorField) set(segment, pos int, c [numChannels]uint8) {
	i := f.index(segment, pos)
	f.data[i] = c[0]
	f.data[i+1] = c[1]
	f.data[i+2] = c[2]
}

// deposit adds a scaled color into a segment position, saturating each
// channel at 255 rather than wrapping.
func (f *colorField) deposit(segment, pos int, c [numChannels]uint8, scale float64) {
	if scale <= 0 {
		return
	}
	if scale > 1 {
		scale = 1
	}
	i := f.index(segment, pos)
	for ch := 0; ch < numChannels; ch++ {
		add := uint16(float64(c[ch]) * scale)
		sum := uint16(f.data[i+ch]) + add
		if sum > 255 {
			sum = 255
		}
		f.data[i+ch] = uint8(sum)
	}
}

// decay scales every channel by factor, truncating toward zero. Factors
// outside (0, 1] are clamped so a bad flag value can never brighten the
// field or freeze it fully lit.
func (f *colorField) decay(factor float64) {
	if factor >= 1 {
		return
	}
	if factor < 0 {
		factor = 0
	}
	for i, v := range f.data {
		f.data[i] = uint8(float64(v) * factor)
	}
}

// clear zeroes the whole accumulator.
func (f *colorField) clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
