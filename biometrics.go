package main

import (
	"encoding/json"
	"log"
	"math"
	"net"
	"sync"
	"time"
)

// bioSample is one biometric reading: pulse-sensor intensity (normalized
// 0-1), skin temperature in Celsius, and a 3-axis angular rate in rad/s.
// Samples are independently timestamped by the source.
type bioSample struct {
	When      time.Time
	Pulse     float64
	SkinTempC float64
	Gyro      [3]float64
}

// gyroMagnitude returns the angular-rate vector magnitude.
func (s bioSample) gyroMagnitude() float64 {
	return math.Sqrt(s.Gyro[0]*s.Gyro[0] + s.Gyro[1]*s.Gyro[1] + s.Gyro[2]*s.Gyro[2])
}

// bioSource supplies the latest available biometric reading. Latest never
// blocks; the second result is false until a first reading exists. The tick
// loop polls once per tick and never waits on a source.
type bioSource interface {
	Latest() (bioSample, bool)
}

// bioReading is the wire format carried by one UDP datagram.
type bioReading struct {
	Pulse     float64    `json:"pulse"`
	SkinTempC float64    `json:"temp_c"`
	Gyro      [3]float64 `json:"gyro"`
}

// udpBioSource listens for JSON datagrams from the sensor badge and retains
// only the most recent reading. A stalled sender simply leaves the last
// snapshot in place; the scheduler's timeout fallback covers the rest.
type udpBioSource struct {
	conn net.PacketConn

	mu     sync.Mutex
	sample bioSample
	valid  bool
}

// newUDPBioSource binds addr and starts the receive loop.
func newUDPBioSource(addr string) (*udpBioSource, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, err
	}
	s := &udpBioSource{conn: conn}
	go s.receiveLoop()
	return s, nil
}

func (s *udpBioSource) receiveLoop() {
	buf := make([]byte, 512)
	for {
		n, _, err := s.conn.ReadFrom(buf)
		if err != nil {
			return // closed
		}
		var r bioReading
		if err := json.Unmarshal(buf[:n], &r); err != nil {
			log.Printf("Discarding malformed biometric datagram: %v", err)
			continue
		}
		s.mu.Lock()
		s.sample = bioSample{
			When:      time.Now(),
			Pulse:     r.Pulse,
			SkinTempC: r.SkinTempC,
			Gyro:      r.Gyro,
		}
		s.valid = true
		s.mu.Unlock()
	}
}

// Latest returns the most recent reading without blocking.
func (s *udpBioSource) Latest() (bioSample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sample, s.valid
}

// Close stops the receive loop.
func (s *udpBioSource) Close() error {
	return s.conn.Close()
}

// syntheticBioSource fabricates a resting wearer: a beat roughly every
// 850ms, mild temperature drift, and negligible motion. Useful on a desk
// with no sensor badge attached.
type syntheticBioSource struct {
	epoch time.Time
}

func newSyntheticBioSource() *syntheticBioSource {
	return &syntheticBioSource{epoch: time.Now()}
}

// Latest synthesizes the reading for the current instant.
func (s *syntheticBioSource) Latest() (bioSample, bool) {
	t := time.Since(s.epoch).Seconds()
	const beatPeriod = 0.85
	phase := math.Mod(t, beatPeriod) / beatPeriod
	pulse := 0.0
	if phase < 0.12 {
		pulse = 1 - phase/0.12
	}
	return bioSample{
		When:      s.epoch.Add(time.Duration(t * float64(time.Second))),
		Pulse:     pulse,
		SkinTempC: 33.5 + 0.5*math.Sin(t/60),
		Gyro:      [3]float64{0.02 * math.Sin(t), 0.02 * math.Cos(t/3), 0},
	}, true
}
