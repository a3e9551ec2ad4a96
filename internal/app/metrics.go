package app

import (
	"fmt"
	"time"
)

// Metrics counts frames and keys over the life of an editor session.
// It is owned by the event loop and not safe for concurrent use.
type Metrics struct {
	frameCount  uint64
	frameTotal  time.Duration
	frameMax    time.Duration
	frameBytes  uint64
	inputBytes  uint64
	keyCount    uint64
	escapeCount uint64
	startTime   time.Time
}

// NewMetrics creates metrics starting at start.
func NewMetrics(start time.Time) *Metrics {
	return &Metrics{startTime: start}
}

// RecordFrame records one refresh that took d and wrote n bytes.
func (m *Metrics) RecordFrame(d time.Duration, n int) {
	m.frameCount++
	m.frameTotal += d
	if d > m.frameMax {
		m.frameMax = d
	}
	m.frameBytes += uint64(n)
}

// RecordInput records n bytes read from the terminal.
func (m *Metrics) RecordInput(n int) {
	m.inputBytes += uint64(n)
}

// RecordKey records one decoded key. special is true for keys decoded
// from an escape sequence.
func (m *Metrics) RecordKey(special bool) {
	m.keyCount++
	if special {
		m.escapeCount++
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames       uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	BytesWritten uint64
	BytesRead    uint64
	Keys         uint64
	EscapeKeys   uint64
	Uptime       time.Duration
}

// Snapshot returns the current values, with uptime measured to now.
func (m *Metrics) Snapshot(now time.Time) MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount,
		MaxFrameTime: m.frameMax,
		BytesWritten: m.frameBytes,
		BytesRead:    m.inputBytes,
		Keys:         m.keyCount,
		EscapeKeys:   m.escapeCount,
		Uptime:       now.Sub(m.startTime),
	}
	if m.frameCount > 0 {
		s.AvgFrameTime = m.frameTotal / time.Duration(m.frameCount)
	}
	return s
}

// String returns a one-line summary for logging.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("frames=%d avg=%v max=%v written=%d read=%d keys=%d escapes=%d uptime=%v",
		s.Frames, s.AvgFrameTime, s.MaxFrameTime, s.BytesWritten, s.BytesRead, s.Keys, s.EscapeKeys, s.Uptime)
}
