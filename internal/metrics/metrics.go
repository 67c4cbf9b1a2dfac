// Package metrics provides application-level metrics collection.
// This is a lightweight metrics foundation using atomic counters.
// For production observability, consider integrating with Prometheus or similar.
package metrics

import (
	"sync/atomic"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	encodesTotal atomic.Int64
	decodesTotal atomic.Int64
	decodeErrors atomic.Int64

	// Symbols repaired by successful decodes.
	correctedSymbols atomic.Int64
}

// Global is the global metrics instance.
// Use this for recording metrics throughout the application.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordEncode records an encode operation.
func (m *Metrics) RecordEncode() {
	m.encodesTotal.Add(1)
}

// RecordDecode records a decode operation with its outcome and the number
// of symbols it corrected.
func (m *Metrics) RecordDecode(corrected int, err error) {
	m.decodesTotal.Add(1)
	if err != nil {
		m.decodeErrors.Add(1)
		return
	}
	m.correctedSymbols.Add(int64(corrected))
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	EncodesTotal     int64
	DecodesTotal     int64
	DecodeErrors     int64
	CorrectedSymbols int64
}

// GetSnapshot returns a point-in-time copy of all metrics.
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		EncodesTotal:     m.encodesTotal.Load(),
		DecodesTotal:     m.decodesTotal.Load(),
		DecodeErrors:     m.decodeErrors.Load(),
		CorrectedSymbols: m.correctedSymbols.Load(),
	}
}

// Reset zeroes all counters. Intended for tests.
func (m *Metrics) Reset() {
	m.encodesTotal.Store(0)
	m.decodesTotal.Store(0)
	m.decodeErrors.Store(0)
	m.correctedSymbols.Store(0)
}
