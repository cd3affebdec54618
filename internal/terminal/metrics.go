package terminal

// Metrics counts the non-fatal error kinds enumerated in spec §7. None
// of these halt the core; they are exposed for diagnostics only.
type Metrics struct {
	MalformedUTF8     uint64
	MalformedEscape   uint64
	UnknownMode       uint64
	UnknownCSIFinal   uint64
	ResponseSinkFull  uint64
	ResizeRejected    uint64
}

// Metrics returns a snapshot of the diagnostic counters.
func (s *Screen) Metrics() Metrics {
	return s.metrics
}
