package terminal

import "fmt"

// OutboundSink receives response bytes produced by DSR/DA and similar
// queries (spec §4.5). It must not block; the core never waits on it.
type OutboundSink func([]byte)

// emit writes resp to the configured sink. If no sink was configured,
// or the sink panics because it is backed by a full bounded channel
// the caller chose to implement that way, the byte is dropped and
// counted — the core itself never blocks (spec §4.5, §7 ResponseSinkFull).
func (s *Screen) emit(resp []byte) {
	if s.outbound == nil {
		s.metrics.ResponseSinkFull++
		return
	}
	defer func() {
		if recover() != nil {
			s.metrics.ResponseSinkFull++
		}
	}()
	s.outbound(resp)
}

// reportCursorPosition answers DSR 6 (spec §4.4 DSR): 1-indexed
// row/col of the current VT cursor.
func (s *Screen) reportCursorPosition() {
	s.emit([]byte(fmt.Sprintf("\x1b[%d;%dR", s.cur.Row+1, s.cur.Col+1)))
}

// reportReady answers DSR 5.
func (s *Screen) reportReady() {
	s.emit([]byte("\x1b[0n"))
}

// reportPrimaryDA answers CSI c (no private marker).
func (s *Screen) reportPrimaryDA() {
	s.emit(s.daPrimary)
}

// reportSecondaryDA answers CSI > c.
func (s *Screen) reportSecondaryDA() {
	s.emit([]byte("\x1b[>1;10;0c"))
}

// defaultPrimaryDA is the VT102-class identification used when no
// override is configured (spec §6 probe_responses.da_primary).
var defaultPrimaryDA = []byte("\x1b[?6c")
