package telnet

import (
	"bytes"
	"time"
)

// endOfLineNotice is what the notifier sees when a bare terminator is
// sent, regardless of the configured EOL mode.
const endOfLineNotice = "\n"

var iacEscape = []byte{IAC, IAC}

// WriteRaw writes p iff the channel is writable. Transport failures are
// swallowed; the return value is the only failure signal.
func (s *Session) WriteRaw(p []byte) bool {
	if s.ch == nil || !s.ch.CanWrite() {
		return false
	}
	if err := s.ch.WriteBytes(p); err != nil {
		return false
	}
	return s.ch.Flush() == nil
}

// WriteText encodes text and sends it, doubling any literal IAC so the
// remote cannot mistake payload for a command.
func (s *Session) WriteText(text string) bool {
	p, err := s.encode(text)
	if err != nil {
		return false
	}
	p = bytes.ReplaceAll(p, []byte{IAC}, iacEscape)
	return s.WriteRaw(p)
}

// WriteEndOfLine sends the terminator selected by the session's EOL mode.
func (s *Session) WriteEndOfLine() bool {
	s.notify.SendStarted(endOfLineNotice)
	return s.WriteRaw(s.conf.EOLMode.bytes())
}

// WritePaced transmits text one character at a time with WriteDelay
// between characters. Some legacy servers drop or misread bursts;
// pacing trades latency for reliability. The first character that
// cannot be written aborts the whole send.
func (s *Session) WritePaced(text string) bool {
	s.notify.SendStarted(text)
	first := true
	for _, r := range text {
		if !first {
			time.Sleep(s.conf.WriteDelay)
		}
		first = false
		if !s.WriteText(string(r)) {
			return false
		}
	}
	return true
}

// WriteLine sends text followed by the end-of-line terminator. It
// succeeds only if both parts do.
func (s *Session) WriteLine(text string) bool {
	return s.WritePaced(text) && s.WriteEndOfLine()
}
