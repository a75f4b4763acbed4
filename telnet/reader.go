package telnet

import (
	"bytes"
	"strings"
	"time"
)

// lineBoundary reports the characters that separate logical lines in
// accumulated output. '>' is included so that trailing prompts are cut
// off along with line breaks.
func lineBoundary(r rune) bool {
	switch r {
	case '\r', '\n', '\x00', '>':
		return true
	}
	return false
}

// Read drains the channel to exhaustion and returns the accumulated
// text. With lastLine set, only the final non-empty fragment after
// splitting on line boundaries is returned; the notifier then sees the
// extracted fragment first and the full raw text after it, because
// callers watching raw traffic rely on the second signal. A nil or
// unreadable channel yields an empty result immediately.
func (s *Session) Read(lastLine bool) string {
	if s.ch == nil || !s.ch.CanRead() {
		return ""
	}
	var raw bytes.Buffer
	s.drain(&raw)
	text := s.decode(raw.Bytes())
	if !lastLine {
		s.notify.ReadCompleted(text)
		return text
	}
	frags := strings.FieldsFunc(text, lineBoundary)
	var line string
	if len(frags) > 0 {
		line = frags[len(frags)-1]
		s.notify.ReadCompleted(line)
	}
	s.notify.ReadCompleted(text)
	return line
}

// ReadNonEmpty retries Read until it produces text or NonEmptyReadTimeout
// elapses, sleeping a millisecond between attempts. The final result,
// empty or not, is reported to the notifier before returning. Timing out
// is not an error; callers detect it by the empty result.
func (s *Session) ReadNonEmpty(lastLine bool) string {
	var text string
	deadline := time.Now().Add(s.conf.NonEmptyReadTimeout)
	for s.ch != nil && s.ch.CanRead() {
		text = s.Read(lastLine)
		if text != "" || !time.Now().Before(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}
	s.notify.ReadCompleted(text)
	return text
}
