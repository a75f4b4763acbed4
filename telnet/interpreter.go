package telnet

import (
	"bytes"
	"time"
)

// drain consumes every byte the channel currently has, answering telnet
// negotiation inline and accumulating everything else into buf. It keeps
// going as long as new bytes show up within one PollInterval of the last
// drain; a fast producer keeps it running, so total elapsed time is the
// caller's problem.
func (s *Session) drain(buf *bytes.Buffer) {
	for {
		for s.ch.DataAvailable() {
			b := s.ch.ReadByte()
			if b == NoData {
				break
			}
			if byte(b) != IAC {
				buf.WriteByte(byte(b))
				continue
			}
			s.interpretCommand(buf)
		}
		time.Sleep(s.conf.PollInterval)
		if !s.ch.DataAvailable() {
			return
		}
	}
}

// interpretCommand handles the bytes following an IAC marker. A sequence
// truncated by end of stream is abandoned without a reply; whatever
// arrives later starts a fresh parse.
func (s *Session) interpretCommand(buf *bytes.Buffer) {
	verb := s.ch.ReadByte()
	if verb == NoData {
		return
	}
	switch byte(verb) {
	case IAC:
		s.log.Debug("RECV IAC IAC")
		buf.WriteByte(IAC)
	case DO, DONT, WILL, WONT:
		opt := s.ch.ReadByte()
		if opt == NoData {
			return
		}
		s.log.Debugf("RECV IAC %s %s", commandByte(verb), optionByte(opt))
		s.answer(byte(verb), byte(opt))
	default:
		// commands like NOP or GA carry no option byte; drop them
		s.log.Debugf("RECV IAC %s", commandByte(verb))
	}
}

// answer agrees to suppress-go-ahead and refuses every other option.
func (s *Session) answer(verb, opt byte) {
	var reply byte
	switch {
	case opt == SuppressGoAhead && verb == DO:
		reply = WILL
	case opt == SuppressGoAhead:
		reply = DO
	case verb == DO:
		reply = WONT
	default:
		reply = DONT
	}
	s.sendCommand(reply, opt)
}
