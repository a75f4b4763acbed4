// Package telnet implements the client side of the telnet protocol over
// an established byte stream: it strips and answers IAC negotiation
// inline while streaming text to the caller, and layers a line-oriented
// read/write API with per-character pacing on top.
//
// The negotiation policy is deliberately minimal. The session agrees to
// suppress-go-ahead and refuses every other option; it never initiates a
// negotiation of its own.
package telnet

import (
	"io"
	"net"

	proxyproto "github.com/pires/go-proxyproto"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Session drives a Channel. A session is single-threaded: every
// operation runs synchronously on the caller's goroutine and may sleep
// for the configured pacing intervals. Concurrent calls must be
// serialized by the caller.
type Session struct {
	ch     Channel
	conf   Config
	notify maybeNotifier
	log    maybeLog
	enc    *encoding.Encoder
	dec    *encoding.Decoder
}

func NewSession(ch Channel, conf Config) *Session {
	conf.SetDefaults()
	return &Session{
		ch:   ch,
		conf: conf,
		enc:  conf.Encoding.NewEncoder(),
		dec:  conf.Encoding.NewDecoder(),
	}
}

// Dial connects to addr and wraps the connection in a session.
func Dial(addr string, conf Config) (*Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	if conf.SendProxyHeader {
		header := proxyproto.HeaderProxyFromAddrs(2, conn.LocalAddr(), conn.RemoteAddr())
		if _, err := header.WriteTo(conn); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return NewSession(NewNetChannel(conn), conf), nil
}

func (s *Session) SetNotifier(n Notifier) { s.notify.n = n }

func (s *Session) SetLogger(l Log) { s.log.log = l }

// SetEOLMode changes the outbound line terminator. Not safe to call
// while a write is in flight.
func (s *Session) SetEOLMode(m EOLMode) { s.conf.EOLMode = m }

func (s *Session) Close() error {
	if c, ok := s.ch.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Session) sendCommand(verb, opt byte) bool {
	s.log.Debugf("SENT IAC %s %s", commandByte(verb), optionByte(opt))
	if err := s.ch.WriteBytes([]byte{IAC, verb, opt}); err != nil {
		return false
	}
	return s.ch.Flush() == nil
}

func (s *Session) decode(p []byte) string {
	out, _, err := transform.Bytes(s.dec, p)
	if err != nil {
		return string(p)
	}
	return string(out)
}

func (s *Session) encode(text string) ([]byte, error) {
	out, _, err := transform.Bytes(s.enc, []byte(text))
	return out, err
}
