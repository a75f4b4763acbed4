package telnet

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// EOLMode selects the terminator appended after an outbound line.
type EOLMode int

const (
	EOLCRLF EOLMode = iota
	EOLCRNul
	EOLLF
)

func (m EOLMode) bytes() []byte {
	switch m {
	case EOLCRNul:
		return []byte{'\r', 0}
	case EOLLF:
		return []byte{'\n'}
	default:
		return []byte{'\r', '\n'}
	}
}

func (m EOLMode) String() string {
	switch m {
	case EOLCRNul:
		return "crnul"
	case EOLLF:
		return "lf"
	default:
		return "crlf"
	}
}

func ParseEOLMode(s string) (EOLMode, error) {
	switch strings.ToLower(s) {
	case "", "crlf":
		return EOLCRLF, nil
	case "crnul", "cr-nul":
		return EOLCRNul, nil
	case "lf":
		return EOLLF, nil
	}
	return 0, fmt.Errorf("unknown end-of-line mode %q", s)
}

// Config carries the session-level settings. Fields are read at
// construction and during operations; they must not change while a read
// or write is in flight.
type Config struct {
	// EOLMode selects the outbound line terminator, CRLF by default.
	EOLMode EOLMode

	// Encoding translates between text and channel bytes, ASCII by
	// default.
	Encoding encoding.Encoding

	// WriteDelay is the pause between characters of a paced write.
	WriteDelay time.Duration

	// PollInterval is the pause between drain polls while reading.
	PollInterval time.Duration

	// NonEmptyReadTimeout bounds how long ReadNonEmpty keeps retrying
	// an empty result.
	NonEmptyReadTimeout time.Duration

	// SendProxyHeader makes Dial write a PROXY protocol v2 header
	// before any telnet traffic. Needed when the endpoint sits behind
	// a proxy-protocol-aware load balancer.
	SendProxyHeader bool
}

// SetDefaults fills zero-valued fields with the documented defaults:
// 10ms write delay, 100ms poll interval, 100ms non-empty read timeout.
func (c *Config) SetDefaults() {
	if c.Encoding == nil {
		c.Encoding = ASCII
	}
	if c.WriteDelay == 0 {
		c.WriteDelay = 10 * time.Millisecond
	}
	if c.PollInterval == 0 {
		c.PollInterval = 100 * time.Millisecond
	}
	if c.NonEmptyReadTimeout == 0 {
		c.NonEmptyReadTimeout = 100 * time.Millisecond
	}
}

// EncodingByName resolves the encoding names accepted in configuration.
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "ascii", "us-ascii":
		return ASCII, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "utf8", "utf-8":
		return unicode.UTF8, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}
