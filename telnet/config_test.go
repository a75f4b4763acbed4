package telnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()

	assert.Equal(t, EOLCRLF, c.EOLMode)
	assert.Equal(t, ASCII, c.Encoding)
	assert.Equal(t, 10*time.Millisecond, c.WriteDelay)
	assert.Equal(t, 100*time.Millisecond, c.PollInterval)
	assert.Equal(t, 100*time.Millisecond, c.NonEmptyReadTimeout)
}

func TestConfigDefaultsKeepExplicitValues(t *testing.T) {
	c := Config{
		EOLMode:    EOLLF,
		Encoding:   charmap.ISO8859_1,
		WriteDelay: time.Second,
	}
	c.SetDefaults()

	assert.Equal(t, EOLLF, c.EOLMode)
	assert.Equal(t, charmap.ISO8859_1, c.Encoding)
	assert.Equal(t, time.Second, c.WriteDelay)
}

func TestParseEOLMode(t *testing.T) {
	for in, expected := range map[string]EOLMode{
		"":      EOLCRLF,
		"crlf":  EOLCRLF,
		"CRNUL": EOLCRNul,
		"lf":    EOLLF,
	} {
		mode, err := ParseEOLMode(in)
		assert.NoError(t, err)
		assert.Equal(t, expected, mode)
	}

	_, err := ParseEOLMode("cr")
	assert.Error(t, err)
}

func TestEncodingByName(t *testing.T) {
	enc, err := EncodingByName("latin1")
	assert.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, enc)

	_, err = EncodingByName("ebcdic")
	assert.Error(t, err)
}

func TestASCIISubstitutes(t *testing.T) {
	enc := ASCII.NewEncoder()
	out, err := enc.Bytes([]byte("a»b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("a??b"), out)
}
