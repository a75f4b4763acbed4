package telnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestWriteLineCRLF(t *testing.T) {
	ch := &fakeChannel{}
	s := NewSession(ch, Config{
		WriteDelay:   15 * time.Millisecond,
		PollInterval: time.Millisecond,
	})

	start := time.Now()
	ok := s.WriteLine("hi")
	elapsed := time.Since(start)

	assert.True(t, ok)
	assert.Equal(t, []byte{'h', 'i', '\r', '\n'}, ch.out.Bytes())
	// the delay elapses between 'h' and 'i'
	assert.GreaterOrEqual(t, elapsed, 15*time.Millisecond)
}

func TestWriteEndOfLineModes(t *testing.T) {
	tests := []struct {
		mode     EOLMode
		expected []byte
	}{
		{EOLCRLF, []byte{'\r', '\n'}},
		{EOLCRNul, []byte{'\r', 0}},
		{EOLLF, []byte{'\n'}},
	}
	for _, test := range tests {
		t.Run(test.mode.String(), func(t *testing.T) {
			ch := &fakeChannel{}
			s := testSession(ch)
			s.SetEOLMode(test.mode)

			assert.True(t, s.WriteEndOfLine())
			assert.Equal(t, test.expected, ch.out.Bytes())
		})
	}
}

func TestWriteTextDoublesIAC(t *testing.T) {
	ch := &fakeChannel{}
	s := NewSession(ch, Config{
		Encoding:     charmap.ISO8859_1,
		WriteDelay:   time.Millisecond,
		PollInterval: time.Millisecond,
	})

	assert.True(t, s.WriteText("aÿb"))
	assert.Equal(t, []byte{'a', IAC, IAC, 'b'}, ch.out.Bytes())
}

func TestWritePacedAbortsOnFailure(t *testing.T) {
	ch := &fakeChannel{failWrite: true}
	s := testSession(ch)

	assert.False(t, s.WritePaced("hi"))
	assert.Empty(t, ch.out.Bytes())
}

func TestWriteRawUnwritableChannel(t *testing.T) {
	ch := &fakeChannel{noWrite: true}
	s := testSession(ch)

	assert.False(t, s.WriteRaw([]byte("hi")))
	assert.Empty(t, ch.out.Bytes())
}

func TestWriteRawNilChannel(t *testing.T) {
	s := testSession(nil)
	assert.False(t, s.WriteRaw([]byte("hi")))
}

func TestWriteNotifications(t *testing.T) {
	ch := &fakeChannel{}
	s := testSession(ch)
	sink := &recordingNotifier{}
	s.SetNotifier(sink)

	assert.True(t, s.WriteLine("hi"))
	assert.Equal(t, []string{"hi", "\n"}, sink.sends)
}

func TestWriteLineFailsWhenTerminatorFails(t *testing.T) {
	ch := &fakeChannel{}
	s := testSession(ch)

	// break the channel after the text goes out
	assert.True(t, s.WritePaced("hi"))
	ch.failWrite = true
	assert.False(t, s.WriteEndOfLine())
	assert.False(t, s.WriteLine("again"))
}
