package telnet

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

type fakeChannel struct {
	in  bytes.Buffer
	out bytes.Buffer

	noRead    bool
	noWrite   bool
	failWrite bool
}

func (c *fakeChannel) CanRead() bool       { return !c.noRead }
func (c *fakeChannel) CanWrite() bool      { return !c.noWrite }
func (c *fakeChannel) DataAvailable() bool { return c.in.Len() > 0 }

func (c *fakeChannel) ReadByte() int {
	b, err := c.in.ReadByte()
	if err != nil {
		return NoData
	}
	return int(b)
}

func (c *fakeChannel) WriteBytes(p []byte) error {
	if c.failWrite {
		return errors.New("broken pipe")
	}
	_, err := c.out.Write(p)
	return err
}

func (c *fakeChannel) Flush() error { return nil }

type recordingNotifier struct {
	sends []string
	reads []string
}

func (r *recordingNotifier) SendStarted(text string)   { r.sends = append(r.sends, text) }
func (r *recordingNotifier) ReadCompleted(text string) { r.reads = append(r.reads, text) }

// testSession shortens the pacing intervals so drains terminate quickly.
func testSession(ch Channel) *Session {
	return NewSession(ch, Config{
		WriteDelay:          time.Millisecond,
		PollInterval:        time.Millisecond,
		NonEmptyReadTimeout: 20 * time.Millisecond,
	})
}

// processBytes feeds in through a session's drain loop and reports the
// accumulated text bytes and anything written back on the wire.
func processBytes(t *testing.T, in []byte) (text, wire []byte) {
	ch := &fakeChannel{}
	ch.in.Write(in)
	s := testSession(ch)

	var buf bytes.Buffer
	s.drain(&buf)
	t.Logf("text %q wire %q", buf.Bytes(), ch.out.Bytes())
	return buf.Bytes(), ch.out.Bytes()
}
