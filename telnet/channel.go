package telnet

import (
	"bufio"
	"net"
	"time"
)

// NoData is returned by Channel.ReadByte when no byte can be produced,
// either because the stream hit end-of-file or nothing arrived in time.
const NoData = -1

// Channel is the duplex byte transport a session drives. Implementations
// are not safe for concurrent use; callers serialize access to a session
// and therefore to its channel.
type Channel interface {
	CanRead() bool
	CanWrite() bool
	DataAvailable() bool
	ReadByte() int
	WriteBytes(p []byte) error
	Flush() error
}

// NetChannel adapts a net.Conn to the Channel interface. Availability is
// probed with a short read deadline and a one-byte pushback buffer, so a
// DataAvailable poll never discards input.
type NetChannel struct {
	// ReadTimeout bounds how long ReadByte waits before reporting
	// NoData. It covers the case of a negotiation sequence split
	// across packets; the session polls around it otherwise.
	ReadTimeout time.Duration

	conn   net.Conn
	w      *bufio.Writer
	peek   byte
	peeked bool
	closed bool
}

func NewNetChannel(conn net.Conn) *NetChannel {
	return &NetChannel{
		ReadTimeout: time.Second,
		conn:        conn,
		w:           bufio.NewWriter(conn),
	}
}

func (c *NetChannel) CanRead() bool  { return c.conn != nil && !c.closed }
func (c *NetChannel) CanWrite() bool { return c.conn != nil && !c.closed }

func (c *NetChannel) DataAvailable() bool {
	if c.peeked {
		return true
	}
	return c.fill(time.Millisecond)
}

func (c *NetChannel) ReadByte() int {
	if !c.peeked && !c.fill(c.ReadTimeout) {
		return NoData
	}
	c.peeked = false
	return int(c.peek)
}

func (c *NetChannel) fill(wait time.Duration) bool {
	if c.closed {
		return false
	}
	var buf [1]byte
	c.conn.SetReadDeadline(time.Now().Add(wait))
	n, err := c.conn.Read(buf[:])
	c.conn.SetReadDeadline(time.Time{})
	if n == 1 {
		c.peek, c.peeked = buf[0], true
		return true
	}
	if err != nil {
		if nerr, ok := err.(net.Error); !ok || !nerr.Timeout() {
			c.closed = true
		}
	}
	return false
}

func (c *NetChannel) WriteBytes(p []byte) error {
	_, err := c.w.Write(p)
	return err
}

func (c *NetChannel) Flush() error {
	return c.w.Flush()
}

func (c *NetChannel) Close() error {
	c.closed = true
	return c.conn.Close()
}
