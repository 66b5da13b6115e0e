package output

import (
	"io"
	"os"
	"sync"
)

// Hook intercepts writes made to a Channel. raw writes to the channel's
// underlying writer without re-entering the hook.
type Hook interface {
	Intercept(p []byte, raw io.Writer) (int, error)
}

// Channel is an interceptable output stream.
type Channel struct {
	name string

	mu      sync.Mutex
	w       io.Writer
	hook    Hook
	sibling *Channel

	writeMu sync.Mutex
}

// Standard process channels.
var (
	Stdout = NewChannel("stdout", os.Stdout)
	Stderr = NewChannel("stderr", os.Stderr)
)

func init() {
	Pair(Stdout, Stderr)
}

// NewChannel creates a channel writing to w.
func NewChannel(name string, w io.Writer) *Channel {
	return &Channel{name: name, w: w}
}

// Pair marks a and b as the two halves of a terminal's standard streams.
func Pair(a, b *Channel) {
	a.mu.Lock()
	a.sibling = b
	a.mu.Unlock()

	b.mu.Lock()
	b.sibling = a
	b.mu.Unlock()
}

func (c *Channel) Name() string { return c.name }

// Sibling returns the paired standard channel, or nil.
func (c *Channel) Sibling() *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sibling
}

// Writer returns the underlying writer.
func (c *Channel) Writer() io.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w
}

// SetWriter redirects the channel and returns the previous writer.
func (c *Channel) SetWriter(w io.Writer) io.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.w
	c.w = w
	return prev
}

// File returns the underlying *os.File when there is one.
func (c *Channel) File() (*os.File, bool) {
	f, ok := c.Writer().(*os.File)
	return f, ok
}

// Write sends p through the installed hook, if any.
func (c *Channel) Write(p []byte) (int, error) {
	c.mu.Lock()
	hook := c.hook
	c.mu.Unlock()

	if hook != nil {
		return hook.Intercept(p, rawWriter{c})
	}
	return c.WriteRaw(p)
}

// WriteString is Write for strings.
func (c *Channel) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// WriteRaw writes p to the underlying writer, bypassing any hook.
func (c *Channel) WriteRaw(p []byte) (int, error) {
	w := c.Writer()
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return w.Write(p)
}

func (c *Channel) currentHook() Hook {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hook
}

func (c *Channel) setHook(h Hook) {
	c.mu.Lock()
	c.hook = h
	c.mu.Unlock()
}

type rawWriter struct{ c *Channel }

func (r rawWriter) Write(p []byte) (int, error) { return r.c.WriteRaw(p) }
