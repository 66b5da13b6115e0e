package output_test

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/output"
)

type bracketHook struct {
	calls int
}

func (h *bracketHook) Intercept(p []byte, raw io.Writer) (int, error) {
	h.calls++
	if _, err := raw.Write([]byte("[")); err != nil {
		return 0, err
	}
	n, err := raw.Write(p)
	if err != nil {
		return n, err
	}
	_, err = raw.Write([]byte("]"))
	return n, err
}

func TestChannelWrite(t *testing.T) {
	var buf bytes.Buffer
	ch := output.NewChannel("test", &buf)

	_, err := ch.WriteString("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
	assert.Equal(t, "test", ch.Name())
}

func TestChannelHook(t *testing.T) {
	var buf bytes.Buffer
	ch := output.NewChannel("test", &buf)
	reg := output.NewRegistry()
	hook := &bracketHook{}

	require.NoError(t, reg.Install(ch, hook))

	n, err := ch.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = ch.WriteRaw([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "[hi]raw", buf.String())
	assert.Equal(t, 1, hook.calls)

	require.True(t, reg.Remove(ch, hook))
	_, err = ch.WriteString("!")
	require.NoError(t, err)
	assert.Equal(t, "[hi]raw!", buf.String())
}

func TestChannelSetWriter(t *testing.T) {
	var first, second bytes.Buffer
	ch := output.NewChannel("test", &first)

	prev := ch.SetWriter(&second)
	assert.Same(t, &first, prev)

	_, err := ch.WriteString("x")
	require.NoError(t, err)
	assert.Empty(t, first.String())
	assert.Equal(t, "x", second.String())

	_, isFile := ch.File()
	assert.False(t, isFile)
}

func TestChannelPair(t *testing.T) {
	assert.Same(t, output.Stderr, output.Stdout.Sibling())
	assert.Same(t, output.Stdout, output.Stderr.Sibling())

	a := output.NewChannel("a", io.Discard)
	b := output.NewChannel("b", io.Discard)
	assert.Nil(t, a.Sibling())

	output.Pair(a, b)
	assert.Same(t, b, a.Sibling())
	assert.Same(t, a, b.Sibling())
}

func TestRegistry(t *testing.T) {
	ch := output.NewChannel("test", io.Discard)
	reg := output.NewRegistry()
	first, second := &bracketHook{}, &bracketHook{}

	require.NoError(t, reg.Install(ch, first))
	assert.True(t, reg.Hooked(ch))

	err := reg.Install(ch, second)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookConflict))
	assert.Equal(t, "test", errors.GetErrorDetails(err)["channel"])

	err = reg.Install(ch, first)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookConflict))

	assert.False(t, reg.Remove(ch, second))
	assert.True(t, reg.Hooked(ch))

	assert.True(t, reg.Remove(ch, first))
	assert.False(t, reg.Hooked(ch))
	assert.False(t, reg.Remove(ch, first))

	require.NoError(t, reg.Install(ch, second))
}

func TestRegistryInstallIsExclusive(t *testing.T) {
	ch := output.NewChannel("test", io.Discard)
	reg := output.NewRegistry()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if reg.Install(ch, &bracketHook{}) == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
