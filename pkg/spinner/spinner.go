// Package spinner draws an animated, self-clearing status line.
//
// While a spinner runs it intercepts its output channel, and the paired
// standard channel when there is one. Foreign writes clear the spinner
// first and redraw it afterwards, so log lines never interleave with the
// animation. A write that does not end in a newline defers the redraw until
// the line is finished.
package spinner

import (
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/output"
	"github.com/arthur-debert/termrender/pkg/theme"
)

// SignalSource delivers process signals.
type SignalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type osSignals struct{}

func (osSignals) Notify(c chan<- os.Signal, sig ...os.Signal) { signal.Notify(c, sig...) }
func (osSignals) Stop(c chan<- os.Signal) { signal.Stop(c) }

// Options configures a Spinner. Zero values pick the documented defaults.
type Options struct {
	// Frames and Interval take precedence over Preset.
	Frames   []string
	Interval time.Duration
	Preset   string
	Message  string
	Theme    theme.Theme

	// Channel defaults to output.Stderr; Registry to output.DefaultRegistry.
	Channel  *output.Channel
	Registry *output.Registry

	// Interactive enables cursor movement and the animation ticker.
	Interactive bool
	// Columns is the terminal width used to count wrapped lines; 0 means 80.
	Columns int

	// HandleSignals stops the spinner and exits on SIGINT or SIGTERM.
	HandleSignals bool
	Signals       SignalSource
	Exit          func(code int)
	Now           func() time.Time
}

// Spinner is an animated status line. It is safe for concurrent use.
type Spinner struct {
	frames      []string
	interval    time.Duration
	theme       theme.Theme
	ch          *output.Channel
	registry    *output.Registry
	interactive bool
	columns     int
	handleSigs  bool
	signals     SignalSource
	exit        func(int)
	now         func() time.Time
	hook        *interceptor

	// life serializes Start and Stop; mu guards the drawing state.
	life          sync.Mutex
	mu            sync.Mutex
	message       string
	currentFrame  int
	lastAdvance   time.Time
	spinning      bool
	deferring     bool
	linesRendered int
	hooked        []*output.Channel
	stopTick      chan struct{}
	tickDone      chan struct{}
	sigCh         chan os.Signal
}

// New creates a stopped spinner.
func New(opts Options) (*Spinner, error) {
	frames, interval := opts.Frames, opts.Interval

	if len(frames) == 0 {
		name := opts.Preset
		if name == "" {
			name = DefaultPreset
		}
		p, ok := LookupPreset(name)
		if !ok {
			return nil, errors.Newf(errors.ErrUnknownPreset, "unknown spinner preset %q", name).
				WithDetail("preset", name)
		}
		if !opts.Theme.Unicode() && !p.ascii() {
			p, _ = LookupPreset(asciiPreset)
		}
		frames = p.Frames
		if interval <= 0 {
			interval = p.Interval
		}
	}
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}

	s := &Spinner{
		frames:       append([]string(nil), frames...),
		interval:     interval,
		theme:        opts.Theme,
		ch:           opts.Channel,
		registry:     opts.Registry,
		interactive:  opts.Interactive,
		columns:      opts.Columns,
		handleSigs:   opts.HandleSignals,
		signals:      opts.Signals,
		exit:         opts.Exit,
		now:          opts.Now,
		message:      opts.Message,
		currentFrame: -1,
	}
	if s.ch == nil {
		s.ch = output.Stderr
	}
	if s.registry == nil {
		s.registry = output.DefaultRegistry
	}
	if s.columns <= 0 {
		s.columns = 80
	}
	if s.signals == nil {
		s.signals = osSignals{}
	}
	if s.exit == nil {
		s.exit = os.Exit
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.hook = &interceptor{s: s}
	return s, nil
}

// Start begins spinning. It is a no-op when already spinning and fails
// with ErrHookConflict when another hook owns one of the channels.
func (s *Spinner) Start(message ...string) error {
	s.life.Lock()
	defer s.life.Unlock()

	s.mu.Lock()
	if s.spinning {
		s.mu.Unlock()
		return nil
	}
	if len(message) > 0 {
		s.message = message[0]
	}

	if err := s.installHooks(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.spinning = true
	s.deferring = false
	s.currentFrame = -1
	s.linesRendered = 0

	var err error
	if s.interactive {
		_, err = s.ch.WriteRaw([]byte(ansi.HideCursor))
	}
	if renderErr := s.renderLocked(); err == nil {
		err = renderErr
	}

	if s.handleSigs {
		s.sigCh = make(chan os.Signal, 1)
		s.signals.Notify(s.sigCh, syscall.SIGINT, syscall.SIGTERM)
		go s.watchSignals(s.sigCh)
	}
	if s.interactive {
		s.stopTick = make(chan struct{})
		s.tickDone = make(chan struct{})
		go s.tick(s.stopTick, s.tickDone)
	}
	hooked := len(s.hooked)
	s.mu.Unlock()

	logger := logging.GetLogger("spinner")
	logger.Debug().
		Bool("interactive", s.interactive).
		Int("hookedChannels", hooked).
		Msg("spinner started")
	return err
}

func (s *Spinner) installHooks() error {
	targets := []*output.Channel{s.ch}
	if sib := s.ch.Sibling(); sib != nil {
		targets = append(targets, sib)
	}
	for _, ch := range targets {
		if err := s.registry.Install(ch, s.hook); err != nil {
			s.removeHooks()
			return err
		}
		s.hooked = append(s.hooked, ch)
	}
	return nil
}

func (s *Spinner) removeHooks() {
	for _, ch := range s.hooked {
		s.registry.Remove(ch, s.hook)
	}
	s.hooked = nil
}

// Stop clears the spinner, restores the channels and the cursor and writes
// final, if given, on its own line. It is a no-op when not spinning.
func (s *Spinner) Stop(final ...string) error {
	s.life.Lock()
	defer s.life.Unlock()

	s.mu.Lock()
	if !s.spinning {
		s.mu.Unlock()
		return nil
	}
	s.spinning = false
	stopTick, tickDone := s.stopTick, s.tickDone
	s.stopTick, s.tickDone = nil, nil
	s.mu.Unlock()

	if stopTick != nil {
		close(stopTick)
		<-tickDone
	}

	s.mu.Lock()
	var b strings.Builder
	b.WriteString(s.clearSequence())
	s.linesRendered = 0
	s.removeHooks()
	if s.interactive {
		b.WriteString(ansi.ShowCursor)
	}
	if s.sigCh != nil {
		s.signals.Stop(s.sigCh)
		close(s.sigCh)
		s.sigCh = nil
	}
	if len(final) > 0 {
		if s.deferring {
			b.WriteString("\n")
		}
		b.WriteString(final[0])
		b.WriteString("\n")
	}
	s.deferring = false

	var err error
	if b.Len() > 0 {
		_, err = s.ch.WriteRaw([]byte(b.String()))
	}
	s.mu.Unlock()

	logger := logging.GetLogger("spinner")
	logger.Debug().Msg("spinner stopped")
	return err
}

// SetMessage replaces the text shown after the frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	_ = s.renderLocked()
}

// Tick advances the animation if the interval has elapsed and redraws.
// The ticker calls it; it is exported for callers driving their own loop.
func (s *Spinner) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.renderLocked()
}

func (s *Spinner) Success(message string) error { return s.finish(theme.KindSuccess, message) }
func (s *Spinner) Error(message string) error { return s.finish(theme.KindError, message) }
func (s *Spinner) Warning(message string) error { return s.finish(theme.KindWarning, message) }
func (s *Spinner) Info(message string) error { return s.finish(theme.KindInfo, message) }
func (s *Spinner) Help(message string) error { return s.finish(theme.KindHelp, message) }

func (s *Spinner) finish(kind theme.Kind, message string) error {
	return s.Stop(output.FormatMessage(s.theme, kind, message))
}

// LinesRendered is the number of terminal lines the last draw occupied.
func (s *Spinner) LinesRendered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesRendered
}

func (s *Spinner) IsSpinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinning
}

// Frames returns the frame sequence in use.
func (s *Spinner) Frames() []string {
	return append([]string(nil), s.frames...)
}

func (s *Spinner) Interval() time.Duration { return s.interval }

// renderLocked draws the current frame. Callers hold s.mu.
func (s *Spinner) renderLocked() error {
	if !s.spinning || s.deferring {
		return nil
	}

	now := s.now()
	if s.currentFrame < 0 || now.Sub(s.lastAdvance) >= s.interval {
		s.currentFrame = (s.currentFrame + 1) % len(s.frames)
		s.lastAdvance = now
	}

	text := s.theme.Paint(theme.Primary, s.frames[s.currentFrame])
	if s.message != "" {
		text += " " + s.message
	}

	if !s.interactive {
		_, err := s.ch.WriteRaw([]byte(text + "\n"))
		return err
	}

	var b strings.Builder
	b.WriteString(ansi.SyncStart)
	b.WriteString(s.clearSequence())
	b.WriteString(text)
	b.WriteString(ansi.SyncEnd)
	s.linesRendered = countLines(text, s.columns)

	_, err := s.ch.WriteRaw([]byte(b.String()))
	return err
}

// clearSequence erases the lines of the last draw, leaving the cursor at
// the start of the first one.
func (s *Spinner) clearSequence() string {
	if !s.interactive || s.linesRendered == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < s.linesRendered; i++ {
		b.WriteString(ansi.EraseLine)
		if i < s.linesRendered-1 {
			b.WriteString(ansi.CursorUp(1))
		}
	}
	b.WriteString(ansi.CursorToColumn(1))
	return b.String()
}

// countLines is the number of terminal rows text occupies at columns wide.
func countLines(text string, columns int) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		w := ansi.VisibleWidth(line)
		n += max(1, (w+columns-1)/columns)
	}
	return n
}

func (s *Spinner) tick(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.Tick()
		}
	}
}

func (s *Spinner) watchSignals(c <-chan os.Signal) {
	sig, ok := <-c
	if !ok {
		return
	}
	code := 130
	if sig == syscall.SIGTERM {
		code = 143
	}
	logger := logging.GetLogger("spinner")
	logger.Debug().Str("signal", sig.String()).Int("exitCode", code).Msg("interrupted")
	_ = s.Stop()
	s.exit(code)
}

// interceptor clears the spinner around foreign writes.
type interceptor struct {
	s *Spinner
}

func (h *interceptor) Intercept(p []byte, raw io.Writer) (int, error) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.spinning {
		return raw.Write(p)
	}

	if seq := s.clearSequence(); seq != "" {
		if _, err := s.ch.WriteRaw([]byte(seq)); err != nil {
			return 0, err
		}
		s.linesRendered = 0
	}

	n, err := raw.Write(p)
	if err != nil {
		return n, err
	}
	if len(p) > 0 {
		s.deferring = p[len(p)-1] != '\n'
	}
	if !s.deferring {
		_ = s.renderLocked()
	}
	return n, nil
}
