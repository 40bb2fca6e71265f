// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package term

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/mattn/go-isatty"
)

// Sentinel errors for terminal setup.
var (
	ErrDoubleInit   = errors.New("terminal already initialized")
	ErrCodePage     = errors.New("failed to set console code page")
	ErrInputHandle  = errors.New("invalid console input handle")
	ErrOutputHandle = errors.New("invalid console output handle")
	ErrSetup        = errors.New("failed to configure console modes")
)

// Dimensions is the visible size of the terminal window in cells.
type Dimensions struct {
	Width  int
	Height int
}

// =============================================================================
// Options
// =============================================================================

type options struct {
	in      *os.File
	out     *os.File
	getenv  func(string) string
	support *ColorSupport
	logger  *slog.Logger
	exit    func(code int)
	signals []os.Signal
	setup   func(*Terminal) error
}

// Option configures a Terminal.
type Option func(*options)

// WithInput sets the console input file. Default: os.Stdin.
func WithInput(f *os.File) Option {
	return func(o *options) { o.in = f }
}

// WithOutput sets the console output file. Default: os.Stdout.
func WithOutput(f *os.File) Option {
	return func(o *options) { o.out = f }
}

// WithGetenv replaces os.Getenv for color support detection.
func WithGetenv(fn func(string) string) Option {
	return func(o *options) { o.getenv = fn }
}

// WithColorSupport skips detection and forces the given support level.
func WithColorSupport(s ColorSupport) Option {
	return func(o *options) { o.support = &s }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithExit replaces os.Exit for the signal handler.
func WithExit(fn func(code int)) Option {
	return func(o *options) { o.exit = fn }
}

// WithSignals replaces the signals watched by RegisterSignals.
func WithSignals(sigs ...os.Signal) Option {
	return func(o *options) { o.signals = sigs }
}

// =============================================================================
// Terminal
// =============================================================================

// Terminal is a prepared console session.
//
// # Description
//
// A Terminal owns a stack of exit handlers. Setup steps push a handler that
// undoes them; Close runs the handlers in reverse order exactly once. The
// reset handler pushed by New writes ResetAll to the output after platform
// setup, so it runs after caller handlers and before the platform restores.
//
// # Thread Safety
//
// All methods are safe for concurrent use.
//
// # Example
//
//	t, err := term.New()
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//	t.RegisterSignals()
type Terminal struct {
	mu sync.Mutex

	in      *os.File
	out     *os.File
	logger  *slog.Logger
	exit    func(code int)
	signals []os.Signal

	onExit  []func()
	err     error
	support ColorSupport
	closed  bool

	hasSignals bool
	sigCh      chan os.Signal
	stop       chan struct{}
	done       chan struct{}
}

// New prepares the console and returns the session.
//
// # Description
//
// Detects color support and applies platform setup. On Windows this selects
// the UTF-8 code page and enables virtual terminal processing on both
// console handles, pushing handlers that restore the previous modes. If a
// setup step fails, the handlers pushed so far run before New returns.
//
// # Outputs
//
//   - *Terminal: The session, nil on error.
//   - error: ErrCodePage, ErrInputHandle, ErrOutputHandle or ErrSetup (wrapped).
func New(opts ...Option) (*Terminal, error) {
	o := options{
		in:      os.Stdin,
		out:     os.Stdout,
		getenv:  os.Getenv,
		logger:  slog.Default(),
		exit:    os.Exit,
		signals: defaultSignals(),
		setup:   platformSetup,
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Terminal{
		in:      o.in,
		out:     o.out,
		logger:  o.logger,
		exit:    o.exit,
		signals: o.signals,
	}

	switch {
	case o.support != nil:
		t.support = *o.support
	case platformTrueColor:
		t.support = TrueColor
	default:
		t.support = DetectColorSupport(o.getenv)
	}

	if err := o.setup(t); err != nil {
		t.runExitHandlers()
		t.logger.Debug("terminal setup failed", slog.String("error", err.Error()))
		return nil, err
	}

	out := t.out
	t.OnExit(func() {
		_, _ = io.WriteString(out, ResetAll)
		_ = out.Sync()
	})

	t.logger.Debug("terminal initialized",
		slog.String("color_support", t.support.String()),
		slog.Bool("tty", t.IsTerminal()),
	)
	return t, nil
}

// DetectColorSupport inspects COLORTERM and TERM.
//
// # Description
//
// COLORTERM containing "24bit" or "truecolor" selects TrueColor. Otherwise
// COLORTERM or TERM containing "256" selects Color256. Anything else is
// Color16.
func DetectColorSupport(getenv func(string) string) ColorSupport {
	colorterm := getenv("COLORTERM")
	if strings.Contains(colorterm, "24bit") || strings.Contains(colorterm, "truecolor") {
		return TrueColor
	}
	if strings.Contains(colorterm, "256") || strings.Contains(getenv("TERM"), "256") {
		return Color256
	}
	return Color16
}

// OnExit pushes a handler that runs when the session closes. Handlers run
// in reverse push order. Handlers pushed after Close never run.
func (t *Terminal) OnExit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.onExit = append(t.onExit, fn)
}

// RegisterSignals installs termination signal handling.
//
// # Description
//
// On the first call, starts a goroutine that waits for one of the
// configured signals (SIGINT, SIGTERM, and SIGQUIT/SIGHUP on unix). On
// delivery the session closes and the process exits with 128+signo. Close
// stops the watcher and restores default signal behaviour. Subsequent
// calls are no-ops.
func (t *Terminal) RegisterSignals() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasSignals || t.closed {
		return
	}
	t.hasSignals = true

	t.sigCh = make(chan os.Signal, 1)
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	signal.Notify(t.sigCh, t.signals...)

	go t.watchSignals(t.sigCh, t.stop, t.done)
}

func (t *Terminal) watchSignals(ch <-chan os.Signal, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	select {
	case sig := <-ch:
		t.logger.Debug("terminal received signal", slog.String("signal", sig.String()))
		t.close(false)
		releaseSession(t)
		t.exit(exitCode(sig))
	case <-stop:
	}
}

// Close runs the exit handlers and stops signal handling. It is safe to
// call more than once.
func (t *Terminal) Close() error {
	t.close(true)
	return nil
}

func (t *Terminal) close(wait bool) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	sigCh, stop, done := t.sigCh, t.stop, t.done
	t.mu.Unlock()

	if sigCh != nil {
		signal.Stop(sigCh)
		close(stop)
		if wait {
			<-done
		}
	}

	t.runExitHandlers()
	t.logger.Debug("terminal rolled back")
}

func (t *Terminal) runExitHandlers() {
	t.mu.Lock()
	handlers := t.onExit
	t.onExit = nil
	t.mu.Unlock()

	for i := len(handlers) - 1; i >= 0; i-- {
		handlers[i]()
	}
}

// ColorSupport returns the detected color support level.
func (t *Terminal) ColorSupport() ColorSupport {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.support
}

// Err returns the last error recorded on the session, such as ErrDoubleInit.
func (t *Terminal) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// HasError reports whether an error has been recorded.
func (t *Terminal) HasError() bool {
	return t.Err() != nil
}

func (t *Terminal) setErr(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

// IsTerminal reports whether the output is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	fd := t.out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// QueryDimensions returns the window size of the output terminal, or zero
// dimensions when it cannot be determined.
func (t *Terminal) QueryDimensions() Dimensions {
	return queryDimensions(t.out)
}

// Writer returns the session output.
func (t *Terminal) Writer() io.Writer {
	return t.out
}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// =============================================================================
// Process Session
// =============================================================================

var (
	sessionMu sync.Mutex
	session   *Terminal
)

// Init creates the process-wide session.
//
// # Description
//
// A second Init while a session is live returns ErrDoubleInit and records
// it on the live session. After Rollback, Init may be called again.
func Init(opts ...Option) error {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if session != nil {
		session.setErr(ErrDoubleInit)
		return ErrDoubleInit
	}

	t, err := New(opts...)
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	session = t
	return nil
}

// Current returns the process-wide session, or nil before Init.
func Current() *Terminal {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return session
}

// releaseSession clears the process-wide session if it is t.
func releaseSession(t *Terminal) {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	if session == t {
		session = nil
	}
}

// Rollback closes the process-wide session. It is a no-op without one.
func Rollback() {
	sessionMu.Lock()
	t := session
	session = nil
	sessionMu.Unlock()

	if t != nil {
		_ = t.Close()
	}
}
