// Package suspend wraps the readline editor so that Ctrl+Z stops the process
// the way it would for a program reading in cooked mode.
//
// The editor reads in raw mode, so the terminal never turns Ctrl+Z into
// SIGTSTP by itself. Instead the key is bound to submit Marker as the line;
// ReadLine recognises the marker, raises SIGTSTP against the process and
// reports OutcomeSuspended once the shell continues it.
package suspend

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jmorganca/suspendline/readline"
)

// Marker is the line the editor submits when Ctrl+Z is pressed. The editor
// drops control characters from typed and pasted input, so the NUL bytes
// make it impossible to enter from the keyboard.
const Marker = "\x00suspendline:suspend\x00"

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAborted
	OutcomeSuspended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAborted:
		return "aborted"
	case OutcomeSuspended:
		return "suspended"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the classified result of one ReadLine call. Line is only set
// for OutcomeSuccess.
type Result struct {
	Outcome Outcome
	Line    string
}

// Engine is the line editor being wrapped.
type Engine interface {
	ReadlineWithPrompt(prompt *readline.Prompt) (string, error)
	Flush() error
}

// Stopper stops the current process and returns once it is continued.
type Stopper interface {
	Stop() error
}

type StopperFunc func() error

func (f StopperFunc) Stop() error {
	return f()
}

// Editor reads lines with suspend support. It is not safe for concurrent
// use.
type Editor struct {
	engine  Engine
	marker  string
	stopper Stopper
	out     io.Writer
	logger  *slog.Logger
}

type Option func(*Editor)

// WithStopper replaces the platform stopper. A nil stopper makes Ctrl+Z a
// no-op that still reports OutcomeSuspended.
func WithStopper(s Stopper) Option {
	return func(e *Editor) {
		e.stopper = s
	}
}

// WithOutput sets where suspend and resume notices are written.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) {
		e.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// Config is used by New to build the underlying readline instance. With
// NoHistory set the history file is never opened or created.
type Config struct {
	Prompt       readline.Prompt
	Terminal     *readline.Terminal
	HistoryFile  string
	HistoryLimit int
	NoHistory    bool
}

// New creates a readline instance whose Ctrl+Z binding submits Marker and
// wraps it in an Editor.
func New(cfg Config, opts ...Option) (*Editor, error) {
	keymap := readline.DefaultEmacsKeymap()
	RemapSuspendKey(keymap, Marker)

	historyFile := cfg.HistoryFile
	if cfg.NoHistory {
		historyFile = ""
	}

	rl, err := readline.New(cfg.Prompt, readline.Options{
		Keymap:       keymap,
		Terminal:     cfg.Terminal,
		HistoryFile:  historyFile,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		return nil, err
	}

	if cfg.NoHistory {
		rl.HistoryDisable()
	}

	return NewWithEngine(rl, Marker, opts...), nil
}

// NewWithEngine wraps an engine whose suspend key already submits marker.
func NewWithEngine(engine Engine, marker string, opts ...Option) *Editor {
	e := &Editor{
		engine:  engine,
		marker:  marker,
		stopper: defaultStopper(),
		out:     os.Stdout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With("session", uuid.NewString())
	return e
}

// Marker returns the line that signals a suspend request.
func (e *Editor) Marker() string {
	return e.marker
}

// ReadLine reads one line with prompt. Ctrl+C and end of input report
// OutcomeAborted. Ctrl+Z stops the process, where job control exists, and
// reports OutcomeSuspended after it resumes. Errors are *EditorError or
// *SuspendError.
func (e *Editor) ReadLine(prompt *readline.Prompt) (Result, error) {
	line, err := e.engine.ReadlineWithPrompt(prompt)
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		e.logger.Debug("read aborted", "error", err)
		return Result{Outcome: OutcomeAborted}, nil
	case err != nil:
		e.logger.Debug("read failed", "error", err)
		return Result{}, &EditorError{Err: err}
	}

	if line != e.marker {
		return Result{Outcome: OutcomeSuccess, Line: line}, nil
	}

	if err := e.suspend(); err != nil {
		return Result{}, err
	}

	return Result{Outcome: OutcomeSuspended}, nil
}

func (e *Editor) suspend() error {
	// a failed flush only loses pending output; the stop still happens
	if err := e.engine.Flush(); err != nil {
		e.logger.Warn("flushing editor output before suspend", "error", err)
	}
	if f, ok := e.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			e.logger.Warn("flushing output before suspend", "error", err)
		}
	}

	if e.stopper == nil {
		e.logger.Debug("suspend requested without job control")
		fmt.Fprintln(e.out, "\nSuspend (Ctrl+Z) pressed, but not supported on this platform. Ignoring.")
		return nil
	}

	e.logger.Debug("suspending process")
	if err := e.stopper.Stop(); err != nil {
		e.logger.Error("suspend failed", "error", err)
		return &SuspendError{Err: err}
	}

	e.logger.Debug("resumed process")
	fmt.Fprintln(e.out, "Resumed.")
	return nil
}
