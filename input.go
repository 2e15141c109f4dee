// Package input provides blocking keyboard input acquisition for terminal
// programs: line-buffered text, raw-mode keystroke capture with a character
// limit, and raw byte reads that stop on a caller-chosen byte.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
)

// Common errors
var (
	// ErrInterrupted is returned when the user cancels a raw-mode read with
	// Ctrl+C (or a raw 0x03 byte in byte-until mode).
	ErrInterrupted = errors.New("interrupted")
	// ErrNoStopByte is returned when WithBytesUntil was given an empty
	// string, leaving no byte to stop on.
	ErrNoStopByte = errors.New("input can't stop on this byte")
)

// InvalidNumCharsError reports a character limit below one. The limit is
// validated before any read starts and before the terminal is touched.
type InvalidNumCharsError struct {
	NumChars int
}

func (e *InvalidNumCharsError) Error() string {
	return fmt.Sprintf("number of characters to read must be positive, got %d", e.NumChars)
}

// interruptByte is the raw byte delivered by Ctrl+C in raw mode (ETX).
const interruptByte = 0x03

// captureMode identifies which of the three read paths an invocation uses.
// It is selected exactly once from the validated options.
type captureMode int

const (
	modeLine       captureMode = iota // canonical-mode line read
	modeRawKeys                       // raw-mode key-event loop
	modeBytesUntil                    // raw-mode byte read until a stop byte
)

// config holds the per-invocation options. It is immutable once New returns.
type config struct {
	prompt         string
	bytesUntil     string
	hasBytesUntil  bool
	numChars       int
	hasNumChars    bool
	suppressOutput bool
}

// mode selects the capture mode. Precedence: a stop-byte source wins, then
// the raw key loop if a character limit or suppress-output was given, then
// the plain line read.
func (c *config) mode() captureMode {
	switch {
	case c.hasBytesUntil:
		return modeBytesUntil
	case c.hasNumChars || c.suppressOutput:
		return modeRawKeys
	default:
		return modeLine
	}
}

// limitReached reports whether a buffer of n elements has hit the character
// limit. Without a limit the buffer may grow indefinitely.
func (c *config) limitReached(n int) bool {
	return c.hasNumChars && n >= c.numChars
}

// Option represents a configuration option for a Reader.
type Option func(*config)

// WithPrompt sets a prompt string written verbatim (no trailing newline)
// before the first blocking read.
func WithPrompt(prompt string) Option {
	return func(c *config) {
		c.prompt = prompt
	}
}

// WithBytesUntil switches the Reader to byte-until mode: raw bytes are read
// one at a time until the first byte of stop is seen. The stop byte is
// included in the result, and the result is binary rather than text.
//
// An empty stop string is rejected with ErrNoStopByte at read time.
func WithBytesUntil(stop string) Option {
	return func(c *config) {
		c.bytesUntil = stop
		c.hasBytesUntil = true
	}
}

// WithNumChars limits the capture to n characters and switches the Reader to
// the raw key-event loop. n must be at least 1; New rejects smaller values.
func WithNumChars(n int) Option {
	return func(c *config) {
		c.numChars = n
		c.hasNumChars = true
	}
}

// WithSuppressOutput reads keystrokes without echoing them. This routes
// through the same raw key-event loop as WithNumChars: raw mode itself
// disables the terminal's echo, no further suppression is involved.
func WithSuppressOutput() Option {
	return func(c *config) {
		c.suppressOutput = true
	}
}

// Value is the result of a read: text for line and raw-key mode, binary for
// byte-until mode.
type Value struct {
	text   string
	data   []byte
	binary bool
}

// IsBinary reports whether the value came from byte-until mode.
func (v Value) IsBinary() bool { return v.binary }

// Text returns the captured text. It is empty for binary values.
func (v Value) Text() string { return v.text }

// Bytes returns the captured bytes. It is nil for text values.
func (v Value) Bytes() []byte { return v.data }

// Reader performs one or more blocking input reads according to its options.
//
// A Reader is single-threaded: the calling goroutine is blocked for the
// duration of every read. The terminal is opened lazily and only for the
// raw-mode toggle: line mode never opens it, and byte-until mode tolerates
// its absence, so both keep working when stdin is a pipe and no controlling
// terminal exists. Only the raw key-event loop requires a terminal.
type Reader struct {
	config       config
	output       io.Writer // prompt destination (colorable on Windows)
	stdin        io.Reader // line-mode and byte-until-mode source
	terminal     terminalInterface
	openTerminal func() (terminalInterface, error)
}

// New creates a Reader from the supplied options.
//
// The character limit is validated here, before any read begins and before
// the terminal mode is ever touched.
//
// Example:
//
//	r, err := input.New(input.WithPrompt("name: "))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	v, err := r.Read()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(v.Text())
func New(opts ...Option) (*Reader, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.hasNumChars && cfg.numChars < 1 {
		return nil, &InvalidNumCharsError{NumChars: cfg.numChars}
	}

	// Setup output writer with Windows ANSI support
	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &Reader{
		config: cfg,
		output: output,
		stdin:  os.Stdin,
		openTerminal: func() (terminalInterface, error) {
			return newRealTerminal()
		},
	}, nil
}

// Read blocks until input is captured and returns it as a Value.
//
// It is a convenience wrapper around ReadWithContext with a background
// context.
func (r *Reader) Read() (Value, error) {
	return r.ReadWithContext(context.Background())
}

// ReadWithContext blocks until input is captured, the context is cancelled,
// or an error occurs.
//
// Cancellation is cooperative: it is checked between blocking reads, so a
// cancelled context takes effect on the next key event or byte. Whatever the
// exit path, the terminal is back in canonical mode when this returns, and no
// partial buffer accompanies an error.
func (r *Reader) ReadWithContext(ctx context.Context) (Value, error) {
	switch r.config.mode() {
	case modeBytesUntil:
		data, err := r.readBytesUntil(ctx)
		if err != nil {
			return Value{}, err
		}
		return Value{data: data, binary: true}, nil
	case modeRawKeys:
		text, err := r.readRawKeys(ctx)
		if err != nil {
			return Value{}, err
		}
		return Value{text: text}, nil
	default:
		text, err := r.readLine()
		if err != nil {
			return Value{}, err
		}
		return Value{text: text}, nil
	}
}

// Close releases the terminal handle if one was opened. It is safe to call
// multiple times and on Readers that never entered a raw-mode path.
func (r *Reader) Close() error {
	if r.terminal != nil {
		return r.terminal.Close()
	}
	return nil
}

// writePrompt writes the prompt, if any, before the first blocking read.
// os.Stdout is unbuffered, so the prompt is visible before the process
// blocks.
func (r *Reader) writePrompt() {
	if r.config.prompt == "" {
		return
	}
	fmt.Fprint(r.output, r.config.prompt)
}

// ensureTerminal opens the real terminal on first use of a raw-mode path.
// The raw key-event loop treats a failure as fatal; byte-until mode
// tolerates it, since its byte stream comes from stdin rather than the
// terminal device.
func (r *Reader) ensureTerminal() error {
	if r.terminal != nil {
		return nil
	}
	t, err := r.openTerminal()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	r.terminal = t
	return nil
}

// restoreTerminal switches the terminal back to canonical mode. Restoration
// is best effort: a failure here must never mask the primary result, so the
// error is swallowed. Every path that entered raw mode calls this before
// returning.
func (r *Reader) restoreTerminal() {
	if r.terminal != nil {
		_ = r.terminal.Restore()
	}
}
