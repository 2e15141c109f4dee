package input

import (
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations for testability and
// cross-platform compatibility.
//
// It covers exactly what the capture loops need from the terminal: toggling
// raw mode, reading classified key events, checking for queued input so
// stale keystrokes can be drained, and releasing the tty handle. Byte-until
// mode reads its bytes from standard input directly and uses only the mode
// toggle here.
//
// Implementations:
//   - realTerminal: go-tty plus golang.org/x/term for actual terminal use
//   - mockTerminal: scripted events for deterministic tests
type terminalInterface interface {
	SetRaw() error                // Enter raw mode for immediate key delivery
	Restore() error               // Restore original terminal settings
	ReadEvent() (keyEvent, error) // Block for the next classified key event
	Buffered() bool               // Report queued, not-yet-read input
	Close() error                 // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface using external libraries.
//
// go-tty provides the cross-platform tty handle and rune-level reads;
// golang.org/x/term manages the raw/canonical mode state. The original state
// is captured on every SetRaw and cleared after Restore, so repeated
// enter/exit cycles always restore to a fresh baseline. Restore when no raw
// state is held is a no-op, never an error. The closed flag prevents the
// Windows panic on double Close.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool
	stdinFd       int
	originalState *term.State // nil whenever the terminal is canonical
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture current terminal state before entering raw mode so Restore
	// always has a baseline, no matter how many times we cycle.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Reset so the next SetRaw captures a fresh baseline
		t.originalState = nil
		return err
	}
	return nil
}

// ReadEvent blocks for the next rune and classifies it as a key event.
//
// ESC immediately followed by queued input is an escape sequence: CSI/SS3
// sequences (arrows, function keys) are consumed whole and reported as a
// single non-character key, anything else is the next key with Alt held.
// A lone ESC is the Escape key itself.
func (t *realTerminal) ReadEvent() (keyEvent, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return keyEvent{}, err
	}
	if r == 0x1b && t.tty.Buffered() {
		next, err := t.tty.ReadRune()
		if err != nil {
			return keyEvent{}, err
		}
		if next == '[' || next == 'O' {
			t.skipEscapeSequence()
			return keyEvent{code: keyOther}, nil
		}
		ev := decodeKeyEvent(next)
		ev.mod |= modAlt
		return ev, nil
	}
	return decodeKeyEvent(r), nil
}

// skipEscapeSequence consumes the remainder of a CSI or SS3 sequence so an
// arrow or function key surfaces as a single event instead of a burst of
// spurious characters.
func (t *realTerminal) skipEscapeSequence() {
	for t.tty.Buffered() {
		r, err := t.tty.ReadRune()
		if err != nil {
			return
		}
		if r >= 0x40 && r <= 0x7e {
			return // final byte of the sequence
		}
	}
}

// Buffered reports whether input is already queued on the terminal. Used to
// drain stale keystrokes before a capture starts.
func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
