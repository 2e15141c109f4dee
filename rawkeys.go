package input

import (
	"context"
	"fmt"
)

// readRawKeys runs the raw-mode key-event loop used by WithNumChars and
// WithSuppressOutput.
//
// Raw mode is required here, so entering it must succeed. Before the loop,
// any input already queued on the terminal is drained so stale keystrokes
// are not misattributed to this read. The loop then accumulates character
// presses with single-character backspace editing until the limit is hit or
// Enter is pressed. Ctrl+C cancels with ErrInterrupted; other Ctrl- or
// Alt-modified characters, key releases, and unrecognized keys are ignored.
//
// Every exit path, including each error branch, restores canonical mode
// before returning. An error never carries partial input.
func (r *Reader) readRawKeys(ctx context.Context) (string, error) {
	r.writePrompt()

	if err := r.ensureTerminal(); err != nil {
		return "", err
	}
	if err := r.terminal.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	if err := r.drainPending(); err != nil {
		r.restoreTerminal()
		return "", fmt.Errorf("failed to drain pending input: %w", err)
	}

	var buf []rune
	for !r.config.limitReached(len(buf)) {
		if err := ctx.Err(); err != nil {
			r.restoreTerminal()
			return "", err
		}

		ev, err := r.terminal.ReadEvent()
		if err != nil {
			r.restoreTerminal()
			return "", fmt.Errorf("failed to read key event: %w", err)
		}
		if ev.kind != keyPress && ev.kind != keyRepeat {
			continue
		}

		switch ev.code {
		case keyRune:
			if ev.mod&(modCtrl|modAlt) != 0 {
				if ev.mod&modCtrl != 0 && ev.r == 'c' {
					r.restoreTerminal()
					return "", ErrInterrupted
				}
				continue
			}
			buf = append(buf, ev.r)
		case keyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case keyEnter:
			r.restoreTerminal()
			return string(buf), nil
		}
		// Any other key: ignored, keep reading.
	}

	r.restoreTerminal()
	return string(buf), nil
}

// drainPending reads and discards input events already queued on the
// terminal, so a capture only sees keys pressed after it started.
func (r *Reader) drainPending() error {
	for r.terminal.Buffered() {
		if _, err := r.terminal.ReadEvent(); err != nil {
			return err
		}
	}
	return nil
}
