package input

import (
	"context"
	"fmt"
	"io"
)

// readBytesUntil runs the raw byte-at-a-time loop used by WithBytesUntil.
//
// The stop byte is the first byte of the configured stop string; an empty
// string leaves nothing to stop on and fails with ErrNoStopByte. The byte
// stream is standard input itself, not the terminal device, so this mode
// also works when stdin is a pipe or redirection. The terminal is involved
// only for the raw-mode toggle, and only best-effort: with no controlling
// terminal, or on a line-buffered one, the bytes still arrive, just a line
// at a time.
//
// Each iteration appends one byte, then checks in order: the character
// limit, the 0x03 interrupt marker, and the stop byte. The stop byte is
// included in the result. Every exit path restores canonical mode before
// returning, and an error never carries partial input.
func (r *Reader) readBytesUntil(ctx context.Context) ([]byte, error) {
	if err := r.ensureTerminal(); err == nil {
		_ = r.terminal.SetRaw()
	}

	r.writePrompt()

	if r.config.bytesUntil == "" {
		r.restoreTerminal()
		return nil, ErrNoStopByte
	}
	stop := r.config.bytesUntil[0]

	var buf [1]byte
	var buffer []byte
	for {
		if err := ctx.Err(); err != nil {
			r.restoreTerminal()
			return nil, err
		}

		if _, err := io.ReadFull(r.stdin, buf[:]); err != nil {
			r.restoreTerminal()
			return nil, fmt.Errorf("failed to read byte: %w", err)
		}
		b := buf[0]
		buffer = append(buffer, b)

		if r.config.limitReached(len(buffer)) {
			break
		}
		if b == interruptByte {
			r.restoreTerminal()
			return nil, ErrInterrupted
		}
		if b == stop {
			break
		}
	}

	r.restoreTerminal()
	return buffer, nil
}
