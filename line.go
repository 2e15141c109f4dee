package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readLine performs one blocking, canonical-mode read of a full line.
//
// Raw mode is never entered on this path, so there is no terminal state to
// clean up. Exactly one trailing line terminator is stripped: a trailing LF,
// and the CR before it if present, covering both bare-LF and CRLF endings.
// Multiple trailing newlines are not stripped. EOF with a partial line is a
// successful read of that partial line; the result may be empty.
func (r *Reader) readLine() (string, error) {
	r.writePrompt()

	line, err := bufio.NewReader(r.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	if rest, ok := strings.CutSuffix(line, "\n"); ok {
		line = strings.TrimSuffix(rest, "\r")
	}
	return line, nil
}
