// Package input provides blocking keyboard input acquisition for terminal
// programs.
//
// The package reads user input in one of three modes, selected once from the
// options passed to New:
//
//   - Line mode (the default): one canonical-mode read of a full line from
//     standard input, with the trailing LF or CRLF stripped.
//   - Raw-key mode (WithNumChars, WithSuppressOutput): the terminal is
//     switched to raw mode and key events are accumulated one at a time,
//     with single-character backspace editing, until the character limit is
//     reached or Enter is pressed.
//   - Byte-until mode (WithBytesUntil): single bytes are read from standard
//     input until a caller-chosen stop byte appears. The terminal, when one
//     is available, is switched to raw mode best-effort so bytes arrive
//     unbuffered; the mode also works on piped stdin with no terminal at
//     all. The result is binary and includes the stop byte.
//
// A stop-byte source takes precedence over a character limit, which takes
// precedence over the plain line read.
//
// Quick start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/input"
//	)
//
//	func main() {
//		r, err := input.New(input.WithPrompt("Enter your name: "))
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer r.Close()
//
//		v, err := r.Read()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", v.Text())
//	}
//
// Reading two keystrokes without echo:
//
//	r, err := input.New(input.WithPrompt("Press two keys: "), input.WithNumChars(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	v, err := r.Read()
//
// Reading raw bytes up to a newline:
//
//	r, err := input.New(input.WithBytesUntil("\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	v, err := r.Read()
//	// v.IsBinary() == true, v.Bytes() includes the stop byte
//
// Error handling:
//
//   - input.ErrInterrupted: the user pressed Ctrl+C (or a raw 0x03 byte
//     arrived in byte-until mode)
//   - input.ErrNoStopByte: WithBytesUntil was given an empty string
//   - *input.InvalidNumCharsError: WithNumChars was given a value below one;
//     rejected by New before the terminal is touched
//   - I/O failures are wrapped and carry the underlying message
//
// Terminal state:
//
// Both raw-mode paths restore the terminal to canonical mode on every exit,
// including every error branch and the interrupt branch. Restoration is best
// effort and never masks the primary result. Line mode never enters raw
// mode. Disabling raw mode when the terminal is already canonical is a
// no-op.
//
// Concurrency:
//
// A Reader is fully synchronous and not safe for concurrent use; the calling
// goroutine blocks for the duration of a read. ReadWithContext supports
// cooperative cancellation, checked between blocking reads.
//
// Resource management:
//
// Call Close when done with a Reader. The terminal handle is opened lazily
// and only for the raw-mode toggle: line mode never opens it and byte-until
// mode tolerates its absence, so both work when standard input is a pipe and
// no controlling terminal exists. Close is safe to call multiple times.
package input
