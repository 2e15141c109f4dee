package input

// keyKind classifies what happened to a key. A Unix byte stream can only
// observe presses; scripted sources and console event APIs may also deliver
// repeats and releases, and the capture loop discards everything but presses
// and repeats.
type keyKind int

const (
	keyPress keyKind = iota
	keyRepeat
	keyRelease
)

// keyCode identifies the key itself. Keys the capture loop has no use for
// (arrows, function keys, bare escape) all collapse into keyOther.
type keyCode int

const (
	keyRune keyCode = iota
	keyEnter
	keyBackspace
	keyOther
)

// keyMod is a bit set of held modifiers.
type keyMod uint8

const (
	modCtrl keyMod = 1 << iota
	modAlt
)

// keyEvent is one classified terminal key event. The zero kind is a press.
type keyEvent struct {
	kind keyKind
	code keyCode
	mod  keyMod
	r    rune // set only for keyRune
}

// decodeKeyEvent classifies a single raw-mode rune as a key press.
//
// In raw mode the terminal driver delivers Ctrl-modified letters as C0
// control bytes (Ctrl+C is 0x03), Backspace as DEL or BS, and Enter as CR.
// Everything is mapped back to the key the user pressed so the capture loop
// can reason about modifiers instead of byte values.
func decodeKeyEvent(r rune) keyEvent {
	switch r {
	case '\r', '\n':
		return keyEvent{code: keyEnter}
	case 0x7f, '\b':
		return keyEvent{code: keyBackspace}
	case 0x1b:
		// Bare escape; ESC-prefixed sequences are folded by the caller.
		return keyEvent{code: keyOther}
	}
	if r < 0x20 {
		if r >= 0x01 && r <= 0x1a {
			return keyEvent{code: keyRune, mod: modCtrl, r: 'a' + r - 1}
		}
		return keyEvent{code: keyOther}
	}
	return keyEvent{code: keyRune, r: r}
}
