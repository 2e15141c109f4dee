package input

import "io"

// mockTerminal implements terminalInterface for testing.
//
// It replays a scripted sequence of key events without touching a real
// terminal, which keeps tests deterministic and safe for headless CI
// environments.
//
// Features:
//   - Scripted key events, including repeat and release kinds that a Unix
//     byte stream cannot produce, to exercise the event-discard rules
//   - A queued count marking leading events as stale, to exercise draining
//   - Raw-mode state tracking plus call counters for restore verification
//   - Injectable SetRaw and read errors for failure-path coverage
type mockTerminal struct {
	events   []keyEvent // scripted key events, in delivery order
	eventPos int
	queued   int // leading events reported as already buffered

	rawMode      bool
	setRawCalls  int
	restoreCalls int

	setRawErr error // returned by SetRaw when set
	readErr   error // returned by ReadEvent when set
}

func newMockTerminal(events []keyEvent) *mockTerminal {
	return &mockTerminal{events: events}
}

// pressEvents converts a string into one key-press event per rune. Handy for
// scripting plain typed input.
func pressEvents(s string) []keyEvent {
	events := make([]keyEvent, 0, len(s))
	for _, r := range s {
		events = append(events, keyEvent{code: keyRune, r: r})
	}
	return events
}

func (m *mockTerminal) SetRaw() error {
	if m.setRawErr != nil {
		return m.setRawErr
	}
	m.setRawCalls++
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.restoreCalls++
	m.rawMode = false
	return nil
}

func (m *mockTerminal) ReadEvent() (keyEvent, error) {
	if m.readErr != nil {
		return keyEvent{}, m.readErr
	}
	if m.eventPos >= len(m.events) {
		return keyEvent{}, io.EOF
	}
	ev := m.events[m.eventPos]
	m.eventPos++
	if m.queued > 0 {
		m.queued--
	}
	return ev, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.queued > 0
}

func (m *mockTerminal) Close() error {
	return nil
}
