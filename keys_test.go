package input

import "testing"

func TestDecodeKeyEvent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want keyEvent
	}{
		{name: "carriage return is enter", r: '\r', want: keyEvent{code: keyEnter}},
		{name: "line feed is enter", r: '\n', want: keyEvent{code: keyEnter}},
		{name: "DEL is backspace", r: 0x7f, want: keyEvent{code: keyBackspace}},
		{name: "BS is backspace", r: '\b', want: keyEvent{code: keyBackspace}},
		{name: "escape is other", r: 0x1b, want: keyEvent{code: keyOther}},
		{name: "0x03 is ctrl+c", r: 0x03, want: keyEvent{code: keyRune, mod: modCtrl, r: 'c'}},
		{name: "0x01 is ctrl+a", r: 0x01, want: keyEvent{code: keyRune, mod: modCtrl, r: 'a'}},
		{name: "0x1a is ctrl+z", r: 0x1a, want: keyEvent{code: keyRune, mod: modCtrl, r: 'z'}},
		{name: "tab is ctrl+i", r: '\t', want: keyEvent{code: keyRune, mod: modCtrl, r: 'i'}},
		{name: "0x1c is other", r: 0x1c, want: keyEvent{code: keyOther}},
		{name: "plain letter", r: 'a', want: keyEvent{code: keyRune, r: 'a'}},
		{name: "space", r: ' ', want: keyEvent{code: keyRune, r: ' '}},
		{name: "digit", r: '7', want: keyEvent{code: keyRune, r: '7'}},
		{name: "unicode", r: 'あ', want: keyEvent{code: keyRune, r: 'あ'}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := decodeKeyEvent(tt.r)
			if got != tt.want {
				t.Errorf("decodeKeyEvent(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
			if got.kind != keyPress {
				t.Errorf("decodeKeyEvent(%q) kind = %v, want press", tt.r, got.kind)
			}
		})
	}
}

func TestPressEvents(t *testing.T) {
	t.Parallel()

	events := pressEvents("ab")
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].r != 'a' || events[1].r != 'b' {
		t.Errorf("unexpected runes: %+v", events)
	}
	for i, ev := range events {
		if ev.kind != keyPress || ev.code != keyRune || ev.mod != 0 {
			t.Errorf("event %d is not a plain press: %+v", i, ev)
		}
	}
}
