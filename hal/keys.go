package hal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var keyNames = map[KeyCode]string{
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
	KeyEscape: "esc",
}

// KeyName returns the keymap name of ev: "up", "down", "left", "right",
// "enter", "esc", or the lower-cased character for printable keys.
// It returns "" for events that have no name.
func KeyName(ev KeyEvent) string {
	if ev.Code != KeyUnknown {
		return keyNames[ev.Code]
	}
	if ev.Rune == 0 || !unicode.IsPrint(ev.Rune) {
		return ""
	}
	return string(unicode.ToLower(ev.Rune))
}

// ParseKey is the inverse of KeyName and returns a press event.
func ParseKey(name string) (KeyEvent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for code, n := range keyNames {
		if n == name {
			return KeyEvent{Code: code, Press: true}, nil
		}
	}
	if r, size := utf8.DecodeRuneInString(name); size == len(name) && size > 0 && unicode.IsPrint(r) {
		return KeyEvent{Press: true, Rune: r}, nil
	}
	return KeyEvent{}, fmt.Errorf("hal: unknown key %q", name)
}
