// Package keys defines the key event delivered to dashboard panels and the
// global quit classification.
package keys

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Code identifies the physical key of an Event.
type Code int

const (
	CodeUnknown Code = iota
	CodeRune         // printable character; see Event.Rune
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeEnter
	CodeEsc
	CodeTab
	CodeBackspace
	CodeSpace
	CodeHome
	CodeEnd
	CodePgUp
	CodePgDown
	CodeDelete
)

var codeNames = map[Code]string{
	CodeUp:        "up",
	CodeDown:      "down",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeEnter:     "enter",
	CodeEsc:       "esc",
	CodeTab:       "tab",
	CodeBackspace: "backspace",
	CodeSpace:     " ", // Bubble Tea reports space as " "
	CodeHome:      "home",
	CodeEnd:       "end",
	CodePgUp:      "pgup",
	CodePgDown:    "pgdown",
	CodeDelete:    "delete",
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether every modifier in m2 is set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Event is a single key press: a key code plus the held modifiers.
// Panels treat it as read-only.
type Event struct {
	Code Code
	Rune rune // set when Code == CodeRune
	Mod  Modifier
}

// Rune returns a plain character event.
func Rune(r rune) Event {
	return Event{Code: CodeRune, Rune: r}
}

// Ctrl returns a control-modified character event, e.g. Ctrl('c').
func Ctrl(r rune) Event {
	return Event{Code: CodeRune, Rune: r, Mod: ModCtrl}
}

// Key returns an event for a non-character key.
func Key(c Code) Event {
	return Event{Code: c}
}

// String renders the event using Bubble Tea key names ("q", "ctrl+c",
// "shift+up", "alt+x") so that bubbles/key bindings match against it.
func (e Event) String() string {
	var b strings.Builder
	if e.Mod.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if e.Mod.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Mod.Has(ModShift) {
		b.WriteString("shift+")
	}
	switch e.Code {
	case CodeRune:
		b.WriteRune(e.Rune)
	case CodeUnknown:
		b.WriteString("unknown")
	default:
		b.WriteString(codeNames[e.Code])
	}
	return b.String()
}

// IsQuit reports whether e is the global quit key: the plain character
// 'q' with any modifiers, or 'c' with control held.
func IsQuit(e Event) bool {
	if e.Code != CodeRune {
		return false
	}
	switch e.Rune {
	case 'q':
		return true
	case 'c':
		return e.Mod.Has(ModCtrl)
	}
	return false
}

// FromTea converts a Bubble Tea key message. Control-letter types become a
// rune with ModCtrl set, so tea.KeyCtrlC maps to Ctrl('c'). Pasted input
// carrying several runes keeps only the first.
func FromTea(msg tea.KeyMsg) Event {
	var mod Modifier
	if msg.Alt {
		mod |= ModAlt
	}
	ev := Event{Mod: mod}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return ev
		}
		ev.Code = CodeRune
		ev.Rune = msg.Runes[0]
	case tea.KeySpace:
		ev.Code = CodeSpace
	case tea.KeyUp:
		ev.Code = CodeUp
	case tea.KeyDown:
		ev.Code = CodeDown
	case tea.KeyLeft:
		ev.Code = CodeLeft
	case tea.KeyRight:
		ev.Code = CodeRight
	case tea.KeyShiftUp:
		ev.Code, ev.Mod = CodeUp, ev.Mod|ModShift
	case tea.KeyShiftDown:
		ev.Code, ev.Mod = CodeDown, ev.Mod|ModShift
	case tea.KeyShiftLeft:
		ev.Code, ev.Mod = CodeLeft, ev.Mod|ModShift
	case tea.KeyShiftRight:
		ev.Code, ev.Mod = CodeRight, ev.Mod|ModShift
	case tea.KeyCtrlUp:
		ev.Code, ev.Mod = CodeUp, ev.Mod|ModCtrl
	case tea.KeyCtrlDown:
		ev.Code, ev.Mod = CodeDown, ev.Mod|ModCtrl
	case tea.KeyCtrlLeft:
		ev.Code, ev.Mod = CodeLeft, ev.Mod|ModCtrl
	case tea.KeyCtrlRight:
		ev.Code, ev.Mod = CodeRight, ev.Mod|ModCtrl
	case tea.KeyEnter:
		ev.Code = CodeEnter
	case tea.KeyEsc:
		ev.Code = CodeEsc
	case tea.KeyTab:
		ev.Code = CodeTab
	case tea.KeyShiftTab:
		ev.Code, ev.Mod = CodeTab, ev.Mod|ModShift
	case tea.KeyBackspace:
		ev.Code = CodeBackspace
	case tea.KeyDelete:
		ev.Code = CodeDelete
	case tea.KeyHome:
		ev.Code = CodeHome
	case tea.KeyEnd:
		ev.Code = CodeEnd
	case tea.KeyPgUp:
		ev.Code = CodePgUp
	case tea.KeyPgDown:
		ev.Code = CodePgDown
	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			ev.Code = CodeRune
			ev.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
			ev.Mod |= ModCtrl
		}
	}
	return ev
}
