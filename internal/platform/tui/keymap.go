package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so held
// movement is emulated: a press counts as held for holdInitial, long enough to
// bridge the auto-repeat delay, and every repeat extends it by holdRepeat.
const (
	DefaultHoldInitial = 200 * time.Millisecond
	DefaultHoldRepeat  = 90 * time.Millisecond
)

// GameKeyMap defines the key bindings used while playing.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an in-game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether the key asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HoldTracker turns repeated key presses into level-sensitive movement.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given initial and repeat windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a press of a held action at now.
// Pressing one direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.Held() {
		return
	}
	delete(h.until, opposite(a))

	deadline := now.Add(h.initial)
	if h.Held(a, now) {
		// Auto-repeat: extend, but never cut the initial window short
		deadline = now.Add(h.repeat)
		if prev := h.until[a]; prev.After(deadline) {
			deadline = prev
		}
	}
	h.until[a] = deadline
}

// ReleaseAll forgets every held action.
func (h *HoldTracker) ReleaseAll() {
	clear(h.until)
}

// Held reports whether a is still considered held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	return ok && now.Before(deadline)
}

// Apply sets every action still held at now on the frame and drops expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.until {
		if h.Held(a, now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
