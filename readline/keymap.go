package readline

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Codes for keys that have no rune of their own. They are negative so they
// never collide with a typed character.
const (
	CodeUp rune = -(iota + 1)
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodeDelete
	CodeBackspace
	CodeEnter
	CodeTab
	CodeEscape
	CodePasteStart
	CodePasteEnd
)

var codeNames = map[rune]string{
	CodeUp:         "Up",
	CodeDown:       "Down",
	CodeLeft:       "Left",
	CodeRight:      "Right",
	CodeHome:       "Home",
	CodeEnd:        "End",
	CodeDelete:     "Delete",
	CodeBackspace:  "Backspace",
	CodeEnter:      "Enter",
	CodeTab:        "Tab",
	CodeEscape:     "Esc",
	CodePasteStart: "PasteStart",
	CodePasteEnd:   "PasteEnd",
}

// Key is a decoded keypress. Code is either a printable rune or one of the
// Code* constants.
type Key struct {
	Mod  Modifier
	Code rune
}

func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&ModCtrl != 0 {
		sb.WriteString("Ctrl+")
	}
	if k.Mod&ModAlt != 0 {
		sb.WriteString("Alt+")
	}
	if k.Mod&ModShift != 0 {
		sb.WriteString("Shift+")
	}

	if name, ok := codeNames[k.Code]; ok {
		sb.WriteString(name)
	} else if k.Code == ' ' {
		sb.WriteString("Space")
	} else {
		sb.WriteRune(k.Code)
	}
	return sb.String()
}

// printable reports whether the key inserts its rune into the buffer.
func (k Key) printable() bool {
	return k.Mod&(ModCtrl|ModAlt) == 0 && k.Code >= CharSpace && k.Code != CharBackspace && unicode.IsPrint(k.Code)
}

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveWordLeft
	ActionMoveWordRight
	ActionMoveToStart
	ActionMoveToEnd
	ActionHistoryPrev
	ActionHistoryNext
	ActionBackspace
	ActionDelete
	ActionDeleteOrEOF
	ActionKillToEnd
	ActionKillToStart
	ActionDeleteWord
	ActionClearScreen
	ActionTab
	ActionInterrupt
	ActionSubmit
	ActionSubmitText
)

var actionNames = []string{
	ActionNone:          "none",
	ActionMoveLeft:      "move-left",
	ActionMoveRight:     "move-right",
	ActionMoveWordLeft:  "move-word-left",
	ActionMoveWordRight: "move-word-right",
	ActionMoveToStart:   "move-to-start",
	ActionMoveToEnd:     "move-to-end",
	ActionHistoryPrev:   "history-prev",
	ActionHistoryNext:   "history-next",
	ActionBackspace:     "backspace",
	ActionDelete:        "delete",
	ActionDeleteOrEOF:   "delete-or-eof",
	ActionKillToEnd:     "kill-to-end",
	ActionKillToStart:   "kill-to-start",
	ActionDeleteWord:    "delete-word",
	ActionClearScreen:   "clear-screen",
	ActionTab:           "tab",
	ActionInterrupt:     "interrupt",
	ActionSubmit:        "submit",
	ActionSubmitText:    "submit-text",
}

func (a ActionKind) String() string {
	if int(a) < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Action is what a key does. Text is only used by ActionSubmitText, which
// ends the read and returns Text in place of the buffer contents.
type Action struct {
	Kind ActionKind
	Text string
}

type Binding struct {
	Key    Key
	Action Action
}

// Keymap maps keys to editor actions. Keys without a binding insert their
// rune when printable and are ignored otherwise.
type Keymap struct {
	bindings map[Key]Action
}

func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[Key]Action)}
}

// Add binds key to action, replacing any existing binding.
func (k *Keymap) Add(key Key, action Action) {
	k.bindings[key] = action
}

func (k *Keymap) Remove(key Key) {
	delete(k.bindings, key)
}

func (k *Keymap) Lookup(key Key) (Action, bool) {
	a, ok := k.bindings[key]
	return a, ok
}

func (k *Keymap) Len() int {
	return len(k.bindings)
}

func (k *Keymap) Clone() *Keymap {
	return &Keymap{bindings: maps.Clone(k.bindings)}
}

// Bindings returns every binding ordered by key name.
func (k *Keymap) Bindings() []Binding {
	keys := slices.Collect(maps.Keys(k.bindings))
	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	bindings := make([]Binding, 0, len(keys))
	for _, key := range keys {
		bindings = append(bindings, Binding{Key: key, Action: k.bindings[key]})
	}
	return bindings
}

func ctrl(r rune) Key {
	return Key{Mod: ModCtrl, Code: r}
}

func alt(r rune) Key {
	return Key{Mod: ModAlt, Code: r}
}

func plain(r rune) Key {
	return Key{Code: r}
}

// DefaultEmacsKeymap returns the emacs style bindings the editor starts with.
func DefaultEmacsKeymap() *Keymap {
	km := NewKeymap()

	for key, kind := range map[Key]ActionKind{
		ctrl('a'):            ActionMoveToStart,
		ctrl('e'):            ActionMoveToEnd,
		ctrl('b'):            ActionMoveLeft,
		ctrl('f'):            ActionMoveRight,
		ctrl('p'):            ActionHistoryPrev,
		ctrl('n'):            ActionHistoryNext,
		ctrl('h'):            ActionBackspace,
		ctrl('d'):            ActionDeleteOrEOF,
		ctrl('k'):            ActionKillToEnd,
		ctrl('u'):            ActionKillToStart,
		ctrl('w'):            ActionDeleteWord,
		ctrl('l'):            ActionClearScreen,
		ctrl('c'):            ActionInterrupt,
		ctrl('j'):            ActionSubmit,
		alt('b'):             ActionMoveWordLeft,
		alt('f'):             ActionMoveWordRight,
		alt(CodeBackspace):   ActionDeleteWord,
		plain(CodeUp):        ActionHistoryPrev,
		plain(CodeDown):      ActionHistoryNext,
		plain(CodeLeft):      ActionMoveLeft,
		plain(CodeRight):     ActionMoveRight,
		plain(CodeHome):      ActionMoveToStart,
		plain(CodeEnd):       ActionMoveToEnd,
		plain(CodeDelete):    ActionDelete,
		plain(CodeBackspace): ActionBackspace,
		plain(CodeEnter):     ActionSubmit,
		plain(CodeTab):       ActionTab,
		ctrl(CodeLeft):       ActionMoveWordLeft,
		ctrl(CodeRight):      ActionMoveWordRight,
		alt(CodeLeft):        ActionMoveWordLeft,
		alt(CodeRight):       ActionMoveWordRight,
	} {
		km.Add(key, Action{Kind: kind})
	}

	return km
}
