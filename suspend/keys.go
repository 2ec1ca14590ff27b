package suspend

import "github.com/jmorganca/suspendline/readline"

// SuspendKeys returns the key codes terminals report for Ctrl+Z. Which one
// arrives depends on the terminal and on whether shift is held, so both are
// bound.
func SuspendKeys() []readline.Key {
	return []readline.Key{
		{Mod: readline.ModCtrl, Code: 'z'},
		{Mod: readline.ModCtrl, Code: 'Z'},
	}
}

// RemapSuspendKey replaces whatever km does for Ctrl+Z with submitting
// marker as the line.
func RemapSuspendKey(km *readline.Keymap, marker string) {
	keys := SuspendKeys()
	for _, key := range keys {
		km.Remove(key)
	}

	action := readline.Action{Kind: readline.ActionSubmitText, Text: marker}
	for _, key := range keys {
		km.Add(key, action)
	}
}
