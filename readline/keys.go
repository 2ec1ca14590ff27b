package readline

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeKey reads runes from the terminal until they form one keypress.
// Unknown escape sequences decode to the zero Key, which is never bound.
func decodeKey(t *Terminal) (Key, error) {
	r, err := t.Read()
	if err != nil {
		return Key{}, err
	}

	switch {
	case r == CharEnter:
		return plain(CodeEnter), nil
	case r == CharTab:
		return plain(CodeTab), nil
	case r == CharBackspace:
		return plain(CodeBackspace), nil
	case r == CharEsc:
		return decodeEscape(t)
	case r > CharNull && r <= CharCtrlZ:
		return ctrl('a' + r - 1), nil
	}

	return plain(r), nil
}

func decodeEscape(t *Terminal) (Key, error) {
	r, err := t.Read()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case CharEscapeEx:
		return decodeCSI(t)
	case 'O':
		r, err := t.Read()
		if err != nil {
			return Key{}, err
		}
		if code, ok := cursorCodes[r]; ok {
			return plain(code), nil
		}
		return Key{}, nil
	case CharBackspace:
		return alt(CodeBackspace), nil
	case CharEsc:
		return plain(CodeEscape), nil
	}

	return alt(r), nil
}

var cursorCodes = map[rune]rune{
	'A': CodeUp,
	'B': CodeDown,
	'C': CodeRight,
	'D': CodeLeft,
	'H': CodeHome,
	'F': CodeEnd,
}

// maxCSILen bounds how many parameter bytes are read before a sequence is
// discarded.
const maxCSILen = 32

func decodeCSI(t *Terminal) (Key, error) {
	var params strings.Builder
	var final rune
	for {
		r, err := t.Read()
		if err != nil {
			return Key{}, err
		}

		if r >= 0x40 && r <= 0x7e {
			final = r
			break
		}

		if params.Len() >= maxCSILen {
			return Key{}, nil
		}
		params.WriteRune(r)
	}

	var nums []int
	for _, field := range strings.Split(params.String(), ";") {
		if field == "" {
			nums = append(nums, 1)
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return Key{}, nil
		}
		nums = append(nums, n)
	}

	param := func(i int) int {
		if i < len(nums) {
			return nums[i]
		}
		return 1
	}

	if code, ok := cursorCodes[final]; ok {
		return Key{Mod: modifiers(param(1)), Code: code}, nil
	}

	switch final {
	case '~':
		switch param(0) {
		case 1, 7:
			return Key{Mod: modifiers(param(1)), Code: CodeHome}, nil
		case 4, 8:
			return Key{Mod: modifiers(param(1)), Code: CodeEnd}, nil
		case 3:
			return Key{Mod: modifiers(param(1)), Code: CodeDelete}, nil
		case 200:
			return plain(CodePasteStart), nil
		case 201:
			return plain(CodePasteEnd), nil
		case 27:
			// xterm modifyOtherKeys: ESC [ 27 ; mods ; code ~
			return extendedKey(param(2), param(1)), nil
		}
	case 'u':
		// ESC [ code ; mods u
		return extendedKey(param(0), param(1)), nil
	}

	return Key{}, nil
}

// modifiers converts an xterm modifier parameter (1 + bitmask) to a Modifier.
func modifiers(n int) Modifier {
	n--
	var m Modifier
	if n&1 != 0 {
		m |= ModShift
	}
	if n&2 != 0 {
		m |= ModAlt
	}
	if n&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// extendedKey builds a Key from a code point reported with explicit
// modifiers. Shift is folded into the letter case, so Ctrl+Shift+z arrives
// as Ctrl+Z. Codes that are not valid code points decode to the zero Key.
func extendedKey(code, mods int) Key {
	if code < 0 || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
		return Key{}
	}

	mod := modifiers(mods)
	r := rune(code)
	switch r {
	case CharEnter:
		r = CodeEnter
	case CharTab:
		r = CodeTab
	case CharBackspace:
		r = CodeBackspace
	case CharEsc:
		r = CodeEscape
	}

	if mod&ModShift != 0 && unicode.IsLetter(r) {
		r = unicode.ToUpper(r)
		mod &^= ModShift
	}

	return Key{Mod: mod, Code: r}
}
