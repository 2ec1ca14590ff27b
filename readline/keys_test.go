package readline

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Key
	}{
		{"rune", "a", Key{Code: 'a'}},
		{"wide rune", "世", Key{Code: '世'}},
		{"enter", "\r", Key{Code: CodeEnter}},
		{"tab", "\t", Key{Code: CodeTab}},
		{"backspace", "\x7f", Key{Code: CodeBackspace}},
		{"ctrl a", "\x01", Key{Mod: ModCtrl, Code: 'a'}},
		{"ctrl j", "\n", Key{Mod: ModCtrl, Code: 'j'}},
		{"ctrl z", "\x1a", Key{Mod: ModCtrl, Code: 'z'}},
		{"nul", "\x00", Key{}},
		{"up", "\x1b[A", Key{Code: CodeUp}},
		{"left ss3", "\x1bOD", Key{Code: CodeLeft}},
		{"home ss3", "\x1bOH", Key{Code: CodeHome}},
		{"ctrl left", "\x1b[1;5D", Key{Mod: ModCtrl, Code: CodeLeft}},
		{"delete", "\x1b[3~", Key{Code: CodeDelete}},
		{"home tilde", "\x1b[1~", Key{Code: CodeHome}},
		{"end tilde", "\x1b[4~", Key{Code: CodeEnd}},
		{"paste start", "\x1b[200~", Key{Code: CodePasteStart}},
		{"paste end", "\x1b[201~", Key{Code: CodePasteEnd}},
		{"alt b", "\x1bb", Key{Mod: ModAlt, Code: 'b'}},
		{"alt backspace", "\x1b\x7f", Key{Mod: ModAlt, Code: CodeBackspace}},
		{"double escape", "\x1b\x1b", Key{Code: CodeEscape}},
		{"csi u ctrl z", "\x1b[122;5u", Key{Mod: ModCtrl, Code: 'z'}},
		{"csi u ctrl shift z", "\x1b[122;6u", Key{Mod: ModCtrl, Code: 'Z'}},
		{"modify other keys ctrl shift z", "\x1b[27;6;90~", Key{Mod: ModCtrl, Code: 'Z'}},
		{"csi u enter", "\x1b[13u", Key{Code: CodeEnter}},
		{"unknown csi", "\x1b[Z", Key{}},
		{"unknown tilde", "\x1b[99~", Key{}},
		{"csi u wraps to negative", "\x1b[4294967295u", Key{}},
		{"csi u negative", "\x1b[-3u", Key{}},
		{"csi u out of range", "\x1b[99999999999999999999u", Key{}},
		{"csi u empty mods", "\x1b[97;u", Key{Code: 'a'}},
		{"csi u beyond unicode", "\x1b[1114112u", Key{}},
		{"csi u surrogate", "\x1b[55296;5u", Key{}},
		{"modify other keys negative", "\x1b[27;5;-1~", Key{}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			term := NewStreamTerminal(strings.NewReader(tt.input), io.Discard)
			key, err := decodeKey(term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestDecodeKeyTruncatedEscape(t *testing.T) {
	for _, input := range []string{"\x1b", "\x1b[", "\x1b[12;", "\x1bO"} {
		term := NewStreamTerminal(strings.NewReader(input), io.Discard)
		_, err := decodeKey(term)
		assert.ErrorIs(t, err, io.EOF, "input %q", input)
	}
}

func TestDecodeKeyOverlongCSI(t *testing.T) {
	input := "\x1b[" + strings.Repeat("1", maxCSILen+1) + "~a"
	term := NewStreamTerminal(strings.NewReader(input), io.Discard)

	key, err := decodeKey(term)
	require.NoError(t, err)
	assert.Equal(t, Key{}, key)
}
