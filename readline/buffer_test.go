package readline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBuffer(t *testing.T, width int) (*Buffer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewBuffer(&Prompt{Prompt: "> ", AltPrompt: ". ", Placeholder: "type here"}, &out, width), &out
}

func addString(b *Buffer, s string) {
	for _, r := range s {
		b.Add(r)
	}
}

func TestBufferAdd(t *testing.T) {
	b, out := newTestBuffer(t, 80)
	assert.True(t, b.IsEmpty())

	addString(b, "abc")
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, b.Pos)
	assert.False(t, b.IsEmpty())
	assert.Contains(t, out.String(), "> abc")

	b.MoveLeft()
	b.Add('X')
	assert.Equal(t, "abXc", b.String())
	assert.Equal(t, 3, b.Pos)
}

func TestBufferMovement(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "foo bar  baz")

	b.MoveLeftWord()
	assert.Equal(t, 9, b.Pos)
	b.MoveLeftWord()
	assert.Equal(t, 4, b.Pos)

	b.MoveToStart()
	assert.Equal(t, 0, b.Pos)
	b.MoveLeft()
	assert.Equal(t, 0, b.Pos)

	b.MoveRightWord()
	assert.Equal(t, 3, b.Pos)
	b.MoveRightWord()
	assert.Equal(t, 7, b.Pos)

	b.MoveToEnd()
	assert.Equal(t, 12, b.Pos)
	b.MoveRight()
	assert.Equal(t, 12, b.Pos)
}

func TestBufferRemoveAndDelete(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "hello")

	b.Remove()
	assert.Equal(t, "hell", b.String())

	b.MoveToStart()
	b.Remove()
	assert.Equal(t, "hell", b.String())

	b.Delete()
	assert.Equal(t, "ell", b.String())
	assert.Equal(t, 0, b.Pos)

	b.MoveToEnd()
	b.Delete()
	assert.Equal(t, "ell", b.String())
}

func TestBufferDeleteWord(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "one two  ")

	b.DeleteWord()
	assert.Equal(t, "one ", b.String())
	assert.Equal(t, 4, b.Pos)

	b.DeleteWord()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Pos)
}

func TestBufferDeleteBeforeAndRemaining(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "left|right")

	for range 6 {
		b.MoveLeft()
	}

	b.DeleteRemaining()
	assert.Equal(t, "left", b.String())

	b.MoveLeft()
	b.DeleteBefore()
	assert.Equal(t, "t", b.String())
	assert.Equal(t, 0, b.Pos)
}

func TestBufferReplace(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "old")

	b.Replace([]rune("brand new"))
	assert.Equal(t, "brand new", b.String())
	assert.Equal(t, 9, b.Pos)

	b.Replace(nil)
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.Pos)
}

func TestBufferStringNM(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "abcdef")

	assert.Equal(t, "cdef", b.StringN(2))
	assert.Equal(t, "bcd", b.StringNM(1, 4))
}

func TestBufferDisplaySize(t *testing.T) {
	b, _ := newTestBuffer(t, 80)
	addString(b, "a世")

	assert.Equal(t, 3, b.DisplaySize())
	assert.Equal(t, 2, b.Buf.Size())
}

func TestBufferWrap(t *testing.T) {
	b, out := newTestBuffer(t, 10)

	// prompt (2) + 8 runes fills the first row exactly
	addString(b, "12345678")
	assert.Equal(t, 1, b.cursorRow)
	assert.True(t, strings.HasSuffix(out.String(), "\r\n\r"))

	out.Reset()
	b.MoveToStart()
	assert.Equal(t, 0, b.cursorRow)
	assert.True(t, strings.HasPrefix(out.String(), CursorUpN(1)))
}

func TestBufferPlaceholder(t *testing.T) {
	b, out := newTestBuffer(t, 80)

	b.Refresh()
	assert.NotContains(t, out.String(), "type here")

	b.ShowPlaceholder = true
	b.Refresh()
	assert.Contains(t, out.String(), ColorGrey+"type here")

	out.Reset()
	b.Add('x')
	assert.NotContains(t, out.String(), "type here")
}
