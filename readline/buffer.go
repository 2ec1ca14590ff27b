package readline

import (
	"io"
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/mattn/go-runewidth"
)

// Buffer holds the line being edited and redraws it, wrapped at Width, after
// every change.
type Buffer struct {
	Pos    int
	Buf    *arraylist.List[rune]
	Prompt *Prompt
	Width  int

	// ShowPlaceholder draws the prompt placeholder while the buffer is empty.
	ShowPlaceholder bool

	out       io.Writer
	cursorRow int
}

func NewBuffer(prompt *Prompt, out io.Writer, width int) *Buffer {
	return &Buffer{
		Buf:    arraylist.New[rune](),
		Prompt: prompt,
		Width:  max(width, 1),
		out:    out,
	}
}

func (b *Buffer) MoveLeft() {
	if b.Pos > 0 {
		b.Pos -= 1
		b.Refresh()
	}
}

func (b *Buffer) MoveRight() {
	if b.Pos < b.Buf.Size() {
		b.Pos += 1
		b.Refresh()
	}
}

func (b *Buffer) MoveLeftWord() {
	if b.Pos > 0 {
		b.Pos = b.wordStart()
		b.Refresh()
	}
}

func (b *Buffer) MoveRightWord() {
	if b.Pos < b.Buf.Size() {
		pos := b.Pos
		for pos < b.Buf.Size() && b.at(pos) == ' ' {
			pos++
		}
		for pos < b.Buf.Size() && b.at(pos) != ' ' {
			pos++
		}
		b.Pos = pos
		b.Refresh()
	}
}

func (b *Buffer) MoveToStart() {
	if b.Pos > 0 {
		b.Pos = 0
		b.Refresh()
	}
}

func (b *Buffer) MoveToEnd() {
	if b.Pos < b.Buf.Size() {
		b.Pos = b.Buf.Size()
		b.Refresh()
	}
}

// Add inserts r at the cursor.
func (b *Buffer) Add(r rune) {
	if b.Pos == b.Buf.Size() {
		b.Buf.Add(r)
	} else {
		b.Buf.Insert(b.Pos, r)
	}
	b.Pos += 1
	b.Refresh()
}

// Remove deletes the rune before the cursor.
func (b *Buffer) Remove() {
	if b.Pos > 0 {
		b.Pos -= 1
		b.Buf.Remove(b.Pos)
		b.Refresh()
	}
}

// Delete deletes the rune under the cursor.
func (b *Buffer) Delete() {
	if b.Pos < b.Buf.Size() {
		b.Buf.Remove(b.Pos)
		b.Refresh()
	}
}

func (b *Buffer) DeleteBefore() {
	if b.Pos > 0 {
		b.deleteRange(0, b.Pos)
	}
}

func (b *Buffer) DeleteRemaining() {
	if b.Pos < b.Buf.Size() {
		b.deleteRange(b.Pos, b.Buf.Size())
	}
}

func (b *Buffer) DeleteWord() {
	if b.Pos > 0 {
		b.deleteRange(b.wordStart(), b.Pos)
	}
}

func (b *Buffer) deleteRange(from, to int) {
	for range to - from {
		b.Buf.Remove(from)
	}
	b.Pos = from
	b.Refresh()
}

// wordStart returns the start of the word before the cursor, skipping any
// spaces directly behind it.
func (b *Buffer) wordStart() int {
	pos := b.Pos
	for pos > 0 && b.at(pos-1) == ' ' {
		pos--
	}
	for pos > 0 && b.at(pos-1) != ' ' {
		pos--
	}
	return pos
}

func (b *Buffer) at(i int) rune {
	r, _ := b.Buf.Get(i)
	return r
}

func (b *Buffer) ClearScreen() {
	io.WriteString(b.out, ClearScreen+CursorReset)
	b.cursorRow = 0
	b.Refresh()
}

func (b *Buffer) IsEmpty() bool {
	return b.Buf.Empty()
}

// Replace swaps the whole line for r and moves the cursor to the end.
func (b *Buffer) Replace(r []rune) {
	b.Buf.Clear()
	b.Buf.Add(r...)
	b.Pos = b.Buf.Size()
	b.Refresh()
}

// DisplaySize is the width of the line in terminal cells.
func (b *Buffer) DisplaySize() int {
	return runewidth.StringWidth(b.String())
}

func (b *Buffer) String() string {
	return b.StringN(0)
}

func (b *Buffer) StringN(n int) string {
	return b.StringNM(n, 0)
}

func (b *Buffer) StringNM(n, m int) string {
	if m == 0 {
		m = b.Buf.Size()
	}
	return string(b.Buf.Values()[n:m])
}

// Refresh redraws the prompt and line from the first row of the prompt and
// leaves the terminal cursor at Pos.
func (b *Buffer) Refresh() {
	var sb strings.Builder
	if b.cursorRow > 0 {
		sb.WriteString(CursorUpN(b.cursorRow))
	}

	prompt := b.Prompt.prompt()
	promptWidth := runewidth.StringWidth(prompt)
	sb.WriteString(CursorBOL + ClearToEOS + prompt)

	text := b.String()
	sb.WriteString(text)

	if text == "" && b.ShowPlaceholder {
		if ph := runewidth.Truncate(b.Prompt.placeholder(), b.Width-promptWidth-1, ""); ph != "" {
			sb.WriteString(ColorGrey + ph + CursorLeftN(runewidth.StringWidth(ph)) + ColorDefault)
		}
	}

	total := promptWidth + runewidth.StringWidth(text)
	cursor := promptWidth + runewidth.StringWidth(string(b.Buf.Values()[:b.Pos]))

	var endRow int
	if total > 0 {
		endRow = (total - 1) / b.Width
	}
	if total > 0 && total%b.Width == 0 && cursor == total {
		// the terminal holds the cursor in the last column until the next
		// write; move it onto the next row explicitly
		sb.WriteString("\r\n")
		endRow++
	}

	row, col := cursor/b.Width, cursor%b.Width
	if endRow > row {
		sb.WriteString(CursorUpN(endRow - row))
	}
	sb.WriteString("\r")
	if col > 0 {
		sb.WriteString(CursorRightN(col))
	}

	b.cursorRow = row
	io.WriteString(b.out, sb.String())
}
