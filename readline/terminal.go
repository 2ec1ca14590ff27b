package readline

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/containerd/console"
	"golang.org/x/term"
)

// Terminal feeds decoded runes to the editor and buffers everything the
// editor draws until Flush.
type Terminal struct {
	outchan chan rune
	err     error
	out     *bufio.Writer
	file    *os.File
	console console.Console
	rawmode bool
}

// NewTerminal attaches to the process's stdin and stdout.
func NewTerminal() (*Terminal, error) {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal reads keys from in and draws to out. Raw mode is only used
// when in is a console.
func NewFileTerminal(in, out *os.File) (*Terminal, error) {
	t := NewStreamTerminal(in, out)
	t.file = out

	if term.IsTerminal(int(in.Fd())) {
		c, err := console.ConsoleFromFile(in)
		if err != nil {
			return nil, err
		}
		t.console = c
	}

	return t, nil
}

// NewStreamTerminal reads keys from in and draws to out without touching any
// terminal modes.
func NewStreamTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		outchan: make(chan rune),
		out:     bufio.NewWriter(out),
	}

	go t.ioloop(in)

	return t
}

func (t *Terminal) ioloop(in io.Reader) {
	buf := bufio.NewReader(in)

	for {
		r, size, err := buf.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.err = err
			}
			close(t.outchan)
			break
		}

		if r == utf8.RuneError && size == 1 {
			_ = buf.UnreadRune()
			b, _ := buf.ReadByte()
			t.err = &DecodeError{Byte: b}
			close(t.outchan)
			break
		}

		t.outchan <- r
	}
}

// Read blocks for the next rune. It returns io.EOF once the input is
// exhausted, or the error that stopped the input.
func (t *Terminal) Read() (rune, error) {
	r, ok := <-t.outchan
	if !ok {
		if t.err != nil {
			return 0, t.err
		}
		return 0, io.EOF
	}

	return r, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}

func (t *Terminal) SetRaw() error {
	if t.console == nil || t.rawmode {
		return nil
	}

	if err := t.console.SetRaw(); err != nil {
		return err
	}
	t.rawmode = true

	_, err := t.out.WriteString(StartBracketedPaste)
	return err
}

func (t *Terminal) Restore() error {
	if t.console == nil || !t.rawmode {
		return nil
	}

	t.rawmode = false
	if _, err := t.out.WriteString(EndBracketedPaste); err != nil {
		return err
	}
	if err := t.out.Flush(); err != nil {
		return err
	}
	return t.console.Reset()
}

// Width returns the terminal width in columns, or 80 when it is unknown.
func (t *Terminal) Width() int {
	if t.console != nil {
		if size, err := t.console.Size(); err == nil && size.Width > 0 {
			return int(size.Width)
		}
	}

	if t.file != nil {
		if width, _, err := term.GetSize(int(t.file.Fd())); err == nil && width > 0 {
			return width
		}
	}

	return 80
}
