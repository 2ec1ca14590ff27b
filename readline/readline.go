package readline

import (
	"io"

	"github.com/jmorganca/suspendline/logutil"
)

type Prompt struct {
	Prompt         string
	AltPrompt      string
	Placeholder    string
	AltPlaceholder string
	UseAlt         bool
}

func (p *Prompt) prompt() string {
	if p.UseAlt {
		return p.AltPrompt
	}
	return p.Prompt
}

func (p *Prompt) placeholder() string {
	if p.UseAlt {
		return p.AltPlaceholder
	}
	return p.Placeholder
}

// Options configure a new Instance. Zero values select the default keymap,
// an in-memory history of 100 lines and the process terminal.
type Options struct {
	Keymap       *Keymap
	Terminal     *Terminal
	HistoryFile  string
	HistoryLimit int
}

type Instance struct {
	Prompt   *Prompt
	Terminal *Terminal
	History  *History
	Keymap   *Keymap
	Pasting  bool
}

func New(prompt Prompt, opts Options) (*Instance, error) {
	term := opts.Terminal
	if term == nil {
		var err error
		term, err = NewTerminal()
		if err != nil {
			return nil, err
		}
	}

	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = 100
	}

	history, err := NewHistory(opts.HistoryFile, limit)
	if err != nil {
		return nil, err
	}

	keymap := opts.Keymap
	if keymap == nil {
		keymap = DefaultEmacsKeymap()
	}

	return &Instance{
		Prompt:   &prompt,
		Terminal: term,
		History:  history,
		Keymap:   keymap,
	}, nil
}

func (i *Instance) Readline() (string, error) {
	return i.ReadlineWithPrompt(i.Prompt)
}

// ReadlineWithPrompt reads one line using p in place of the instance prompt.
// It returns ErrInterrupt on Ctrl+C and io.EOF when the input ends or Ctrl+D
// is pressed on an empty line.
func (i *Instance) ReadlineWithPrompt(p *Prompt) (string, error) {
	if p == nil {
		p = i.Prompt
	}

	if err := i.Terminal.SetRaw(); err != nil {
		return "", err
	}

	defer func() {
		//nolint:errcheck
		i.Terminal.Restore()
		//nolint:errcheck
		i.Terminal.Flush()
	}()

	prompt := *p
	if i.Pasting {
		// force alt prompt when pasting
		prompt.UseAlt = true
	}

	buf := NewBuffer(&prompt, i.Terminal, i.Terminal.Width())
	// don't show placeholder when pasting unless we're in multiline mode
	buf.ShowPlaceholder = !i.Pasting || p.UseAlt
	buf.Refresh()

	var currentLineBuf []rune

	for {
		if err := i.Terminal.Flush(); err != nil {
			return "", err
		}

		key, err := decodeKey(i.Terminal)
		if err != nil {
			return "", err
		}

		switch key.Code {
		case CodePasteStart:
			i.Pasting = true
			continue
		case CodePasteEnd:
			i.Pasting = false
			continue
		}

		action, ok := i.Keymap.Lookup(key)
		if ok && i.Pasting && !pastable(action.Kind) {
			// pasted control bytes are text, never commands
			ok = false
		}
		if !ok {
			if key.printable() {
				buf.Add(key.Code)
			}
			continue
		}

		logutil.Trace("readline: key", "key", key, "action", action.Kind)

		switch action.Kind {
		case ActionMoveLeft:
			buf.MoveLeft()
		case ActionMoveRight:
			buf.MoveRight()
		case ActionMoveWordLeft:
			buf.MoveLeftWord()
		case ActionMoveWordRight:
			buf.MoveRightWord()
		case ActionMoveToStart:
			buf.MoveToStart()
		case ActionMoveToEnd:
			buf.MoveToEnd()
		case ActionHistoryPrev:
			i.historyPrev(buf, &currentLineBuf)
		case ActionHistoryNext:
			i.historyNext(buf, &currentLineBuf)
		case ActionBackspace:
			buf.Remove()
		case ActionDelete:
			buf.Delete()
		case ActionDeleteOrEOF:
			if buf.DisplaySize() > 0 {
				buf.Delete()
			} else {
				return "", io.EOF
			}
		case ActionKillToEnd:
			buf.DeleteRemaining()
		case ActionKillToStart:
			buf.DeleteBefore()
		case ActionDeleteWord:
			buf.DeleteWord()
		case ActionClearScreen:
			buf.ClearScreen()
		case ActionTab:
			// todo: convert back to real tabs
			for range 8 {
				buf.Add(' ')
			}
		case ActionInterrupt:
			return "", ErrInterrupt
		case ActionSubmit:
			output := buf.String()
			if output != "" {
				i.History.Add(output)
			}
			i.endLine(buf)

			return output, nil
		case ActionSubmitText:
			i.endLine(buf)

			return action.Text, nil
		}
	}
}

// pastable reports whether an action still runs inside a bracketed paste.
func pastable(kind ActionKind) bool {
	return kind == ActionSubmit || kind == ActionTab
}

func (i *Instance) endLine(buf *Buffer) {
	buf.MoveToEnd()
	io.WriteString(i.Terminal, "\r\n")
}

// Flush writes any output the editor has not yet drawn.
func (i *Instance) Flush() error {
	return i.Terminal.Flush()
}

func (i *Instance) HistoryEnable() {
	i.History.Enabled = true
}

func (i *Instance) HistoryDisable() {
	i.History.Enabled = false
}

func (i *Instance) historyPrev(buf *Buffer, currentLineBuf *[]rune) {
	if i.History.Pos > 0 {
		if i.History.Pos == i.History.Size() {
			*currentLineBuf = []rune(buf.String())
		}
		buf.Replace([]rune(i.History.Prev()))
	}
}

func (i *Instance) historyNext(buf *Buffer, currentLineBuf *[]rune) {
	if i.History.Pos < i.History.Size() {
		buf.Replace([]rune(i.History.Next()))
		if i.History.Pos == i.History.Size() {
			buf.Replace(*currentLineBuf)
		}
	}
}
