package readline

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// History is a bounded list of submitted lines. Pos is the navigation
// cursor; Size() means past the newest entry.
type History struct {
	Enabled bool
	Pos     int

	lines    *arraylist.List[string]
	limit    int
	filename string
}

// NewHistory loads history from filename, creating it if needed. An empty
// filename keeps history in memory only.
func NewHistory(filename string, limit int) (*History, error) {
	h := &History{
		Enabled: true,
		lines:   arraylist.New[string](),
		limit:   limit,
	}

	if filename == "" {
		return h, nil
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, err
	}

	h.filename = filename
	if err := h.load(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *History) load() error {
	f, err := os.OpenFile(h.filename, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// lines the editor could not have accepted from the keyboard are skipped
		if line == "" || strings.ContainsFunc(line, isControl) {
			continue
		}
		h.add(line)
	}

	return scanner.Err()
}

func isControl(r rune) bool {
	return r < CharSpace || r == CharBackspace
}

// Add appends s unless it repeats the newest entry, and saves the result.
func (h *History) Add(s string) {
	if h.add(s) {
		_ = h.Save()
	}
}

func (h *History) add(s string) bool {
	defer func() {
		h.Pos = h.Size()
	}()

	if latest, ok := h.lines.Get(h.Size() - 1); ok && latest == s {
		return false
	}

	h.lines.Add(s)
	h.Compact()
	return true
}

// Compact drops the oldest entries beyond the limit.
func (h *History) Compact() {
	for h.limit > 0 && h.lines.Size() > h.limit {
		h.lines.Remove(0)
	}
}

func (h *History) Clear() {
	h.lines.Clear()
	h.Pos = 0
}

// Prev moves towards older entries, stopping at the oldest.
func (h *History) Prev() string {
	if h.Pos > 0 {
		h.Pos--
	}
	line, _ := h.lines.Get(h.Pos)
	return line
}

// Next moves towards newer entries. Past the newest it returns "".
func (h *History) Next() string {
	if h.Pos >= h.lines.Size() {
		return ""
	}
	h.Pos++
	line, _ := h.lines.Get(h.Pos)
	return line
}

func (h *History) Size() int {
	return h.lines.Size()
}

func (h *History) Lines() []string {
	return h.lines.Values()
}

// Save rewrites the history file through a temporary file in the same
// directory. It does nothing when history is disabled or in memory.
func (h *History) Save() error {
	if !h.Enabled || h.filename == "" {
		return nil
	}

	f, err := os.CreateTemp(filepath.Dir(h.filename), ".history-*")
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	it := h.lines.Iterator()
	for it.Next() {
		w.WriteString(it.Value())
		w.WriteByte('\n')
	}

	if err := errors.Join(w.Flush(), f.Close()); err != nil {
		os.Remove(f.Name())
		return err
	}

	return os.Rename(f.Name(), h.filename)
}
