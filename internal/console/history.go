package console

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFileName = ".serial_tool.history"

	// historyLimit caps the number of lines kept in the history file
	historyLimit = 2000
)

// DefaultHistoryPath returns the history file path in the user's home
// directory
func DefaultHistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, historyFileName), nil
}

// History holds the entered lines persisted across invocations, one line
// per entry, capped to the last historyLimit entries on save.
type History struct {
	path  string
	lines []string
}

// NewHistory returns a history backed by the file at path
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads the history file. A missing file is not an error.
func (h *History) Load() error {
	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			h.lines = append(h.lines, line)
		}
	}
	return scanner.Err()
}

// Seed replays loaded lines into the line editor's in-memory history
func (h *History) Seed(shell *liner.State) {
	for _, line := range h.lines {
		shell.AppendHistory(line)
	}
}

// Append records an entered line
func (h *History) Append(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	h.lines = append(h.lines, line)
}

// Lines returns the recorded lines, oldest first
func (h *History) Lines() []string {
	return h.lines
}

// Save rewrites the history file with the last historyLimit entries
func (h *History) Save() error {
	lines := h.lines
	if len(lines) > historyLimit {
		lines = lines[len(lines)-historyLimit:]
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
