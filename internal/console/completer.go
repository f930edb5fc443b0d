package console

import (
	"sort"
	"strings"
)

// ExitKeyword terminates the interactive session when entered on its own.
const ExitKeyword = "exit"

// Completer supplies tab-completion candidates for the interactive prompt
// from a small vocabulary. New instances know only the exit keyword;
// callers may register additional words with Add.
type Completer struct {
	words map[string]struct{}
}

// NewCompleter returns a completer seeded with the exit keyword plus any
// extra words
func NewCompleter(words ...string) *Completer {
	c := &Completer{words: map[string]struct{}{ExitKeyword: {}}}
	for _, w := range words {
		c.Add(w)
	}
	return c
}

// Add registers a word in the completion vocabulary
func (c *Completer) Add(word string) {
	if word == "" {
		return
	}
	c.words[word] = struct{}{}
}

// Candidates returns every vocabulary word starting with prefix,
// case-sensitive, sorted ascending. An empty prefix returns the full
// vocabulary.
func (c *Completer) Candidates(prefix string) []string {
	var matches []string
	for w := range c.words {
		if prefix == "" || strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches
}
