// Package narrative holds the story state of one adventure session: the
// paired turn logs, the windowed history store, the character profile and
// the generated world framework.
package narrative

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Log is an append-only sequence of turns kept as parallel slices.
// UserInput[i] and Story[i] always describe the same turn; neither slice is
// ever truncated or edited.
type Log struct {
	UserInput []string `json:"user_input"`
	Story     []string `json:"story"`
}

// NewLog returns an empty turn log.
func NewLog() *Log {
	return &Log{
		UserInput: make([]string, 0),
		Story:     make([]string, 0),
	}
}

// Append records one turn.
func (l *Log) Append(userInput, story string) {
	l.UserInput = append(l.UserInput, userInput)
	l.Story = append(l.Story, story)
}

// Len returns the number of recorded turns.
func (l *Log) Len() int {
	return len(l.Story)
}

// Render concatenates the turns in [start, end) into a single prompt block.
// Each turn is prefixed with a localized "you make a choice" line unless the
// user input was empty (the opening scene), and followed by a blank line.
func (l *Log) Render(start, end int, lang language.Tag) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		if l.UserInput[i] != "" {
			b.WriteString(fmt.Sprintf(choicePrefix(lang), l.UserInput[i]))
		}
		b.WriteString(l.Story[i])
		b.WriteString("\n\n")
	}
	return b.String()
}

func choicePrefix(lang language.Tag) string {
	if lang == language.Chinese {
		return "你做出选择：%s\n\n"
	}
	return "You make a choice:%s\n\n"
}
