package narrative

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultWindowSize is the number of turns rendered from the recent log.
const DefaultWindowSize = 10

// Rendered kinds accepted by History.Rendered and History.Add.
const (
	KindFramework = "story_framework"
	KindRecent    = "recent"
	KindHistory   = "history"
)

// History owns the narrative state of one session: the immutable story
// framework, the full-text recent log and the compressed long-term log.
//
// The two logs grow independently and are rendered with complementary
// windows: "recent" surfaces only the newest WindowSize turns, while
// "history" surfaces only the turns older than the newest WindowSize.
// The long-term log therefore contributes nothing until it outgrows the
// window. Downstream prompt assembly depends on this exact behavior.
type History struct {
	StoryFramework string `json:"story_framework"`
	Recent         *Log   `json:"recent"`
	Events         *Log   `json:"events"`
	WindowSize     int    `json:"window_size"`

	lang language.Tag
}

// NewHistory returns an empty history store for the given language.
func NewHistory(lang language.Tag) *History {
	return &History{
		Recent:     NewLog(),
		Events:     NewLog(),
		WindowSize: DefaultWindowSize,
		lang:       lang,
	}
}

// Language returns the rendering language.
func (h *History) Language() language.Tag {
	return h.lang
}

// SetLanguage changes the rendering language. Used after restoring a
// snapshot, which does not record the language it was written in.
func (h *History) SetLanguage(lang language.Tag) {
	h.lang = lang
}

// Add appends a turn to the log named by kind. KindFramework sets the story
// framework instead; it carries no user input.
func (h *History) Add(kind, userInput, story string) {
	switch kind {
	case KindFramework:
		h.StoryFramework = story
	case KindRecent:
		h.Recent.Append(userInput, story)
	case KindHistory:
		h.Events.Append(userInput, story)
	}
}

// Rendered returns the prompt text for the named window.
func (h *History) Rendered(kind string) string {
	switch kind {
	case KindFramework:
		return h.StoryFramework
	case KindRecent:
		start := 0
		if h.Recent.Len() > h.WindowSize {
			start = h.Recent.Len() - h.WindowSize
		}
		return h.Recent.Render(start, h.Recent.Len(), h.lang)
	case KindHistory:
		end := 0
		if h.Events.Len() > h.WindowSize {
			end = h.Events.Len() - h.WindowSize
		}
		return h.Events.Render(0, end, h.lang)
	}
	return ""
}

// Snapshot is the durable record of a History. Field names are the wire
// contract for persisted sessions; both pairs of slices are parallel.
type Snapshot struct {
	StoryFramework        string   `json:"story_framework"`
	RecentStoryUserInput  []string `json:"recent_story_user_input"`
	RecentStoryStory      []string `json:"recent_story_story"`
	HistoryStoryUserInput []string `json:"history_story_user_input"`
	HistoryStoryStory     []string `json:"history_story_story"`
}

// Validate checks that each log's slices pair up.
func (s *Snapshot) Validate() error {
	if len(s.RecentStoryUserInput) != len(s.RecentStoryStory) {
		return fmt.Errorf("recent log is not paired: %d inputs, %d stories",
			len(s.RecentStoryUserInput), len(s.RecentStoryStory))
	}
	if len(s.HistoryStoryUserInput) != len(s.HistoryStoryStory) {
		return fmt.Errorf("history log is not paired: %d inputs, %d stories",
			len(s.HistoryStoryUserInput), len(s.HistoryStoryStory))
	}
	return nil
}

// Snapshot captures the history for persistence.
func (h *History) Snapshot() *Snapshot {
	return &Snapshot{
		StoryFramework:        h.StoryFramework,
		RecentStoryUserInput:  append([]string(nil), h.Recent.UserInput...),
		RecentStoryStory:      append([]string(nil), h.Recent.Story...),
		HistoryStoryUserInput: append([]string(nil), h.Events.UserInput...),
		HistoryStoryStory:     append([]string(nil), h.Events.Story...),
	}
}

// Restore replaces the history contents from a snapshot. An invalid snapshot
// leaves the history untouched, so a failed load behaves as "no prior
// session".
func (h *History) Restore(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("nil snapshot")
	}
	if err := s.Validate(); err != nil {
		return err
	}

	h.StoryFramework = s.StoryFramework
	h.Recent = &Log{
		UserInput: append([]string(nil), s.RecentStoryUserInput...),
		Story:     append([]string(nil), s.RecentStoryStory...),
	}
	h.Events = &Log{
		UserInput: append([]string(nil), s.HistoryStoryUserInput...),
		Story:     append([]string(nil), s.HistoryStoryStory...),
	}
	return nil
}
