// Package prompts holds the language-keyed prompt templates and localized
// UI messages for the adventure engine. Templates are pure data: each is a
// format string parameterized by the logical fields the engine assembles
// (story framework, rendered character, history and recent windows, user
// input). No logic lives here beyond language selection.
package prompts

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
)

var supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(supported)

// Match resolves a BCP 47 language string ("en", "zh", "zh-CN", ...) to one
// of the supported prompt languages, defaulting to English.
func Match(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// Detect infers the prompt language from narrative text. Persisted session
// snapshots carry no language field, so restored sessions sniff it from the
// stored story framework instead. Any Han character means Chinese.
func Detect(text string) language.Tag {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return language.Chinese
		}
	}
	return language.English
}

// Set selects prompt templates for one language. All methods are pure.
type Set struct {
	lang language.Tag
}

// NewSet returns the template set for the given language.
func NewSet(lang language.Tag) *Set {
	return &Set{lang: lang}
}

// Language returns the set's language.
func (s *Set) Language() language.Tag {
	return s.lang
}

func (s *Set) zh() bool {
	return s.lang == language.Chinese
}

// Character builds the character-generation prompt from a player-supplied
// seed (name and brief background).
func (s *Set) Character(seed string) string {
	if s.zh() {
		return fmt.Sprintf(characterPromptZH, seed)
	}
	return fmt.Sprintf(characterPromptEN, seed)
}

// DetailedCharacter builds the long-form character-generation prompt. It
// asks the model for the full tagged profile rather than the short form.
func (s *Set) DetailedCharacter(seed string) string {
	if s.zh() {
		return fmt.Sprintf(detailedCharacterPromptZH, seed)
	}
	return fmt.Sprintf(detailedCharacterPromptEN, seed)
}

// OpeningScene builds the opening-scene prompt from the story framework and
// the rendered character profile.
func (s *Set) OpeningScene(framework, character string) string {
	if s.zh() {
		return fmt.Sprintf(openingScenePromptZH, framework, character)
	}
	return fmt.Sprintf(openingScenePromptEN, framework, character)
}

// Action builds the per-turn story prompt from the framework, character,
// rendered history and recent windows, and the player's input.
func (s *Set) Action(framework, character, history, recent, userInput string) string {
	if s.zh() {
		return fmt.Sprintf(actionPromptZH, framework, character, history, recent, userInput)
	}
	return fmt.Sprintf(actionPromptEN, framework, character, history, recent, userInput)
}

// System returns the game-master system prompt sent with scene and action
// completions.
func (s *Set) System() string {
	if s.zh() {
		return systemPromptZH
	}
	return systemPromptEN
}

// Compressor builds the story-compression prompt for one turn.
func (s *Set) Compressor(userInput, story string) string {
	if s.zh() {
		return fmt.Sprintf(compressorPromptZH, userInput, story)
	}
	return fmt.Sprintf(compressorPromptEN, userInput, story)
}

// WorldSystem returns the world-framework generator system prompt.
func (s *Set) WorldSystem() string {
	if s.zh() {
		return worldSystemPromptZH
	}
	return worldSystemPromptEN
}

// World builds the structured world-generation prompt.
func (s *Set) World(framework, character string) string {
	if s.zh() {
		return fmt.Sprintf(worldPromptZH, framework, character)
	}
	return fmt.Sprintf(worldPromptEN, framework, character)
}
