// Package parser extracts tagged fields from raw LLM output. Models are
// prompted to wrap each field in XML-style markers (<narrative>...</narrative>);
// responses are frequently malformed, so lookup is lenient: a missing marker
// yields an empty field, never an error.
package parser

import "strings"

// StoryResult holds the fields of a narrative completion.
type StoryResult struct {
	Analysis    string   `json:"analysis,omitempty"`
	Narrative   string   `json:"narrative"`
	NextPrompts []string `json:"next_prompts"`
}

// CharacterFields holds the fields of a character-generation completion.
type CharacterFields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
	Appearance  string `json:"appearance"`
	Skills      string `json:"skills"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// WorldResult holds the sections of a world-framework completion.
type WorldResult struct {
	WorldStructure    string `json:"world_structure"`
	ImportantNPC      string `json:"important_npc"`
	History           string `json:"history"`
	WorldArchitecture string `json:"world_architecture"`
}

// extractTag returns the trimmed text strictly between the first occurrence
// of <name> and the first occurrence of </name>. Markers are located
// independently, so a recurring tag always resolves to its first span.
// Returns "" when either marker is absent.
func extractTag(text, name string) string {
	open := "<" + name + ">"
	closing := "</" + name + ">"

	start := strings.Index(text, open)
	end := strings.Index(text, closing)
	if start == -1 || end == -1 {
		return ""
	}

	return strings.TrimSpace(text[start+len(open) : end])
}

// ParseStory extracts the analysis, narrative and next-prompt fields from a
// story completion. The next_prompts span is split on newlines with leading
// "- " bullets stripped; empty lines are dropped and order is preserved.
func ParseStory(text string) StoryResult {
	result := StoryResult{
		NextPrompts: []string{},
	}

	result.Analysis = extractTag(text, "analysis")
	result.Narrative = extractTag(text, "narrative")

	for _, line := range strings.Split(extractTag(text, "next_prompts"), "\n") {
		prompt := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- "))
		if prompt != "" {
			result.NextPrompts = append(result.NextPrompts, prompt)
		}
	}

	return result
}

// ParseEvent extracts the compressed event from a compression completion.
// When the <event> markers are absent the input is returned whole, so a model
// that skips the markers still yields a usable history entry.
func ParseEvent(text string) string {
	open := "<event>"
	closing := "</event>"

	start := strings.Index(text, open)
	end := strings.Index(text, closing)
	if start == -1 || end == -1 {
		return text
	}

	return strings.TrimSpace(text[start+len(open) : end])
}

// ParseCharacter extracts the eight profile fields from a character
// completion. Missing fields come back empty.
func ParseCharacter(text string) CharacterFields {
	return CharacterFields{
		Name:        extractTag(text, "name"),
		Description: extractTag(text, "description"),
		Personality: extractTag(text, "personality"),
		Background:  extractTag(text, "background"),
		Appearance:  extractTag(text, "appearance"),
		Skills:      extractTag(text, "skills"),
		Location:    extractTag(text, "location"),
		Status:      extractTag(text, "status"),
	}
}

// ParseWorld extracts the four world-framework sections from a
// world-generation completion.
func ParseWorld(text string) WorldResult {
	return WorldResult{
		WorldStructure:    extractTag(text, "world_structure"),
		ImportantNPC:      extractTag(text, "important_npc"),
		History:           extractTag(text, "history"),
		WorldArchitecture: extractTag(text, "world_architecture"),
	}
}
