package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StoryResult
	}{
		{
			name: "well-formed response",
			input: `<analysis>Player opens the door.</analysis>
<narrative>The door creaks open onto a moonlit corridor.</narrative>
<next_prompts>
- Step inside
- Call out a greeting
- Back away slowly
</next_prompts>`,
			expected: StoryResult{
				Analysis:  "Player opens the door.",
				Narrative: "The door creaks open onto a moonlit corridor.",
				NextPrompts: []string{
					"Step inside",
					"Call out a greeting",
					"Back away slowly",
				},
			},
		},
		{
			name:  "missing opening marker leaves field empty",
			input: `The door creaks open.</narrative>`,
			expected: StoryResult{
				NextPrompts: []string{},
			},
		},
		{
			name:  "missing closing marker leaves field empty",
			input: `<narrative>The door creaks open.`,
			expected: StoryResult{
				NextPrompts: []string{},
			},
		},
		{
			name:  "prompts without bullets and blank lines",
			input: "<next_prompts>- a\n- b\n\nc</next_prompts>",
			expected: StoryResult{
				NextPrompts: []string{"a", "b", "c"},
			},
		},
		{
			name:  "repeated tag resolves to first span",
			input: `<narrative>first</narrative><narrative>second</narrative>`,
			expected: StoryResult{
				Narrative:   "first",
				NextPrompts: []string{},
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "<narrative>\n\n   A quiet night.  \n</narrative>",
			expected: StoryResult{
				Narrative:   "A quiet night.",
				NextPrompts: []string{},
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: StoryResult{
				NextPrompts: []string{},
			},
		},
		{
			name:  "unicode narrative",
			input: "<narrative>山风掠过灯塔，海浪拍打礁石。</narrative>",
			expected: StoryResult{
				Narrative:   "山风掠过灯塔，海浪拍打礁石。",
				NextPrompts: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStory(tt.input))
		})
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "well-formed event",
			input:    "preamble <event>keeper lights the lamp ——> storm passes</event> trailer",
			expected: "keeper lights the lamp ——> storm passes",
		},
		{
			name:     "missing markers returns input verbatim",
			input:    "keeper lights the lamp",
			expected: "keeper lights the lamp",
		},
		{
			name:     "missing closing marker returns input verbatim",
			input:    "<event>keeper lights the lamp",
			expected: "<event>keeper lights the lamp",
		},
		{
			name:     "empty span",
			input:    "<event></event>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseEvent(tt.input))
		})
	}
}

func TestParseCharacter(t *testing.T) {
	input := `<name>Mira</name>
<description>A young lighthouse keeper.</description>
<personality>- Steadfast: keeps the lamp lit through storms</personality>
<background>Raised on the coast.</background>
<appearance>Wind-tangled hair, oilskin coat.</appearance>
<skills>- Lamp maintenance
- Reading weather</skills>
<location>The lighthouse, tending the lamp.</location>
<status>Alert, watching the horizon.</status>`

	result := ParseCharacter(input)
	assert.Equal(t, "Mira", result.Name)
	assert.Equal(t, "A young lighthouse keeper.", result.Description)
	assert.Equal(t, "- Steadfast: keeps the lamp lit through storms", result.Personality)
	assert.Equal(t, "Raised on the coast.", result.Background)
	assert.Equal(t, "Wind-tangled hair, oilskin coat.", result.Appearance)
	assert.Equal(t, "- Lamp maintenance\n- Reading weather", result.Skills)
	assert.Equal(t, "The lighthouse, tending the lamp.", result.Location)
	assert.Equal(t, "Alert, watching the horizon.", result.Status)
}

func TestParseCharacter_PartialFields(t *testing.T) {
	result := ParseCharacter("<name>Mira</name> no other tags")
	assert.Equal(t, "Mira", result.Name)
	assert.Empty(t, result.Description)
	assert.Empty(t, result.Personality)
	assert.Empty(t, result.Background)
	assert.Empty(t, result.Appearance)
	assert.Empty(t, result.Skills)
	assert.Empty(t, result.Location)
	assert.Empty(t, result.Status)
}

func TestParseWorld(t *testing.T) {
	input := `<world_structure>Three kingdoms around an inland sea.</world_structure>
<important_npc>1. Harbor-master Quen</important_npc>
<history>The sea rose a century ago.</history>
<world_architecture>Trade binds the kingdoms together.</world_architecture>`

	result := ParseWorld(input)
	assert.Equal(t, "Three kingdoms around an inland sea.", result.WorldStructure)
	assert.Equal(t, "1. Harbor-master Quen", result.ImportantNPC)
	assert.Equal(t, "The sea rose a century ago.", result.History)
	assert.Equal(t, "Trade binds the kingdoms together.", result.WorldArchitecture)
}
