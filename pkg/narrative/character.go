package narrative

import (
	"fmt"

	"golang.org/x/text/language"
)

// CharacterProfile is the player character record, populated once per session
// from a parsed character-generation completion and immutable afterwards.
type CharacterProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
	Appearance  string `json:"appearance"`
	Skills      string `json:"skills"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// IsSet reports whether the profile has been populated.
func (c *CharacterProfile) IsSet() bool {
	return c.Name != ""
}

// Render formats the profile as prompt text in the given language.
func (c *CharacterProfile) Render(lang language.Tag) string {
	if lang == language.Chinese {
		return fmt.Sprintf(`角色信息:
名称: %s
描述: %s
性格: %s
背景: %s
外貌: %s
技能: %s
位置: %s
状态: %s
`, c.Name, c.Description, c.Personality, c.Background, c.Appearance, c.Skills, c.Location, c.Status)
	}
	return fmt.Sprintf(`Character Information:
Name: %s
Description: %s
Personality: %s
Background: %s
Appearance: %s
Skills: %s
Location: %s
Status: %s
`, c.Name, c.Description, c.Personality, c.Background, c.Appearance, c.Skills, c.Location, c.Status)
}
