package narrative

import "fmt"

// WorldFramework is the expanded world description generated from a story
// framework. It is reference material for the player, not part of the
// per-turn prompt assembly.
type WorldFramework struct {
	WorldStructure    string `json:"world_structure"`
	ImportantNPC      string `json:"important_npc"`
	History           string `json:"history"`
	WorldArchitecture string `json:"world_architecture"`
}

// IsSet reports whether any section has been populated.
func (w *WorldFramework) IsSet() bool {
	return w.WorldStructure != "" || w.ImportantNPC != "" ||
		w.History != "" || w.WorldArchitecture != ""
}

// Render formats the framework as display text.
func (w *WorldFramework) Render() string {
	return fmt.Sprintf("World Structure: %s\nImportant NPCs: %s\nHistory: %s\nWorld Architecture: %s",
		w.WorldStructure, w.ImportantNPC, w.History, w.WorldArchitecture)
}
