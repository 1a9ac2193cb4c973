package narrative

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLog_AppendKeepsPairing(t *testing.T) {
	l := NewLog()
	inputs := []string{"", "open the door", "光着脚走进去", "", "run"}
	for i, in := range inputs {
		l.Append(in, fmt.Sprintf("story %d", i))
		assert.Equal(t, len(l.UserInput), len(l.Story))
	}
	assert.Equal(t, len(inputs), l.Len())
}

func TestLog_Render(t *testing.T) {
	l := NewLog()
	l.Append("", "The lamp gutters.")
	l.Append("climb the stairs", "The stairs groan underfoot.")

	rendered := l.Render(0, l.Len(), language.English)
	assert.Equal(t,
		"The lamp gutters.\n\n"+
			"You make a choice:climb the stairs\n\n"+
			"The stairs groan underfoot.\n\n",
		rendered)
}

func TestLog_RenderChinese(t *testing.T) {
	l := NewLog()
	l.Append("推开门", "门后是一条走廊。")

	rendered := l.Render(0, l.Len(), language.Chinese)
	assert.Equal(t, "你做出选择：推开门\n\n门后是一条走廊。\n\n", rendered)
}

func TestHistory_RenderedFramework(t *testing.T) {
	h := NewHistory(language.English)
	h.Add(KindFramework, "", "A lighthouse on a storm-wracked coast.")
	assert.Equal(t, "A lighthouse on a storm-wracked coast.", h.Rendered(KindFramework))
}

func TestHistory_RecentWindow(t *testing.T) {
	h := NewHistory(language.English)
	for i := 0; i < 15; i++ {
		h.Add(KindRecent, fmt.Sprintf("action %d", i), fmt.Sprintf("story %d", i))
	}

	rendered := h.Rendered(KindRecent)

	// Last 10 turns only: 5 through 14.
	assert.NotContains(t, rendered, "story 4")
	assert.Contains(t, rendered, "story 5")
	assert.Contains(t, rendered, "story 14")
}

func TestHistory_RecentWindowUnderfilled(t *testing.T) {
	h := NewHistory(language.English)
	h.Add(KindRecent, "", "opening")
	h.Add(KindRecent, "wait", "nothing happens")

	rendered := h.Rendered(KindRecent)
	assert.Contains(t, rendered, "opening")
	assert.Contains(t, rendered, "nothing happens")
}

func TestHistory_HistoryWindow(t *testing.T) {
	h := NewHistory(language.English)
	for i := 0; i < 15; i++ {
		h.Add(KindHistory, fmt.Sprintf("action %d", i), fmt.Sprintf("event %d", i))
	}

	rendered := h.Rendered(KindHistory)

	// Earliest 5 turns only: the newest window-size turns stay hidden.
	assert.Contains(t, rendered, "event 0")
	assert.Contains(t, rendered, "event 4")
	assert.NotContains(t, rendered, "event 5")
	assert.NotContains(t, rendered, "event 14")
}

func TestHistory_HistoryWindowWithinWindowSize(t *testing.T) {
	h := NewHistory(language.English)
	for i := 0; i < 10; i++ {
		h.Add(KindHistory, "", fmt.Sprintf("event %d", i))
	}
	assert.Empty(t, h.Rendered(KindHistory))
}

func TestHistory_SnapshotRoundTrip(t *testing.T) {
	h := NewHistory(language.Chinese)
	h.Add(KindFramework, "", "赛博朋克风格的江湖世界")
	h.Add(KindRecent, "", "开场：雨夜的霓虹街道。\n多行文本。")
	h.Add(KindRecent, "拔剑", "剑光一闪。")
	h.Add(KindHistory, "", "雨夜 ——> 相遇")

	restored := NewHistory(language.Chinese)
	require.NoError(t, restored.Restore(h.Snapshot()))

	assert.Equal(t, h.StoryFramework, restored.StoryFramework)
	assert.Equal(t, h.Recent.UserInput, restored.Recent.UserInput)
	assert.Equal(t, h.Recent.Story, restored.Recent.Story)
	assert.Equal(t, h.Events.UserInput, restored.Events.UserInput)
	assert.Equal(t, h.Events.Story, restored.Events.Story)
}

func TestHistory_RestoreInvalidSnapshotLeavesStateUntouched(t *testing.T) {
	h := NewHistory(language.English)
	h.Add(KindFramework, "", "original framework")
	h.Add(KindRecent, "look", "a dark room")

	bad := &Snapshot{
		StoryFramework:       "replacement",
		RecentStoryUserInput: []string{"one", "two"},
		RecentStoryStory:     []string{"only one"},
	}

	assert.Error(t, h.Restore(bad))
	assert.Equal(t, "original framework", h.StoryFramework)
	assert.Equal(t, []string{"look"}, h.Recent.UserInput)
}

func TestHistory_RestoreNil(t *testing.T) {
	h := NewHistory(language.English)
	assert.Error(t, h.Restore(nil))
}

func TestCharacterProfile_Render(t *testing.T) {
	c := &CharacterProfile{
		Name:        "Mira",
		Description: "A young lighthouse keeper.",
		Location:    "The lighthouse",
	}

	en := c.Render(language.English)
	assert.Contains(t, en, "Character Information:")
	assert.Contains(t, en, "Name: Mira")
	assert.Contains(t, en, "Location: The lighthouse")

	zh := c.Render(language.Chinese)
	assert.Contains(t, zh, "角色信息:")
	assert.Contains(t, zh, "名称: Mira")

	assert.True(t, c.IsSet())
	assert.False(t, (&CharacterProfile{}).IsSet())
}

func TestWorldFramework_Render(t *testing.T) {
	w := &WorldFramework{
		WorldStructure:    "Three kingdoms.",
		ImportantNPC:      "Quen.",
		History:           "The flood.",
		WorldArchitecture: "Trade routes.",
	}
	rendered := w.Render()
	assert.Contains(t, rendered, "World Structure: Three kingdoms.")
	assert.Contains(t, rendered, "World Architecture: Trade routes.")
	assert.True(t, w.IsSet())
	assert.False(t, (&WorldFramework{}).IsSet())
}
