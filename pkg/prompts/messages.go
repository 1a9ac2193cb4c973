package prompts

import "golang.org/x/text/language"

// Messages holds the localized user-facing strings for one language. The
// console UI and the game engine both read from these rather than embedding
// literals, so the two languages stay in sync.
type Messages struct {
	Start                 string
	Welcome               string
	SettingPrompt         string
	CharacterPrompt       string
	GeneratingWorld       string
	ContinuingAdventure   string
	SetupFailed           string
	ActionPrompt          string
	Quit                  string
	NotInitialized        string
	MaxRetriesReached     string
	RetryInitialization   string
	RetryingInit          string
	InitializationAborted string
	RetryAction           string
	RetryingAction        string
	ActionFailed          string

	// Suggested next actions returned alongside the failure narratives.
	SetupFailedPrompts    []string
	NotInitializedPrompts []string
	ActionFailedPrompts   []string
}

var messagesEN = Messages{
	Start:                 "=== SETTING UP NEW ADVENTURE ===",
	Welcome:               "Welcome to the game!",
	SettingPrompt:         "Describe the world of your adventure (setting, time period, magic/technology, etc.):",
	CharacterPrompt:       "What is your character's name and brief background?",
	GeneratingWorld:       "Generating your adventure world...",
	ContinuingAdventure:   "Continuing your adventure...",
	SetupFailed:           "Game setup failed. Exiting...",
	ActionPrompt:          "What would you like to do?",
	Quit:                  "Thanks for playing!",
	NotInitialized:        "Game is not properly initialized. Please restart and set up a new game.",
	MaxRetriesReached:     "Maximum retry attempts reached. Exiting...",
	RetryInitialization:   "Retry initialization? (y/n)",
	RetryingInit:          "Retrying initialization...",
	InitializationAborted: "Game initialization aborted.",
	RetryAction:           "Would you like to retry? (y/n)",
	RetryingAction:        "Retrying action...",
	ActionFailed:          "Failed to process action. Please try a different action.",

	SetupFailedPrompts:    []string{"Try again"},
	NotInitializedPrompts: []string{"Setup a new game"},
	ActionFailedPrompts:   []string{"Try a different action", "Restart the game"},
}

var messagesZH = Messages{
	Start:                 "=== 开始新的冒险 ===",
	Welcome:               "欢迎来到游戏！",
	SettingPrompt:         "描述你的冒险世界（设定、时间、魔法/科技等）：",
	CharacterPrompt:       "你的角色叫什么名字，以及简要背景是什么？",
	GeneratingWorld:       "正在生成你的冒险世界...",
	ContinuingAdventure:   "继续你的冒险...",
	SetupFailed:           "游戏设置失败。退出...",
	ActionPrompt:          "你想做什么？",
	Quit:                  "谢谢你的游玩！",
	NotInitialized:        "游戏未正确初始化。请重新启动并设置一个新的游戏。",
	MaxRetriesReached:     "最大重试次数达到。退出...",
	RetryInitialization:   "重试初始化？(y/n)",
	RetryingInit:          "正在重试初始化...",
	InitializationAborted: "游戏初始化已取消。",
	RetryAction:           "你想重试行动吗？(y/n)",
	RetryingAction:        "正在重试行动...",
	ActionFailed:          "处理动作失败。请尝试不同的动作。",

	SetupFailedPrompts:    []string{"再试一次"},
	NotInitializedPrompts: []string{"设置新游戏"},
	ActionFailedPrompts:   []string{"尝试不同的行动", "重新开始游戏"},
}

// MessagesFor returns the message table for the given language, defaulting
// to English for anything other than Chinese.
func MessagesFor(lang language.Tag) Messages {
	if lang == language.Chinese {
		return messagesZH
	}
	return messagesEN
}
