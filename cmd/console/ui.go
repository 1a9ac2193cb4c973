package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/language"

	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/prompts"
)

const maxRetries = 3

// phase tracks where the player is in the game flow.
type phase int

const (
	phaseLanguage phase = iota // picking a language
	phaseSetting               // entering the story framework
	phaseCharacter             // entering the character seed
	phasePlaying               // taking actions
)

// retryStage identifies which operation a retry prompt refers to.
type retryStage int

const (
	retrySetup retryStage = iota
	retryAction
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Background(lipgloss.Color("235")).
			Padding(1, 2)
)

// ConsoleUI is the bubbletea model for the adventure console.
type ConsoleUI struct {
	cfg    *ConsoleConfig
	client *http.Client

	viewport viewport.Model
	textarea textarea.Model
	width    int
	height   int
	ready    bool

	phase phase
	lang  language.Tag
	msgs  prompts.Messages

	langCursor int

	sessionID     uuid.UUID
	framework     string
	characterSeed string
	lastAction    string
	nextPrompts   []string

	lines []string

	loading    bool
	loadingMsg string
	progress   int

	showQuitModal  bool
	showRetryModal bool
	retryStage     retryStage
	retryCount     int
	retryErr       string
}

type initDoneMsg struct {
	resp *game.InitializeResponse
	err  error
}

type turnDoneMsg struct {
	stage retryStage
	resp  *game.TurnResponse
	err   error
}

type progressTickMsg time.Time

func NewConsoleUI(cfg *ConsoleConfig) *ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = "What do you do?"
	ta.CharLimit = 2000
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(80, 20)

	return &ConsoleUI{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		viewport: vp,
		textarea: ta,
		phase:    phaseLanguage,
		msgs:     prompts.MessagesFor(language.English),
	}
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func progressTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

func (ui *ConsoleUI) initializeCmd() tea.Cmd {
	lang := "en"
	if ui.lang == language.Chinese {
		lang = "zh"
	}
	return func() tea.Msg {
		resp, err := initializeSession(ui.client, ui.cfg.APIBaseURL, lang)
		return initDoneMsg{resp: resp, err: err}
	}
}

func (ui *ConsoleUI) setupCmd() tea.Cmd {
	req := game.SetupRequest{
		SessionID:      ui.sessionID,
		StoryFramework: ui.framework,
		CharacterSeed:  ui.characterSeed,
	}
	return func() tea.Msg {
		resp, err := setupGame(ui.client, ui.cfg.APIBaseURL, req)
		return turnDoneMsg{stage: retrySetup, resp: resp, err: err}
	}
}

func (ui *ConsoleUI) actionCmd(input string) tea.Cmd {
	req := game.ActionRequest{
		SessionID: ui.sessionID,
		UserInput: input,
	}
	return func() tea.Msg {
		resp, err := takeAction(ui.client, ui.cfg.APIBaseURL, req)
		return turnDoneMsg{stage: retryAction, resp: resp, err: err}
	}
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		headerHeight := 2
		footerHeight := ui.textarea.Height() + 3
		ui.viewport.Width = msg.Width
		ui.viewport.Height = msg.Height - headerHeight - footerHeight
		ui.textarea.SetWidth(msg.Width - 2)
		ui.ready = true
		ui.refreshViewport()
		return ui, nil

	case progressTickMsg:
		if !ui.loading {
			return ui, nil
		}
		ui.progress++
		return ui, progressTick()

	case initDoneMsg:
		return ui.handleInitDone(msg)

	case turnDoneMsg:
		return ui.handleTurnDone(msg)

	case tea.KeyMsg:
		return ui.handleKey(msg)
	}

	var cmd tea.Cmd
	ui.textarea, cmd = ui.textarea.Update(msg)
	return ui, cmd
}

func (ui *ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if ui.showQuitModal {
		switch msg.String() {
		case "y", "Y":
			return ui, tea.Quit
		case "n", "N", "esc":
			ui.showQuitModal = false
		}
		return ui, nil
	}

	if ui.showRetryModal {
		switch msg.String() {
		case "y", "Y":
			return ui.confirmRetry()
		case "n", "N", "esc":
			return ui.declineRetry()
		}
		return ui, nil
	}

	switch msg.String() {
	case "ctrl+c":
		ui.showQuitModal = true
		return ui, nil
	case "esc":
		if ui.phase == phasePlaying || ui.phase == phaseSetting || ui.phase == phaseCharacter {
			ui.showQuitModal = true
			return ui, nil
		}
	}

	if ui.phase == phaseLanguage {
		switch msg.String() {
		case "up", "k":
			if ui.langCursor > 0 {
				ui.langCursor--
			}
		case "down", "j":
			if ui.langCursor < 1 {
				ui.langCursor++
			}
		case "enter":
			ui.lang = language.English
			if ui.langCursor == 1 {
				ui.lang = language.Chinese
			}
			ui.msgs = prompts.MessagesFor(ui.lang)
			ui.loading = true
			ui.loadingMsg = ui.msgs.Start
			return ui, tea.Batch(ui.initializeCmd(), progressTick())
		}
		return ui, nil
	}

	if ui.loading {
		return ui, nil
	}

	if msg.String() == "enter" {
		return ui.handleSubmit()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	ui.textarea, cmd = ui.textarea.Update(msg)
	cmds = append(cmds, cmd)
	ui.viewport, cmd = ui.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return ui, tea.Batch(cmds...)
}

func (ui *ConsoleUI) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(ui.textarea.Value())
	if input == "" {
		return ui, nil
	}
	ui.textarea.Reset()

	switch ui.phase {
	case phaseSetting:
		ui.framework = input
		ui.appendLine(userStyle.Render(input))
		ui.appendLine(promptStyle.Render(ui.msgs.CharacterPrompt))
		ui.phase = phaseCharacter
		return ui, nil

	case phaseCharacter:
		ui.characterSeed = input
		ui.appendLine(userStyle.Render(input))
		ui.retryCount = 0
		ui.loading = true
		ui.loadingMsg = ui.msgs.GeneratingWorld
		return ui, tea.Batch(ui.setupCmd(), progressTick())

	case phasePlaying:
		if isQuitWord(input) {
			ui.showQuitModal = true
			return ui, nil
		}
		ui.lastAction = input
		ui.retryCount = 0
		ui.appendLine(userStyle.Render("> " + input))
		ui.loading = true
		ui.loadingMsg = "..."
		return ui, tea.Batch(ui.actionCmd(input), progressTick())
	}
	return ui, nil
}

func isQuitWord(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "退出":
		return true
	}
	return false
}

func (ui *ConsoleUI) handleInitDone(msg initDoneMsg) (tea.Model, tea.Cmd) {
	ui.loading = false
	if msg.err != nil {
		ui.appendLine(errorStyle.Render(fmt.Sprintf("%s (%v)", ui.msgs.SetupFailed, msg.err)))
		ui.retryStage = retrySetup
		return ui.maybeOfferRetry(msg.err.Error())
	}

	ui.sessionID = msg.resp.SessionID
	ui.appendLine(titleStyle.Render(ui.msgs.Start))
	ui.appendLine(narratorStyle.Render(ui.wrap(ui.msgs.Welcome)))
	for _, p := range msg.resp.ReadyPrompts {
		ui.appendLine(promptStyle.Render(ui.wrap(p)))
	}
	ui.phase = phaseSetting
	ui.textarea.Focus()
	return ui, nil
}

func (ui *ConsoleUI) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	ui.loading = false
	ui.retryStage = msg.stage

	if msg.err != nil {
		return ui.maybeOfferRetry(msg.err.Error())
	}
	if !msg.resp.Success {
		if msg.resp.Narrative != "" {
			ui.appendLine(errorStyle.Render(ui.wrap(msg.resp.Narrative)))
		}
		return ui.maybeOfferRetry(msg.resp.Message)
	}

	ui.appendLine(narratorStyle.Render(ui.wrap(msg.resp.Narrative)))
	ui.nextPrompts = msg.resp.NextPrompts
	if msg.stage == retrySetup {
		ui.phase = phasePlaying
		ui.textarea.Placeholder = ui.msgs.ActionPrompt
	}
	ui.textarea.Focus()
	return ui, nil
}

// maybeOfferRetry shows the retry modal, or gives up once the retry
// budget is spent.
func (ui *ConsoleUI) maybeOfferRetry(detail string) (tea.Model, tea.Cmd) {
	if ui.retryCount >= maxRetries {
		ui.appendLine(errorStyle.Render(ui.msgs.MaxRetriesReached))
		if ui.retryStage == retrySetup {
			ui.appendLine(errorStyle.Render(ui.msgs.InitializationAborted))
			return ui, tea.Quit
		}
		ui.appendLine(errorStyle.Render(ui.msgs.ActionFailed))
		ui.nextPrompts = ui.msgs.ActionFailedPrompts
		return ui, nil
	}
	ui.retryErr = detail
	ui.showRetryModal = true
	return ui, nil
}

func (ui *ConsoleUI) confirmRetry() (tea.Model, tea.Cmd) {
	ui.showRetryModal = false
	ui.retryCount++
	ui.loading = true
	if ui.retryStage == retrySetup {
		ui.appendLine(loadingStyle.Render(ui.msgs.RetryingInit))
		ui.loadingMsg = ui.msgs.GeneratingWorld
		if ui.sessionID == uuid.Nil {
			return ui, tea.Batch(ui.initializeCmd(), progressTick())
		}
		return ui, tea.Batch(ui.setupCmd(), progressTick())
	}
	ui.appendLine(loadingStyle.Render(ui.msgs.RetryingAction))
	ui.loadingMsg = "..."
	return ui, tea.Batch(ui.actionCmd(ui.lastAction), progressTick())
}

func (ui *ConsoleUI) declineRetry() (tea.Model, tea.Cmd) {
	ui.showRetryModal = false
	if ui.retryStage == retrySetup {
		ui.appendLine(errorStyle.Render(ui.msgs.InitializationAborted))
		return ui, tea.Quit
	}
	ui.appendLine(errorStyle.Render(ui.msgs.ActionFailed))
	ui.nextPrompts = ui.msgs.ActionFailedPrompts
	return ui, nil
}

func (ui *ConsoleUI) appendLine(s string) {
	ui.lines = append(ui.lines, s, "")
	ui.refreshViewport()
}

func (ui *ConsoleUI) refreshViewport() {
	ui.viewport.SetContent(strings.Join(ui.lines, "\n"))
	ui.viewport.GotoBottom()
}

func (ui *ConsoleUI) wrap(s string) string {
	width := ui.viewport.Width - 2
	if width < 20 {
		width = 78
	}
	return wordwrap.String(s, width)
}

func (ui *ConsoleUI) renderProgressBar() string {
	const barWidth = 20
	filled := ui.progress % (barWidth + 1)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return loadingStyle.Render(fmt.Sprintf("%s [%s]", ui.loadingMsg, bar))
}

func (ui *ConsoleUI) renderLanguageModal() string {
	options := []string{"English", "中文"}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Language / 选择语言"))
	b.WriteString("\n\n")
	for i, opt := range options {
		cursor := "  "
		if i == ui.langCursor {
			cursor = "> "
		}
		b.WriteString(cursor + opt + "\n")
	}
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("↑/↓ select · enter confirm"))
	return modalStyle.Render(b.String())
}

func (ui *ConsoleUI) renderQuitModal() string {
	content := ui.msgs.Quit + "\n\n" + promptStyle.Render("y/n")
	return modalStyle.Render(content)
}

func (ui *ConsoleUI) renderRetryModal() string {
	prompt := ui.msgs.RetryInitialization
	if ui.retryStage == retryAction {
		prompt = ui.msgs.RetryAction
	}
	var b strings.Builder
	b.WriteString(errorStyle.Render(ui.wrap(ui.retryErr)))
	b.WriteString("\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("y/n"))
	return modalStyle.Render(b.String())
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	if ui.showQuitModal {
		return lipgloss.Place(ui.width, ui.height, lipgloss.Center, lipgloss.Center, ui.renderQuitModal())
	}
	if ui.showRetryModal {
		return lipgloss.Place(ui.width, ui.height, lipgloss.Center, lipgloss.Center, ui.renderRetryModal())
	}
	if ui.phase == phaseLanguage && !ui.loading {
		return lipgloss.Place(ui.width, ui.height, lipgloss.Center, lipgloss.Center, ui.renderLanguageModal())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Adventure Engine"))
	b.WriteString("\n\n")
	b.WriteString(ui.viewport.View())
	b.WriteString("\n")

	if ui.loading {
		b.WriteString(ui.renderProgressBar())
		b.WriteString("\n")
	} else {
		if len(ui.nextPrompts) > 0 && ui.phase == phasePlaying {
			b.WriteString(promptStyle.Render("Try: " + strings.Join(ui.nextPrompts, " · ")))
			b.WriteString("\n")
		}
		b.WriteString(ui.textarea.View())
		b.WriteString("\n")
	}
	b.WriteString(promptStyle.Render("enter send · esc quit"))
	return b.String()
}
