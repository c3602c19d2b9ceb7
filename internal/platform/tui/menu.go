package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/registry"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// MenuEntry is one line of the title screen.
type MenuEntry int

const (
	EntryPlay MenuEntry = iota
	EntryScores
	EntryQuit
)

var menuLabels = [...]string{
	EntryPlay:   "Play",
	EntryScores: "High scores",
	EntryQuit:   "Quit",
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	gameID    string
	title     string
	best      int // 0 if none or no store
	cursor    MenuEntry
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    MenuEntry
	done      bool
}

// NewMenuModel creates the title screen for Gem Crossing.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		gameID:    crossing.GameID,
		title:     registry.Title(crossing.GameID),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(m.gameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey moves the cursor or picks an entry. Every pick ends the program.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.choose(EntryQuit)

	case MenuActionUp:
		if m.cursor > EntryPlay {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < EntryQuit {
			m.cursor++
		}

	case MenuActionSelect:
		return m.choose(m.cursor)

	case MenuActionScoreboard:
		return m.choose(EntryScores)
	}

	return m, nil
}

func (m MenuModel) choose(e MenuEntry) (tea.Model, tea.Cmd) {
	m.chosen = e
	m.done = true
	return m, tea.Quit
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.IsQuitting() {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best %d", m.best), m.width))
	} else {
		b.WriteString(centerText(dimStyle.Render("No high score yet"), m.width))
	}
	b.WriteString("\n\n")

	for e, label := range menuLabels {
		cursor := "  "
		if MenuEntry(e) == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// PlaySelected reports whether the user chose to start a round.
func (m MenuModel) PlaySelected() bool {
	return m.done && m.chosen == EntryPlay
}

// GameID returns the game the Play entry starts.
func (m MenuModel) GameID() string {
	return m.gameID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.done && m.chosen == EntryQuit
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.done && m.chosen == EntryScores
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced upper-cases a title and puts a space between its letters.
func spaced(title string) string {
	words := strings.Fields(strings.ToUpper(title))
	for i, w := range words {
		words[i] = strings.Join(strings.Split(w, ""), " ")
	}
	return "  " + strings.Join(words, "   ") + "  "
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title screen and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.PlaySelected():
		result.GameID = m.GameID()
	default:
		result.Quit = true
	}

	return result, nil
}
