package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

// Presets lists the difficulty choices in menu order.
var Presets = []string{"easy", "normal", "hard", "fixed"}

// menuEntry is one line of the title menu.
type menuEntry int

const (
	entryPlay menuEntry = iota
	entryDifficulty
	entryScores
	entryQuit
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor     menuEntry
	preset     int
	highScore  int
	width      int
	height     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	play       bool
	scoreboard bool
}

// NewMenuModel creates a new menu model. preset names the initially
// selected difficulty; unknown names select "normal".
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, preset string) MenuModel {
	m := MenuModel{
		preset:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(0),
	}
	for i, p := range Presets {
		if p == preset {
			m.preset = i
		}
	}
	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > entryPlay {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < entryQuit {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == entryDifficulty {
			m.preset = (m.preset + len(Presets) - 1) % len(Presets)
		}

	case MenuActionRight:
		if m.cursor == entryDifficulty {
			m.preset = (m.preset + 1) % len(Presets)
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryPlay:
			m.play = true
			return m, tea.Quit
		case entryDifficulty:
			m.preset = (m.preset + 1) % len(Presets)
		case entryScores:
			m.scoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold.Hex()))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorDim.Hex()))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("K N I G H T   R U N"), 19, m.width))
	b.WriteString("\n\n")
	best := fmt.Sprintf("Best distance: %d", m.highScore)
	b.WriteString(centerStyled(menuDimStyle.Render(best), len(best), m.width))
	b.WriteString("\n\n")

	for e := entryPlay; e <= entryQuit; e++ {
		label := m.label(e)
		line := "  " + label
		if e == m.cursor {
			line = menuActiveStyle.Render("> " + label)
		}
		b.WriteString(centerStyled(line, len(label)+2, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) label(e menuEntry) string {
	switch e {
	case entryPlay:
		return "Play"
	case entryDifficulty:
		return "Difficulty: < " + Presets[m.preset] + " >"
	case entryScores:
		return "Scores"
	default:
		return "Quit"
	}
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() string {
	return Presets[m.preset]
}

// WantsPlay returns true if user started a run.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers already styled text whose visible width is visible.
func centerStyled(text string, visible, width int) string {
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset          string
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, gameID string, cfg core.RuntimeConfig, preset string) (MenuResult, error) {
	model := NewMenuModel(store, gameID, cfg, preset)

	p := tea.NewProgram(
		model,
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

	return MenuResult{
		Preset:          m.Preset(),
		Config:          m.Config(),
		Play:            m.WantsPlay(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            !m.WantsPlay() && !m.WantsScoreboard(),
	}, nil
}
