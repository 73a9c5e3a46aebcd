package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// MenuChoice is what the launcher menu resolved to.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable launcher entry.
type MenuItem struct {
	Label      string
	Choice     MenuChoice
	Difficulty config.Difficulty // Preselected difficulty for ChoicePlay
}

// DefaultMenuItems returns one play entry per difficulty followed by the
// scoreboard and quit entries.
func DefaultMenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(config.Difficulties)+2)
	for _, d := range config.Difficulties {
		items = append(items, MenuItem{
			Label:      "Play - " + d.Title(),
			Choice:     ChoicePlay,
			Difficulty: d,
		})
	}
	return append(items,
		MenuItem{Label: "High Scores", Choice: ChoiceScores},
		MenuItem{Label: "Quit", Choice: ChoiceQuit},
	)
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	player    string
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new launcher menu. highScore is shown under the
// title when positive.
func NewMenuModel(cfg core.RuntimeConfig, highScore int) MenuModel {
	return MenuModel{
		items:     DefaultMenuItems(),
		cursor:    1, // Medium
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		player:    cfg.Player,
		highScore: highScore,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
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
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
		}
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.selected = &MenuItem{Label: "High Scores", Choice: ChoiceScores}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorGold.Hex()))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("E Y E   D R O P   I N V A D E R S"), m.width))
	b.WriteString("\n\n")

	subtitle := "Match each eye condition with its treatment"
	if m.player != "" {
		subtitle = fmt.Sprintf("Welcome, %s", m.player)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best so far: %d", m.highScore)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty config.Difficulty
	Config     core.RuntimeConfig
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Choice: ChoiceQuit, Config: m.config}
	if m.selected != nil && !m.quitting {
		result.Choice = m.selected.Choice
		result.Difficulty = m.selected.Difficulty
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, highScore int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, highScore),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
