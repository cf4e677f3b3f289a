package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crawl/internal/core"
	"github.com/vovakirdan/tui-crawl/internal/levels"
	"github.com/vovakirdan/tui-crawl/internal/storage"
)

// LevelChoice is one entry of the level picker.
type LevelChoice struct {
	ID       string
	Title    string
	Explored int // cells the player has already explored on this level
}

// LevelChoices builds the picker entries for a game, annotated with the
// player's saved exploration.
func LevelChoices(gameID string, all []levels.Level, store *storage.Store, player string) []LevelChoice {
	var counts map[string]int
	if store != nil {
		//nolint:errcheck // Missing counts only hide the annotation
		counts, _ = store.ExploredCounts(player)
	}

	choices := make([]LevelChoice, len(all))
	for i, l := range all {
		choices[i] = LevelChoice{
			ID:       l.ID,
			Title:    l.Title(),
			Explored: counts[gameID+"/"+l.ID],
		}
	}
	return choices
}

// LevelMenuModel lets users choose the level a campaign starts on.
type LevelMenuModel struct {
	title     string
	choices   []LevelChoice
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker for the named game.
func NewLevelMenuModel(title string, choices []LevelChoice, width, height int) LevelMenuModel {
	return LevelMenuModel{
		title:     title,
		choices:   choices,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.choices) > 0 {
			m.selected = m.choices[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, c.Title)
		if c.Explored > 0 {
			line += fmt.Sprintf("  [%d explored]", c.Explored)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level ID, or "" if none was chosen.
func (m LevelMenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker and returns the chosen level ID,
// or "" if the user backed out.
func RunLevelSelector(title string, choices []LevelChoice, cfg core.RuntimeConfig) (string, error) {
	model := NewLevelMenuModel(title, choices, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}
	return m.Selected(), nil
}
