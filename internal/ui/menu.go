package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridsnake/internal/game"
)

var snakeAscii = `
   ____ ____  ___ ____  ____  _   _    _    _  _______
  / ___|  _ \|_ _|  _ \/ ___|| \ | |  / \  | |/ / ____|
 | |  _| |_) || || | | \___ \|  \| | / _ \ | ' /|  _|
 | |_| |  _ < | || |_| |___) | |\  |/ ___ \| . \| |___
  \____|_| \_\___|____/|____/|_| \_/_/   \_\_|\_\_____|
`

var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	menuOptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("226")).
				Bold(true).
				Padding(0, 2)

	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Margin(1, 0)
)

var menuOptions = []string{
	"Classic Mode",
	"AI Battle Mode",
	"Obstacle Challenge",
	"How to Play",
	"High Scores",
	"Quit",
}

// MenuModel is the main menu: three game modes plus instructions, the
// high-score table and quit.
type MenuModel struct {
	selected int
	width    int
	height   int
}

func NewMenuModel(w, h int) MenuModel {
	return MenuModel{width: w, height: h}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.selected = (m.selected - 1 + len(menuOptions)) % len(menuOptions)
		case "down", "j":
			m.selected = (m.selected + 1) % len(menuOptions)
		case "enter":
			switch m.selected {
			case 0, 1, 2:
				mode := game.Mode(m.selected + 1)
				return m, func() tea.Msg { return StartGameMsg{Mode: mode} }
			case 3:
				return m, func() tea.Msg { return ShowInstructionsMsg{} }
			case 4:
				return m, func() tea.Msg { return ShowScoresMsg{} }
			case 5:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var options strings.Builder
	for i, option := range menuOptions {
		if i == m.selected {
			options.WriteString(menuSelectedStyle.Render("▸ " + option))
		} else {
			options.WriteString(menuOptionStyle.Render("  " + option))
		}
		options.WriteString("\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render(snakeAscii),
		options.String(),
		menuHelpStyle.Render("↑/↓ to navigate, enter to select, ctrl+c to quit"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
