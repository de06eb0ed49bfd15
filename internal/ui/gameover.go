package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridsnake/internal/game"
)

var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196")).
				Padding(1, 4)

	finalScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	bestScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	loseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	gameOverBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				Padding(1, 3)
)

// GameOverModel shows the final standing of a round and returns to the
// menu on enter.
type GameOverModel struct {
	result game.RoundOverMsg
	width  int
	height int
}

func NewGameOverModel(result game.RoundOverMsg, w, h int) GameOverModel {
	return GameOverModel{result: result, width: w, height: h}
}

func (m GameOverModel) Init() tea.Cmd { return nil }

func (m GameOverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameOverModel) View() string {
	parts := []string{
		gameOverTitleStyle.Render("G A M E   O V E R"),
		finalScoreStyle.Render(fmt.Sprintf("Your Score: %d", m.result.Score)),
		bestScoreStyle.Render(fmt.Sprintf("High Score (%s): %d", m.result.Mode, m.result.Best)),
	}

	if m.result.AIPresent {
		verdict := loseStyle.Render(fmt.Sprintf("AI Wins! (%d)", m.result.AIScore))
		if m.result.Score > m.result.AIScore {
			verdict = winStyle.Render("You Win!")
		}
		parts = append(parts, "", verdict)
	}

	parts = append(parts, "",
		lipgloss.NewStyle().Faint(true).Render("enter for menu, q to quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		gameOverBoxStyle.Render(content),
	)
}
