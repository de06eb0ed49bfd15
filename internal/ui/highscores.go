package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"gridsnake/internal/game"
)

var (
	scoresTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("226")).
				Margin(1, 0)

	scoresHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Margin(1, 0)

	scoresBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// ScoresModel shows the per-mode best scores loaded from the store.
type ScoresModel struct {
	scoreTable table.Model
	width      int
	height     int
}

func NewScoresModel(store game.HighScoreStore, w, h int) ScoresModel {
	scores, err := store.Load()
	if err != nil {
		log.Error("Could not load high scores", "error", err)
		scores = map[string]int{}
	}

	modes := []game.Mode{game.ModeClassic, game.ModeAIBattle, game.ModeObstacle}
	rows := make([]table.Row, 0, len(modes))
	for _, mode := range modes {
		rows = append(rows, table.Row{mode.String(), strconv.Itoa(scores[mode.Key()])})
	}

	scoreTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: 20},
			{Title: "Best Score", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(true),
	)

	return ScoresModel{scoreTable: scoreTable, width: w, height: h}
}

func (m ScoresModel) Init() tea.Cmd { return nil }

func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
	}

	var cmd tea.Cmd
	m.scoreTable, cmd = m.scoreTable.Update(msg)
	return m, cmd
}

func (m ScoresModel) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		scoresTitleStyle.Render("HIGH SCORES"),
		scoresBorderStyle.Render(m.scoreTable.View()),
		scoresHelpStyle.Render("esc to go back"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
