package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gridsnake/internal/game"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	foodStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	obstacleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	playerBodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	playerHeadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	aiBodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	aiHeadStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	powerUpStyles = map[game.PowerUpKind]lipgloss.Style{
		game.SpeedBoost:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		game.SlowDown:      lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
		game.DoublePoints:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		game.Invincibility: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}

	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

// GameModel renders the running round and feeds player input into the
// engine. It blocks on the engine's update channel between ticks, so
// one frame is drawn per simulation step.
type GameModel struct {
	engine    *game.Engine
	tickCount int
	width     int
	height    int
}

func NewGameModel(engine *game.Engine, screenWidth, screenHeight int) GameModel {
	return GameModel{
		engine: engine,
		width:  screenWidth,
		height: screenHeight,
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameModel) listenForGameUpdates() tea.Cmd {
	return func() tea.Msg {
		return <-m.engine.UpdateChannel
	}
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "w":
			m.engine.DirectionChannel <- game.Up
		case "down", "s":
			m.engine.DirectionChannel <- game.Down
		case "left", "a":
			m.engine.DirectionChannel <- game.Left
		case "right", "d":
			m.engine.DirectionChannel <- game.Right
		case "esc":
			// Abandon the round; the engine still reports the score
			// and a RoundOverMsg follows on the update channel.
			m.engine.StopRound()
		}

	case game.GameTickMsg:
		m.tickCount++
		return m, m.listenForGameUpdates()
	}

	return m, nil
}

func (m GameModel) View() string {
	snap, ok := m.engine.Snapshot()
	if !ok {
		return "Starting round..."
	}

	board := boardStyle.Render(renderBoard(snap))
	panel := statusPanelStyle.Render(m.renderStatusPanel(snap))
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderBoard draws the grid row by row, one rune per cell.
func renderBoard(snap game.RoundSnapshot) string {
	cells := make(map[game.Cell]string, len(snap.PlayerBody)+len(snap.AIBody)+len(snap.Obstacles)+2)

	for _, c := range snap.Obstacles {
		cells[c] = obstacleStyle.Render("█")
	}
	cells[snap.Food] = foodStyle.Render("●")
	if snap.PowerUp != nil {
		cells[snap.PowerUp.Cell] = powerUpStyles[snap.PowerUp.Kind].Render("◆")
	}
	if snap.AIAlive {
		for _, c := range snap.AIBody[1:] {
			cells[c] = aiBodyStyle.Render("o")
		}
		cells[snap.AIBody[0]] = aiHeadStyle.Render("●")
	}
	for _, c := range snap.PlayerBody[1:] {
		cells[c] = playerBodyStyle.Render("o")
	}
	cells[snap.PlayerBody[0]] = playerHeadStyle.Render(headRunes[snap.PlayerDir])

	var board strings.Builder
	for y := 0; y < game.GridHeight; y++ {
		for x := 0; x < game.GridWidth; x++ {
			if rendered, ok := cells[game.Cell{X: x, Y: y}]; ok {
				board.WriteString(rendered)
			} else {
				board.WriteString(voidStyle.Render("·"))
			}
		}
		if y < game.GridHeight-1 {
			board.WriteString("\n")
		}
	}
	return board.String()
}

func (m GameModel) renderStatusPanel(snap game.RoundSnapshot) string {
	var panel strings.Builder
	bold := lipgloss.NewStyle().Bold(true)

	panel.WriteString(bold.Render("--- "+snap.Mode.String()+" ---") + "\n")
	panel.WriteString(fmt.Sprintf("Score: %d\n", snap.PlayerScore))
	if snap.AIPresent {
		status := "alive"
		if !snap.AIAlive {
			status = "crashed"
		}
		panel.WriteString(fmt.Sprintf("AI: %d (%s)\n", snap.AIScore, status))
	}
	panel.WriteString(fmt.Sprintf("Level: %d\n", snap.Level))
	panel.WriteString(fmt.Sprintf("Tick: %d\n", m.tickCount))

	if len(snap.PlayerPowerUps) > 0 {
		panel.WriteString("\n" + bold.Render("--- Power-Ups ---") + "\n")
		for _, kind := range snap.PlayerPowerUps {
			panel.WriteString(powerUpStyles[kind].Render("◆ "+kind.String()) + "\n")
		}
	}

	panel.WriteString("\n" + bold.Render("--- Controls ---") + "\n")
	panel.WriteString("WASD / Arrows: Move\n")
	panel.WriteString("ESC: Back to menu\n")

	return panel.String()
}
