package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	headingLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("226"))

	detailLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	plainLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pageNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type instructionsPage struct {
	title string
	lines []string
}

var instructionPages = []instructionsPage{
	{
		title: "HOW TO PLAY - CONTROLS",
		lines: []string{
			"BASIC CONTROLS:",
			"  Arrow keys / WASD - move snake",
			"  ESC - abandon round, back to menu",
			"  Enter - select menu options",
			"",
			"MOVEMENT RULES:",
			"  • The snake moves continuously",
			"  • You cannot reverse direction",
			"  • Example: moving RIGHT, you can't go LEFT",
			"",
			"OBJECTIVE:",
			"  • Eat food to grow",
			"  • Each food is worth 10 points",
			"  • Avoid walls and your own body",
		},
	},
	{
		title: "GAME MODES",
		lines: []string{
			"CLASSIC MODE:",
			"  • Traditional snake gameplay",
			"  • Eat food, grow, stay alive",
			"",
			"AI BATTLE MODE:",
			"  • Race an AI opponent for the same food",
			"  • The AI pathfinds straight to it",
			"  • Highest score wins",
			"",
			"OBSTACLE CHALLENGE:",
			"  • Navigate around fixed obstacles",
			"  • The hardest mode",
		},
	},
	{
		title: "POWER-UPS & TIPS",
		lines: []string{
			"POWER-UPS:",
			"  • Cyan - Speed Boost",
			"  • Purple - Slow Down",
			"  • Yellow - Double Points (2x score)",
			"  • Orange - Invincibility",
			"",
			"STRATEGY TIPS:",
			"  • Stay near the center for space",
			"  • Plan a few moves ahead",
			"  • Don't trap yourself in corners",
			"  • Grab yellow power-ups for high scores",
		},
	},
}

// InstructionsModel is the paged how-to-play screen.
type InstructionsModel struct {
	page   int
	width  int
	height int
}

func NewInstructionsModel(w, h int) InstructionsModel {
	return InstructionsModel{width: w, height: h}
}

func (m InstructionsModel) Init() tea.Cmd { return nil }

func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.page > 0 {
				m.page--
			}
		case "right", "l":
			if m.page < len(instructionPages)-1 {
				m.page++
			}
		case "esc", "enter":
			m.page = 0
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
	}
	return m, nil
}

func (m InstructionsModel) View() string {
	page := instructionPages[m.page]

	var body strings.Builder
	for _, line := range page.lines {
		switch {
		case strings.HasPrefix(line, "  •"):
			body.WriteString(detailLineStyle.Render(line))
		case strings.HasSuffix(line, ":"):
			body.WriteString(headingLineStyle.Render(line))
		default:
			body.WriteString(plainLineStyle.Render(line))
		}
		body.WriteString("\n")
	}

	nav := pageNavStyle.Render(fmt.Sprintf("Page %d of %d  —  ←/→ to page, esc for menu", m.page+1, len(instructionPages)))

	content := lipgloss.JoinVertical(lipgloss.Left,
		pageTitleStyle.Render(page.title),
		"",
		body.String(),
		nav,
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
