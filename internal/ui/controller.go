package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gridsnake/internal/game"
)

type Screen int

const (
	MenuScreen Screen = iota
	InstructionsScreen
	ScoresScreen
	GameScreen
	GameOverScreen
)

// Messages for screen transitions.
type StartGameMsg struct {
	Mode game.Mode
}
type ShowInstructionsMsg struct{}
type ShowScoresMsg struct{}
type BackToMenuMsg struct{}

// ControllerModel routes between the menu, instructions, high scores,
// the live game and the game-over screen. Child models handle their own
// keys; the controller only reacts to transition messages.
type ControllerModel struct {
	CurrentScreen Screen
	Engine        *game.Engine
	Scores        game.HighScoreStore

	MenuModel         tea.Model
	InstructionsModel tea.Model
	ScoresModel       tea.Model
	GameModel         tea.Model
	GameOverModel     tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(engine *game.Engine, scores game.HighScoreStore, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen:     MenuScreen,
		Engine:            engine,
		Scores:            scores,
		MenuModel:         NewMenuModel(screenWidth, screenHeight),
		InstructionsModel: NewInstructionsModel(screenWidth, screenHeight),
		ScreenWidth:       screenWidth,
		ScreenHeight:      screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.MenuModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case MenuScreen:
		return m.MenuModel.View()
	case InstructionsScreen:
		return m.InstructionsModel.View()
	case ScoresScreen:
		if m.ScoresModel != nil {
			return m.ScoresModel.View()
		}
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
	case GameOverScreen:
		if m.GameOverModel != nil {
			return m.GameOverModel.View()
		}
	}
	return "Loading..."
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			m.Engine.StopRound()
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		// Every screen cares about the terminal size; fan it out.
		for _, child := range []*tea.Model{&m.MenuModel, &m.InstructionsModel, &m.ScoresModel, &m.GameModel, &m.GameOverModel} {
			if *child != nil {
				*child, cmd = (*child).Update(msg)
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case StartGameMsg:
		m.Engine.StartRound(msg.Mode, 1)
		m.GameModel = NewGameModel(m.Engine, m.ScreenWidth, m.ScreenHeight)
		m.CurrentScreen = GameScreen
		return m, m.GameModel.Init()

	case ShowInstructionsMsg:
		m.CurrentScreen = InstructionsScreen
		return m, m.InstructionsModel.Init()

	case ShowScoresMsg:
		m.ScoresModel = NewScoresModel(m.Scores, m.ScreenWidth, m.ScreenHeight)
		m.CurrentScreen = ScoresScreen
		return m, m.ScoresModel.Init()

	case game.RoundOverMsg:
		m.GameOverModel = NewGameOverModel(msg, m.ScreenWidth, m.ScreenHeight)
		m.CurrentScreen = GameOverScreen
		return m, m.GameOverModel.Init()

	case BackToMenuMsg:
		m.CurrentScreen = MenuScreen
		return m, m.MenuModel.Init()

	default:
		switch m.CurrentScreen {
		case MenuScreen:
			m.MenuModel, cmd = m.MenuModel.Update(msg)
			cmds = append(cmds, cmd)
		case InstructionsScreen:
			m.InstructionsModel, cmd = m.InstructionsModel.Update(msg)
			cmds = append(cmds, cmd)
		case ScoresScreen:
			if m.ScoresModel != nil {
				m.ScoresModel, cmd = m.ScoresModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case GameOverScreen:
			if m.GameOverModel != nil {
				m.GameOverModel, cmd = m.GameOverModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}
