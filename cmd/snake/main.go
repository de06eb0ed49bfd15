package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"gridsnake/internal/game"
	"gridsnake/internal/ui"
)

func main() {
	dbPath := flag.String("db", "snake_scores.db", "path to the high score database")
	aiScript := flag.String("ai-script", "", "optional Lua script overriding the AI strategy")
	flag.Parse()

	store, err := game.OpenScoreStore(*dbPath)
	if err != nil {
		log.Fatal("Could not open score store", "error", err)
	}
	defer store.Close()

	var strategy game.Strategy = game.PathfinderStrategy{}
	if *aiScript != "" {
		scripted, err := game.LoadScriptStrategy(*aiScript, strategy)
		if err != nil {
			log.Fatal("Could not load AI script", "path", *aiScript, "error", err)
		}
		strategy = scripted
	}

	engine := game.NewEngine(store, strategy)
	program := tea.NewProgram(ui.NewControllerModel(engine, store, 80, 24), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error("Program error", "error", err)
		os.Exit(1)
	}
}
