package game

import (
	"math/rand"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// GameTickMsg tells the UI the round advanced one tick.
type GameTickMsg struct{}

// RoundOverMsg carries the final standing of a finished round.
type RoundOverMsg struct {
	Mode      Mode
	Level     int
	Score     int
	Best      int
	AIPresent bool
	AIScore   int
}

// Engine drives rounds at a fixed tick rate. The round itself is
// single-threaded: only the loop goroutine calls Step. Input arrives on
// DirectionChannel, the UI is notified through UpdateChannel and reads
// state via Snapshot.
type Engine struct {
	mu      sync.Mutex
	round   *Round
	running bool

	scores   HighScoreStore
	strategy Strategy
	tick     time.Duration

	DirectionChannel chan Direction
	UpdateChannel    chan tea.Msg
	stopChannel      chan struct{}
}

func NewEngine(scores HighScoreStore, strategy Strategy) *Engine {
	return &Engine{
		scores:           scores,
		strategy:         strategy,
		tick:             TickDuration,
		DirectionChannel: make(chan Direction, 10),
		UpdateChannel:    make(chan tea.Msg, 16),
	}
}

// StartRound creates a fresh round and launches its tick loop. A call
// while a round is already running is ignored.
func (e *Engine) StartRound(mode Mode, level int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}

	spawner := NewSpawner(rand.New(rand.NewSource(time.Now().UnixNano())))
	e.round = NewRound(mode, level, spawner, e.strategy)
	e.running = true
	e.stopChannel = make(chan struct{})

	log.Info("Round started", "mode", mode.Key(), "level", level)
	go e.loop(e.round, e.stopChannel)
}

// StopRound abandons the running round. The final score is still
// reported; abandoning a game counts like any other round end.
func (e *Engine) StopRound() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	close(e.stopChannel)
}

func (e *Engine) loop(r *Round, stop <-chan struct{}) {
	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			e.finish(r)
			return

		case <-ticker.C:
			pending := e.drainPendingDirection()

			e.mu.Lock()
			r.Step(pending)
			ended := r.State == RoundEnded
			e.mu.Unlock()

			e.UpdateChannel <- GameTickMsg{}
			if ended {
				e.mu.Lock()
				e.running = false
				e.mu.Unlock()
				e.finish(r)
				return
			}
		}
	}
}

// drainPendingDirection empties the input channel at the tick boundary.
// The latest queued request wins; all requests are applied before the
// snakes move.
func (e *Engine) drainPendingDirection() *Direction {
	var pending *Direction
	for {
		select {
		case dir := <-e.DirectionChannel:
			d := dir
			pending = &d
		default:
			return pending
		}
	}
}

// finish reports the score and tells the UI the round is over.
func (e *Engine) finish(r *Round) {
	e.mu.Lock()
	r.End()
	score := r.Player.Score
	msg := RoundOverMsg{
		Mode:      r.Mode,
		Level:     r.Level,
		Score:     score,
		AIPresent: r.AI != nil,
	}
	if r.AI != nil {
		msg.AIScore = r.AI.Score
	}
	e.mu.Unlock()

	best, err := e.scores.Report(r.Mode.Key(), score)
	if err != nil {
		log.Error("High score persist failed", "mode", r.Mode.Key(), "error", err)
		best = score
	}
	msg.Best = best

	log.Info("Round over", "mode", r.Mode.Key(), "score", score, "best", best)
	e.UpdateChannel <- msg
}

// RoundSnapshot is a read-only copy of the round state for rendering.
type RoundSnapshot struct {
	Mode  Mode
	Level int
	State RoundState

	PlayerBody     []Cell
	PlayerDir      Direction
	PlayerScore    int
	PlayerAlive    bool
	PlayerPowerUps []PowerUpKind

	AIPresent bool
	AIAlive   bool
	AIBody    []Cell
	AIScore   int

	Food      Cell
	PowerUp   *PowerUp
	Obstacles []Cell
}

// Snapshot copies the current round for the rendering side. Returns
// false when no round has been started yet.
func (e *Engine) Snapshot() (RoundSnapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.round == nil {
		return RoundSnapshot{}, false
	}
	r := e.round

	snap := RoundSnapshot{
		Mode:        r.Mode,
		Level:       r.Level,
		State:       r.State,
		PlayerBody:  append([]Cell(nil), r.Player.Body...),
		PlayerDir:   r.Player.Direction,
		PlayerScore: r.Player.Score,
		PlayerAlive: r.Player.Alive,
		Food:        r.Food,
	}
	for kind := range r.Player.PowerUps {
		snap.PlayerPowerUps = append(snap.PlayerPowerUps, kind)
	}
	if r.AI != nil {
		snap.AIPresent = true
		snap.AIAlive = r.AI.Alive
		snap.AIBody = append([]Cell(nil), r.AI.Body...)
		snap.AIScore = r.AI.Score
	}
	if r.PowerUp != nil {
		pu := *r.PowerUp
		snap.PowerUp = &pu
	}
	for c := range r.Obstacles {
		snap.Obstacles = append(snap.Obstacles, c)
	}

	return snap, true
}
