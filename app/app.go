package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wojtekolesinski/battleship-cli/console"
	"github.com/wojtekolesinski/battleship-cli/models"
)

type turnState int

const (
	player1Turn turnState = iota
	player2Turn
	gameOver
)

type player struct {
	name     string
	board    *models.Board
	tracking *models.Board
	fleet    *models.Fleet
	shots    int
	hits     int
}

func newPlayer(name string, rules models.Rules, sizes []int) *player {
	return &player{
		name:     name,
		board:    models.NewBoard(rules),
		tracking: models.NewBoard(rules),
		fleet:    models.NewFleet(sizes),
	}
}

type App struct {
	console *console.Console
	rules   models.Rules
	id      string
	players [2]*player
	state   turnState
	winner  *player
}

func New(c *console.Console, rules models.Rules) *App {
	return &App{
		console: c,
		rules:   rules,
		id:      uuid.NewString()[:8],
	}
}

// Run plays one full game. It returns nil once a player has won and an
// error wrapping io.EOF if input ends first.
func (a *App) Run() error {
	if err := a.rules.Validate(); err != nil {
		return fmt.Errorf("models.Rules.Validate: %w", err)
	}
	log.Debug("app [Run]", "game", a.id, "boardSize", a.rules.BoardSize)

	a.renderIntro()

	if err := a.setup(); err != nil {
		return fmt.Errorf("app.setup: %w", err)
	}

	for a.state != gameOver {
		if err := a.playTurn(); err != nil {
			return fmt.Errorf("app.playTurn: %w", err)
		}
	}

	a.renderSummary()
	log.Debug("app [Run]", "game", a.id, "winner", a.winner.name)
	return nil
}

// ID is the short id attached to every log line of this game.
func (a *App) ID() string {
	return a.id
}

// Winner returns the name of the winning player, or "" while undecided.
func (a *App) Winner() string {
	if a.winner == nil {
		return ""
	}
	return a.winner.name
}
