package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/battleship-cli/console"
	"github.com/wojtekolesinski/battleship-cli/models"
)

func (a *App) combatants() (attacker, defender *player) {
	if a.state == player2Turn {
		return a.players[1], a.players[0]
	}
	return a.players[0], a.players[1]
}

// playTurn resolves exactly one shot by the active player. Rejected input
// is retried within the turn.
func (a *App) playTurn() error {
	attacker, defender := a.combatants()

	a.console.Printf("\n%s's turn.\n", attacker.name)
	a.console.Println("Your board:")
	a.console.Print(attacker.board)
	a.console.Println("\nYour tracking board:")
	a.console.Print(attacker.tracking)
	a.console.Println("Your turn to shoot.")

	target, err := console.Ask(a.console, coordinatesPrompt, func(raw string) (models.Coord, error) {
		c, err := a.rules.ParseCoord(raw)
		if err != nil {
			return c, err
		}
		if attacker.tracking.At(c).Kind != models.Water {
			return c, fmt.Errorf("%w: %s", models.ErrDuplicateShot, a.rules.FormatCoord(c))
		}
		return c, nil
	}, a.retryMessage)
	if err != nil {
		return err
	}

	shot, err := defender.board.Fire(target)
	if err != nil {
		return fmt.Errorf("models.Board.Fire: %w", err)
	}
	if err := attacker.tracking.Mark(target, shot.Hit); err != nil {
		return fmt.Errorf("models.Board.Mark: %w", err)
	}
	attacker.shots++

	log.Debug("app [playTurn]", "game", a.id, "player", attacker.name,
		"target", a.rules.FormatCoord(target), "hit", shot.Hit, "ship", shot.Ship)

	if shot.Hit {
		attacker.hits++
		a.console.Println("It's a hit!")
		if defender.fleet.Decrement(shot.Ship) {
			a.console.Printf("You sunk the opponent's %s!\n", shot.Ship)
		}
	} else {
		a.console.Println("It's a miss.")
	}

	if defender.fleet.IsDestroyed() {
		a.state = gameOver
		a.winner = attacker
		a.console.Printf("%s wins! You sank all the opponent's ships!\n", attacker.name)
		return nil
	}

	if a.state == player1Turn {
		a.state = player2Turn
	} else {
		a.state = player1Turn
	}
	return nil
}
