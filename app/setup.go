package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/battleship-cli/console"
	"github.com/wojtekolesinski/battleship-cli/models"
)

func (a *App) setup() error {
	prompt := fmt.Sprintf("Enter number of ships (%d-%d): ", a.rules.MinFleet(), a.rules.MaxFleet())
	n, err := console.Ask(a.console, prompt, a.rules.ParseFleetSize, a.retryMessage)
	if err != nil {
		return err
	}

	sizes, err := a.rules.FleetSizes(n)
	if err != nil {
		return fmt.Errorf("models.Rules.FleetSizes: %w", err)
	}
	log.Debug("app [setup]", "game", a.id, "fleet", n, "sizes", sizes)

	for i := range a.players {
		a.players[i] = newPlayer(fmt.Sprintf("Player %d", i+1), a.rules, sizes)
	}

	for _, p := range a.players {
		a.console.Printf("%s, place your ships.\n", p.name)
		if err := a.placeShips(p, sizes); err != nil {
			return err
		}
	}

	a.state = player1Turn
	return nil
}

func (a *App) placeShips(p *player, sizes []int) error {
	for i, size := range sizes {
		if err := a.placeShip(p, models.NewShipID(i+1), size); err != nil {
			return err
		}
	}
	return nil
}

// placeShip asks until the ship lands on a legal spot. A bad orientation
// or an illegal spot restarts from coordinate entry.
func (a *App) placeShip(p *player, id models.ShipID, length int) error {
	for {
		a.console.Println("\nCurrent board:")
		a.console.Print(p.board)
		a.console.Printf("Placing ship of size %d.\n", length)

		at, err := console.Ask(a.console, coordinatesPrompt, a.rules.ParseCoord, a.retryMessage)
		if err != nil {
			return err
		}

		raw, err := a.console.ReadLine(orientationPrompt)
		if err != nil {
			return err
		}
		orientation, err := models.ParseOrientation(raw)
		if err != nil {
			a.console.Println(a.retryMessage(err))
			continue
		}

		if err := p.board.PlaceShip(id, at, length, orientation); err != nil {
			log.Debug("app [placeShip]", "game", a.id, "player", p.name, "ship", id, "err", err)
			a.console.Println(a.retryMessage(err))
			continue
		}

		log.Debug("app [placeShip]", "game", a.id, "player", p.name, "ship", id,
			"at", a.rules.FormatCoord(at), "orientation", orientation)
		return nil
	}
}
