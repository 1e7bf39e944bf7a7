package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/wojtekolesinski/battleship-cli/app"
	"github.com/wojtekolesinski/battleship-cli/console"
	"github.com/wojtekolesinski/battleship-cli/models"
)

const logLevel = log.WarnLevel

func main() {
	log.SetLevel(logLevel)

	c := console.New(os.Stdin, os.Stdout)
	a := app.New(c, models.DefaultRules())

	if err := a.Run(); err != nil {
		if errors.Is(err, io.EOF) {
			log.Warn("main", "game", a.ID(), "msg", "input closed before the game ended")
			return
		}
		log.Fatal("main", "game", a.ID(), "err", err)
	}
}
