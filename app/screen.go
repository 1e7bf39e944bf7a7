package app

import "fmt"

const wrapWidth = 60

func (a *App) renderIntro() {
	a.console.Println("Welcome to Battleship!")

	last := a.rules.Columns[len(a.rules.Columns)-1:]
	a.console.Paragraph(fmt.Sprintf(
		"Each player hides a fleet on a %dx%d grid with columns A-%s and rows 1-%d. "+
			"Place a ship by entering its first cell, such as A5, then H to run it right "+
			"or V to run it down. Players then fire at each other in turn. Your board "+
			"shows your own ships by name; your tracking board shows X for a hit and O "+
			"for a miss. Sink every enemy ship to win. Both players share this screen, "+
			"so look away while the other one plays.",
		a.rules.BoardSize, a.rules.BoardSize, last, a.rules.BoardSize), wrapWidth)
	a.console.Println()
}
