package app

import "strconv"

func (p *player) accuracy() float64 {
	if p.shots == 0 {
		return 0
	}
	return float64(p.hits) / float64(p.shots) * 100
}

// renderSummary prints the shooting stats of both players.
func (a *App) renderSummary() {
	a.console.Println()
	a.console.Printf("| %-10s | %5s | %4s | %8s |\n", "PLAYER", "SHOTS", "HITS", "ACCURACY")
	for _, p := range a.players {
		a.console.Printf("| %-10s | %5s | %4s | %7.2f%% |\n",
			p.name,
			strconv.Itoa(p.shots),
			strconv.Itoa(p.hits),
			p.accuracy(),
		)
	}
	a.console.Println()
}
