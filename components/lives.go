package components

import "github.com/yohamta/donburi"

// LivesData counts the attempts left in a run. It sits on the game entity,
// not the player, so it survives respawns.
type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()

// Reset refills the counter for a new run.
func (l *LivesData) Reset(n int) {
	l.MaxLives = n
	l.Lives = n
}

// Lose takes one life and reports whether any are left. The count never
// drops below zero.
func (l *LivesData) Lose() bool {
	if l.Lives > 0 {
		l.Lives--
	}
	return l.Lives > 0
}
