package game

import (
	"fmt"
	"log"
)

// Summary is the one-line report written when a session ends
func (g *Game) Summary() string {
	s := g.Snapshot()
	return fmt.Sprintf("session %s ended: %s after %d ticks, length %d", g.Session, s.Cause, s.Steps, s.Length)
}

func LogSummary(g *Game) {
	log.Print(g.Summary())
}
