// Package loop drives a game through Input, Simulation, Render and Sleep
// until it terminates.
package loop

import (
	"context"
	"fmt"
	"time"

	"snake-game/game"
)

// Backend is a window or screen the loop can read input from and draw on.
type Backend interface {
	// Poll drains pending input without blocking.
	Poll() []game.Input
	// Render draws one frame and presents it.
	Render(f game.Frame) error
}

// Pacer sleeps a fixed interval after each tick, so the real rate is a bit
// below 1/Interval when a tick does real work.
type Pacer struct {
	Interval time.Duration

	sleep func(ctx context.Context, d time.Duration)
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		Interval: interval,
		sleep:    sleepContext,
	}
}

// Wait blocks for one interval or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) {
	p.sleep(ctx, p.Interval)
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Run executes ticks until g terminates or ctx is cancelled. A cancelled
// context counts as a quit. Render errors abort the loop.
func Run(ctx context.Context, b Backend, g *game.Game, p *Pacer) error {
	for g.Running() {
		if ctx.Err() != nil {
			g.HandleInput(game.InputQuit)
			break
		}

		for _, in := range b.Poll() {
			g.HandleInput(in)
		}
		if !g.Running() {
			break
		}

		if !g.Update() {
			break
		}

		if err := b.Render(g.Frame()); err != nil {
			return fmt.Errorf("render tick %d: %w", g.Steps(), err)
		}

		p.Wait(ctx)
	}
	return nil
}
