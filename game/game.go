package game

import (
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/google/uuid"
)

// Input is a backend-neutral input event
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
)

// State of the game loop. Terminated is absorbing.
type State int

const (
	Running State = iota
	Terminated
)

// Cause explains why a game terminated
type Cause int

const (
	CauseNone Cause = iota
	CauseQuit
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseQuit:
		return "quit"
	case CauseWall:
		return "wall collision"
	case CauseSelf:
		return "self collision"
	default:
		return "none"
	}
}

type Game struct {
	Session string
	Grid    types.Grid

	steps        int
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	state        State
	cause        Cause
}

// NewGame builds a running game from cfg. rng may be nil.
func NewGame(cfg types.Config, rng manager.Intner) (*Game, error) {
	snake, err := entity.NewSnake(cfg.Start, entity.Up)
	if err != nil {
		return nil, err
	}
	return &Game{
		Session:      uuid.New().String(),
		Grid:         cfg.Grid,
		snake:        snake,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		foodMgr:      manager.NewFoodManager(cfg.Grid, cfg.Food, rng),
		state:        Running,
	}, nil
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Cause() Cause {
	return g.cause
}

// Steps is the number of simulated ticks
func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Running() bool {
	return g.state == Running
}

// HandleInput applies one input event. Arrow inputs overwrite the heading
// without any check against the current one.
func (g *Game) HandleInput(in Input) {
	if g.state != Running {
		return
	}
	switch in {
	case InputQuit:
		g.terminate(CauseQuit)
	case InputUp:
		g.snake.SetDirection(entity.Up)
	case InputDown:
		g.snake.SetDirection(entity.Down)
	case InputLeft:
		g.snake.SetDirection(entity.Left)
	case InputRight:
		g.snake.SetDirection(entity.Right)
	}
}

// Update advances the simulation by one tick and reports whether the game is
// still running afterwards.
func (g *Game) Update() bool {
	if g.state != Running {
		return false
	}

	g.steps++

	// growth is decided before moving so the tail stays in place for the
	// self check
	newHead := g.snake.NextHead()
	eats := g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood())
	if eats {
		g.snake.Grow(newHead)
	} else {
		g.snake.Move(newHead)
	}

	switch g.collisionMgr.CheckCollision(g.snake) {
	case manager.WallCollision:
		g.terminate(CauseWall)
		return false
	case manager.SelfCollision:
		g.terminate(CauseSelf)
		return false
	}

	if eats {
		g.foodMgr.Relocate()
	}
	return true
}

func (g *Game) terminate(cause Cause) {
	g.state = Terminated
	g.cause = cause
}

// Frame is what a renderer needs to draw one tick
type Frame struct {
	Grid  types.Grid
	Snake []types.Point // head first
	Food  types.Point
}

func (g *Game) Frame() Frame {
	return Frame{
		Grid:  g.Grid,
		Snake: g.snake.Body.Slice(),
		Food:  g.foodMgr.GetFood(),
	}
}

// Snapshot captures the game state for tests and the end-of-session log line.
type Snapshot struct {
	Steps   int
	Length  int
	Head    types.Point
	Heading entity.Heading
	Food    types.Point
	State   State
	Cause   Cause
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Steps:   g.steps,
		Length:  g.snake.Len(),
		Head:    g.snake.GetHead(),
		Heading: g.snake.Direction,
		Food:    g.foodMgr.GetFood(),
		State:   g.state,
		Cause:   g.cause,
	}
}
