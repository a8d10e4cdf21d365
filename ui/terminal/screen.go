// Package terminal renders the game on a tcell screen, two columns per grid
// cell so tiles come out roughly square.
package terminal

import (
	"errors"

	"snake-game/game"
	"snake-game/game/types"

	"github.com/gdamore/tcell/v2"
)

// ErrScreenClosed is returned by Render after Close
var ErrScreenClosed = errors.New("terminal: screen closed")

const cellColumns = 2

type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	closed bool
}

// Open initializes the controlling terminal
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return New(s), nil
}

// New wraps an initialized tcell screen and starts reading its events.
func New(s tcell.Screen) *Screen {
	s.HideCursor()
	s.Clear()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	return &Screen{screen: s, events: events}
}

func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// Poll drains whatever events arrived since the last tick
func (s *Screen) Poll() []game.Input {
	var inputs []game.Input
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(inputs, game.InputQuit)
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				s.screen.Sync()
				continue
			}
			if in := inputForEvent(ev); in != game.InputNone {
				inputs = append(inputs, in)
			}
		default:
			return inputs
		}
	}
}

func inputForEvent(ev tcell.Event) game.Input {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.InputNone
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.InputQuit
	case tcell.KeyUp:
		return game.InputUp
	case tcell.KeyDown:
		return game.InputDown
	case tcell.KeyLeft:
		return game.InputLeft
	case tcell.KeyRight:
		return game.InputRight
	default:
		return game.InputNone
	}
}

func style(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (s *Screen) fill(p types.Point, st tcell.Style) {
	for dx := 0; dx < cellColumns; dx++ {
		s.screen.SetContent(p.X*cellColumns+dx, p.Y, ' ', nil, st)
	}
}

func (s *Screen) Render(f game.Frame) error {
	if s.closed {
		return ErrScreenClosed
	}
	s.screen.Fill(' ', style(types.Background))

	snake := style(types.SnakeColor)
	for _, p := range f.Snake {
		s.fill(p, snake)
	}
	s.fill(f.Food, style(types.FoodColor))

	s.screen.Show()
	return nil
}
