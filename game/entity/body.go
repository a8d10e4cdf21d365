package entity

import "snake-game/game/types"

// Body is a ring buffer of cells, index 0 is the head.
type Body struct {
	cells []types.Point
	start int
	n     int
}

// NewBody builds a body from cells given head first
func NewBody(cells []types.Point) *Body {
	capacity := 8
	for capacity < len(cells) {
		capacity *= 2
	}
	b := &Body{cells: make([]types.Point, capacity)}
	copy(b.cells, cells)
	b.n = len(cells)
	return b
}

// Len returns the number of cells
func (b *Body) Len() int {
	return b.n
}

// At returns the i-th cell counting from the head
func (b *Body) At(i int) types.Point {
	if i < 0 || i >= b.n {
		panic("entity: body index out of range")
	}
	return b.cells[(b.start+i)%len(b.cells)]
}

// PushFront inserts p as the new head
func (b *Body) PushFront(p types.Point) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.start = (b.start - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.start] = p
	b.n++
}

// PushBack appends p after the tail
func (b *Body) PushBack(p types.Point) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.cells[(b.start+b.n)%len(b.cells)] = p
	b.n++
}

// PopBack removes and returns the tail
func (b *Body) PopBack() types.Point {
	if b.n == 0 {
		panic("entity: pop from empty body")
	}
	b.n--
	return b.cells[(b.start+b.n)%len(b.cells)]
}

// Slice copies the cells out, head first
func (b *Body) Slice() []types.Point {
	out := make([]types.Point, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

func (b *Body) grow() {
	cells := make([]types.Point, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		cells[i] = b.At(i)
	}
	b.cells = cells
	b.start = 0
}
