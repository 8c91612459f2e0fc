package island

import (
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/islands/grid"
)

// workList holds the cells of the current island that still have to be expanded.
// It is empty between islands.
type workList interface {
	push(c grid.Cell)
	pop() grid.Cell
	empty() bool
}

func newWorkList(w WorkList) workList {
	if w == BreadthFirst {
		return &fifo{q: queue.New[grid.Cell]()}
	}

	return &lifo{s: stack.New[grid.Cell]()}
}

// lifo expands the newest cell first, giving a depth-first fill.
type lifo struct {
	s *stack.Stack[grid.Cell]
}

func (l *lifo) push(c grid.Cell) { l.s.Push(c) }
func (l *lifo) pop() grid.Cell   { return l.s.Pop() }
func (l *lifo) empty() bool      { return l.s.Size() == 0 }

// fifo expands cells in discovery order, giving a breadth-first fill.
type fifo struct {
	q *queue.Queue[grid.Cell]
}

func (f *fifo) push(c grid.Cell) { f.q.Enqueue(c) }
func (f *fifo) pop() grid.Cell   { return f.q.Dequeue() }
func (f *fifo) empty() bool      { return f.q.Empty() }
