package weiqi

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("weiqi: illegal move")
	ErrGameStarted   = errors.New("weiqi: game already started")
	ErrNodeNotFound  = errors.New("weiqi: node not found")
	ErrTooManyStones = errors.New("weiqi: not enough handicap points")
)

// Node is one position of a game. Prev is the index of the node it was
// reached from, -1 for the root.
type Node[T comparable] struct {
	State *GameState[T]
	Prev  int
	Move  Move[T]
}

// History is an append-only arena of nodes. Every node is reached from an
// earlier one, so the nodes form a tree rooted at index 0; a game without
// variations is a single chain.
type History[T comparable] struct {
	rules   Rules
	nodes   []Node[T]
	current int
}

func NewHistory[T comparable](root *GameState[T], rules Rules) *History[T] {
	return &History[T]{
		rules: rules,
		nodes: []Node[T]{{State: root, Prev: -1}},
	}
}

func (h *History[T]) Rules() Rules { return h.rules }

func (h *History[T]) Len() int { return len(h.nodes) }

func (h *History[T]) Current() int { return h.current }

func (h *History[T]) CurrentState() *GameState[T] { return h.nodes[h.current].State }

func (h *History[T]) Node(i int) (Node[T], error) {
	if i < 0 || i >= len(h.nodes) {
		return Node[T]{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	return h.nodes[i], nil
}

// Checkout makes i the node PlayCurrent continues from.
func (h *History[T]) Checkout(i int) error {
	if _, err := h.Node(i); err != nil {
		return err
	}
	h.current = i
	return nil
}

// Ancestors lists i and every node before it, newest first.
func (h *History[T]) Ancestors(i int) (path []int) {
	for ; i >= 0; i = h.nodes[i].Prev {
		path = append(path, i)
	}
	return
}

// Line returns the moves leading from the root to i.
func (h *History[T]) Line(i int) []Move[T] {
	path := h.Ancestors(i)
	moves := make([]Move[T], 0, len(path)-1)
	for n := len(path) - 2; n >= 0; n-- {
		moves = append(moves, h.nodes[path[n]].Move)
	}
	return moves
}

// Repeats reports whether state occurred at i or before it. The side to
// move counts unless the rules ask for positional superko.
func (h *History[T]) Repeats(i int, state *GameState[T]) bool {
	same := (*GameState[T]).Equal
	if h.rules.PositionalSuperko {
		same = (*GameState[T]).SamePosition
	}

	for _, n := range h.Ancestors(i) {
		if same(h.nodes[n].State, state) {
			return true
		}
	}
	return false
}

// ConsecutivePasses counts the passes that led to i without a stone in
// between.
func (h *History[T]) ConsecutivePasses(i int) (passes int) {
	for ; i > 0 && h.nodes[i].Move.Kind == Pass; i = h.nodes[i].Prev {
		passes++
	}
	return
}

func (h *History[T]) successor(at int, m Move[T]) (*GameState[T], bool) {
	state := h.nodes[at].State
	if !state.LegalMove(m, h.rules) {
		return nil, false
	}

	next := state.Apply(m)
	if h.rules.Superko && m.Kind == Place && h.Repeats(at, next) {
		return nil, false
	}
	return next, true
}

// LegalMove judges m played from node at, including superko when the rules
// ask for it.
func (h *History[T]) LegalMove(at int, m Move[T]) bool {
	if at < 0 || at >= len(h.nodes) {
		return false
	}
	_, ok := h.successor(at, m)
	return ok
}

// Play appends the node reached by m from at and makes it current.
// An illegal move leaves the history untouched.
func (h *History[T]) Play(at int, m Move[T]) (int, error) {
	if _, err := h.Node(at); err != nil {
		return -1, err
	}

	next, ok := h.successor(at, m)
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	h.nodes = append(h.nodes, Node[T]{State: next, Prev: at, Move: m})
	h.current = len(h.nodes) - 1
	return h.current, nil
}

func (h *History[T]) PlayCurrent(m Move[T]) error {
	_, err := h.Play(h.current, m)
	return err
}

// Handicap puts black stones on points before the first move and gives
// white the turn.
func (h *History[T]) Handicap(points []T) error {
	if len(h.nodes) > 1 {
		return ErrGameStarted
	}

	if len(points) == 0 {
		return nil
	}

	// The root only changes once every point has been placed.
	root := h.nodes[0].State.Clone()
	for _, p := range points {
		if !root.Free().Get(p) {
			return fmt.Errorf("%w: handicap on occupied point %v", ErrIllegalMove, p)
		}
		root.Black.PlaceStone(p)
	}

	root.ToMove = White
	h.nodes[0].State = root
	return nil
}

// FixedHandicap places n stones on the board's star points.
func (h *History[T]) FixedHandicap(n int) error {
	points, err := h.nodes[0].State.Board().HoshiPoints()
	if err != nil {
		return err
	}

	if n > len(points) {
		return fmt.Errorf("%w: %d > %d", ErrTooManyStones, n, len(points))
	}
	return h.Handicap(points[:n])
}
