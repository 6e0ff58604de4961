// Package book implements the opening book: a move-keyed prefix tree that the Searcher
// consults before falling back to search, plus PGN ingestion to build one from a corpus
// of games.
package book

import "github.com/negamax-engine/negamax/pkg/board"

// key identifies a move for trie purposes, ignoring the metadata (captured piece, score)
// that PseudoLegalMoves/LegalMoves attach but that do not affect move identity.
type key struct {
	From, To  board.Square
	Promotion board.Piece
}

func keyOf(m board.Move) key {
	return key{From: m.From, To: m.To, Promotion: m.Promotion}
}

// node is one position in the book: a terminal flag (this is the last move of some
// inserted line) and a child per move played from here.
type node struct {
	children map[key]*node
	moves    map[key]board.Move // preserves a concrete Move value per key for Suggest
	order    []key              // insertion order, for deterministic Suggest
	terminal bool
}

func newNode() *node {
	return &node{children: map[key]*node{}, moves: map[key]board.Move{}}
}

// Book is an opening book: a prefix tree of moves with a movable root that tracks the
// current position in the game. Not thread-safe.
type Book struct {
	root    *node
	current *node
}

// New returns an empty opening book.
func New() *Book {
	root := newNode()
	return &Book{root: root, current: root}
}

// Insert adds every move along line to the book, marking only the final position
// terminal. Shared prefixes with previously inserted lines are merged.
func (b *Book) Insert(line []board.Move) {
	cur := b.root
	for _, m := range line {
		k := keyOf(m)
		next, ok := cur.children[k]
		if !ok {
			next = newNode()
			cur.children[k] = next
			cur.moves[k] = m
			cur.order = append(cur.order, k)
		}
		cur = next
	}
	cur.terminal = true
}

// ContainsChild returns true iff the current root has an immediate child for m.
func (b *Book) ContainsChild(m board.Move) bool {
	_, ok := b.current.children[keyOf(m)]
	return ok
}

// Descend replaces the current root with its child for m, if any, and returns whether
// the descent succeeded. On failure, the current root is left unchanged.
func (b *Book) Descend(m board.Move) bool {
	next, ok := b.current.children[keyOf(m)]
	if !ok {
		return false
	}
	b.current = next
	return true
}

// IsExhausted returns true iff the current root is terminal or has no children, i.e.
// the book no longer has a suggestion for the game in progress.
func (b *Book) IsExhausted() bool {
	return b.current.terminal || len(b.current.children) == 0
}

// Suggest returns a child move of the current root, if any. The choice is
// deterministic: the first move inserted from this position.
func (b *Book) Suggest() (board.Move, bool) {
	if len(b.current.order) == 0 {
		return board.Move{}, false
	}
	return b.current.moves[b.current.order[0]], true
}

// Reset returns the current root to the book's root, for starting a new game.
func (b *Book) Reset() {
	b.current = b.root
}
