package engine

import (
	"fmt"
	"strings"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
	"github.com/negamax-engine/negamax/pkg/book"
)

// Line represents an opening line in pure coordinate notation: e2e4 d7d5.
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// NewCoordinateBook builds an opening book from a set of lines given in pure coordinate
// notation, resolving each half-move against a running position starting from the
// initial one. This is an alternative to book.ParseLines for sources that give lines as
// coordinate moves rather than SAN.
func NewCoordinateBook(lines []Line) (*book.Book, error) {
	b := book.New()
	for _, line := range lines {
		pos, turn, _, _, err := fen.Decode(fen.Initial)
		if err != nil {
			return nil, err
		}

		resolved := make([]board.Move, 0, len(line))
		for _, str := range line {
			candidate, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("invalid line %v: %w", line, err)
			}

			found := false
			for _, m := range pos.PseudoLegalMoves(turn) {
				if !candidate.Equals(m) {
					continue
				}

				next, ok := pos.Move(m)
				if !ok {
					return nil, fmt.Errorf("invalid line %v: move %v not legal", line, m)
				}

				resolved = append(resolved, m)
				pos, turn = next, turn.Opponent()
				found = true
				break
			}
			if !found {
				return nil, fmt.Errorf("invalid line %v: move %v not found", line, candidate)
			}
		}
		b.Insert(resolved)
	}
	return b, nil
}
