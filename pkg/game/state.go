package game

import "github.com/negamax-engine/negamax/pkg/board"

// State tracks the evaluator- and searcher-relevant metadata a Board does not: game
// phase, the last move played, and each side's castling history. It is updated once
// per ply alongside the board.
type State struct {
	Phase      Phase
	LastMove   board.Move
	HasLastMov bool

	HasCastled       [board.NumColors]bool
	HasCastlingRight [board.NumColors]bool
}

// NewState returns the initial game state for a fresh position.
func NewState(pos *board.Position) *State {
	return &State{
		Phase: Opening,
		HasCastlingRight: [board.NumColors]bool{
			board.White: pos.Castling().IsAllowed(board.WhiteKingSideCastle) || pos.Castling().IsAllowed(board.WhiteQueenSideCastle),
			board.Black: pos.Castling().IsAllowed(board.BlackKingSideCastle) || pos.Castling().IsAllowed(board.BlackQueenSideCastle),
		},
	}
}

// Update advances the state given the move just played and the resulting position.
// mover is the color that made the move.
func (s *State) Update(mover board.Color, m board.Move, pos *board.Position) {
	s.LastMove = m
	s.HasLastMov = true
	if m.IsCastle() {
		s.HasCastled[mover] = true
	}
	s.HasCastlingRight[board.White] = pos.Castling().IsAllowed(board.WhiteKingSideCastle) || pos.Castling().IsAllowed(board.WhiteQueenSideCastle)
	s.HasCastlingRight[board.Black] = pos.Castling().IsAllowed(board.BlackKingSideCastle) || pos.Castling().IsAllowed(board.BlackQueenSideCastle)
	s.Phase = NextPhase(s.Phase, pos)
}

// EnterMiddlegame transitions the phase from Opening to Middlegame, called once the
// opening book is exhausted.
func (s *State) EnterMiddlegame() {
	s.Phase = promoteToMiddlegame(s.Phase)
}
