package book

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/negamax-engine/negamax/pkg/board"
	"github.com/negamax-engine/negamax/pkg/board/fen"
)

// ParseLines tokenizes a PGN-style movetext block (one line of SAN moves per opening
// line, move-number markers like "1." or "1..." stripped) and resolves each half-move
// against a running position starting from the initial one, producing the sequence of
// Move values Insert expects.
func ParseLines(lines []string) ([][]board.Move, error) {
	ret := make([][]board.Move, 0, len(lines))
	for _, line := range lines {
		moves, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("invalid line %q: %w", line, err)
		}
		ret = append(ret, moves)
	}
	return ret, nil
}

// ParseLine resolves one SAN movetext line against the initial position.
func ParseLine(line string) ([]board.Move, error) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	if err != nil {
		return nil, err
	}

	var ret []board.Move
	for _, tok := range tokenize(line) {
		m, next, err := resolveSAN(pos, turn, tok)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", tok, err)
		}
		ret = append(ret, m)
		pos, turn = next, turn.Opponent()
	}
	return ret, nil
}

// tokenize splits movetext into SAN tokens, dropping move-number markers such as "1.",
// "12...", and result markers like "1-0" or "*".
func tokenize(line string) []string {
	var ret []string
	for _, f := range strings.Fields(line) {
		f = strings.TrimRight(f, ".")
		if f == "" || isMoveNumber(f) || isResultMarker(f) {
			continue
		}
		ret = append(ret, f)
	}
	return ret
}

func isMoveNumber(tok string) bool {
	_, err := strconv.Atoi(tok)
	return err == nil
}

func isResultMarker(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}

// resolveSAN finds the legal move in pos matching the SAN token san and returns it along
// with the resulting position.
func resolveSAN(pos *board.Position, turn board.Color, san string) (board.Move, *board.Position, error) {
	san = strings.TrimRight(san, "+#!?")

	legal := pos.LegalMoves(turn)

	if san == "O-O" || san == "0-0" {
		for _, m := range legal {
			if m.Type == board.KingSideCastle {
				next, ok := pos.Move(m)
				if !ok {
					break
				}
				return m, next, nil
			}
		}
		return board.Move{}, nil, fmt.Errorf("no legal king-side castle")
	}
	if san == "O-O-O" || san == "0-0-0" {
		for _, m := range legal {
			if m.Type == board.QueenSideCastle {
				next, ok := pos.Move(m)
				if !ok {
					break
				}
				return m, next, nil
			}
		}
		return board.Move{}, nil, fmt.Errorf("no legal queen-side castle")
	}

	piece := board.Pawn
	rest := san
	if san[0] >= 'A' && san[0] <= 'Z' {
		r, ok := board.ParsePiece(rune(san[0]))
		if !ok {
			return board.Move{}, nil, fmt.Errorf("invalid piece letter in %q", san)
		}
		piece = r
		rest = san[1:]
	}

	var promotion board.Piece
	if i := strings.IndexByte(rest, '='); i >= 0 {
		p, ok := board.ParsePiece(rune(rest[i+1]))
		if !ok {
			return board.Move{}, nil, fmt.Errorf("invalid promotion in %q", san)
		}
		promotion = p
		rest = rest[:i]
	}

	rest = strings.ReplaceAll(rest, "x", "")
	if len(rest) < 2 {
		return board.Move{}, nil, fmt.Errorf("malformed move %q", san)
	}

	toStr := rest[len(rest)-2:]
	to, err := board.ParseSquareStr(toStr)
	if err != nil {
		return board.Move{}, nil, fmt.Errorf("invalid destination in %q: %w", san, err)
	}
	disambig := rest[:len(rest)-2]

	var candidates []board.Move
	for _, m := range legal {
		if m.Piece != piece || m.To != to {
			continue
		}
		if promotion != board.NoPiece && m.Promotion != promotion {
			continue
		}
		if !matchesDisambiguation(m.From, disambig) {
			continue
		}
		candidates = append(candidates, m)
	}

	if len(candidates) != 1 {
		return board.Move{}, nil, fmt.Errorf("ambiguous or illegal move %q (%d candidates)", san, len(candidates))
	}

	next, ok := pos.Move(candidates[0])
	if !ok {
		return board.Move{}, nil, fmt.Errorf("move %q left mover in check", san)
	}
	return candidates[0], next, nil
}

// matchesDisambiguation returns true iff from satisfies the (possibly empty) SAN
// disambiguation fragment: a file letter, a rank digit, or both.
func matchesDisambiguation(from board.Square, disambig string) bool {
	for _, r := range disambig {
		switch {
		case r >= 'a' && r <= 'h':
			if f, ok := board.ParseFile(r); !ok || from.File() != f {
				return false
			}
		case r >= '1' && r <= '8':
			if rk, ok := board.ParseRank(r); !ok || from.Rank() != rk {
				return false
			}
		}
	}
	return true
}
