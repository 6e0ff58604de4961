package board

import "strings"

// FormatMoves joins moves into a space-separated string using fn to render each move.
func FormatMoves(moves []Move, fn func(Move) string) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fn(m)
	}
	return strings.Join(parts, " ")
}

// PrintMoves renders moves in "from-to" form, space-separated. Mainly useful for test
// output and human-readable logging.
func PrintMoves(moves []Move) string {
	return FormatMoves(moves, func(m Move) string {
		return m.From.String() + "-" + m.To.String()
	})
}
