package cube

import (
	"fmt"
	"strings"
)

// Turn is the number of clockwise quarter turns a move applies.
type Turn uint8

const (
	CW     Turn = 1 // Clockwise (90 degrees)
	Double Turn = 2 // Half turn (180 degrees)
	CCW    Turn = 3 // Counter-clockwise (three quarter turns)
)

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Quarter turns, 1 to 3
}

// AllMoves lists the 18 face turns grouped by face.
var AllMoves = func() []Move {
	moves := make([]Move, 0, NumFaces*3)
	for _, f := range Faces {
		for t := CW; t <= CCW; t++ {
			moves = append(moves, Move{Face: f, Turn: t})
		}
	}
	return moves
}()

// Valid reports whether m names a real face and a turn of 1 to 3.
func (m Move) Valid() bool {
	return m.Face >= U && m.Face <= L && m.Turn >= CW && m.Turn <= CCW
}

// String returns the standard notation for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) String() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	case CW:
	default:
		suffix = fmt.Sprintf("(%d)", m.Turn)
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = (4 - m.Turn) % 4
	return inv
}

// Merge combines two same-face moves into one.
// ok is false when the faces differ; cancel is true when the turns sum to a
// full rotation.
func (m Move) Merge(other Move) (merged Move, cancel, ok bool) {
	if m.Face != other.Face {
		return Move{}, false, false
	}
	t := (m.Turn + other.Turn) % 4
	if t == 0 {
		return Move{}, true, true
	}
	return Move{Face: m.Face, Turn: t}, false, true
}

// Simplify collapses adjacent same-face moves, repeatedly, so a cancelled
// pair can expose a new mergeable neighbour.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 {
			merged, cancel, ok := out[n-1].Merge(m)
			if ok {
				out = out[:n-1]
				if !cancel {
					out = append(out, merged)
				}
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}

	return strings.Join(parts, " ")
}
