package chess

import (
	"bytes"
	"fmt"
)

// Board is the piece placement part of a position, kept as one
// SquareSet per color and per role plus the derived occupancy and the
// set of promoted pieces. Board is a value; the mutating helpers
// operate on a copy.
type Board struct {
	byColor  [2]SquareSet
	byRole   [6]SquareSet
	occupied SquareSet
	promoted SquareSet
}

// NewBoard returns the starting piece placement of standard chess.
func NewBoard() Board {
	return Board{
		byColor: [2]SquareSet{0xFFFF, 0xFFFF_0000_0000_0000},
		byRole: [6]SquareSet{
			0x00FF_0000_0000_FF00, // pawns
			0x4200_0000_0000_0042, // knights
			0x2400_0000_0000_0024, // bishops
			0x8100_0000_0000_0081, // rooks
			0x0800_0000_0000_0008, // queens
			0x1000_0000_0000_0010, // kings
		},
		occupied: 0xFFFF_0000_0000_FFFF,
	}
}

// Occupied returns the set of all occupied squares.
func (b Board) Occupied() SquareSet { return b.occupied }

// Promoted returns the set of squares holding promoted pieces.
func (b Board) Promoted() SquareSet { return b.promoted }

// ByColor returns the set of squares occupied by the given color.
func (b Board) ByColor(c Color) SquareSet { return b.byColor[c] }

// ByRole returns the set of squares occupied by the given role.
func (b Board) ByRole(r Role) SquareSet { return b.byRole[r-1] }

// ByPiece returns the set of squares occupied by the given colored role.
func (b Board) ByPiece(c Color, r Role) SquareSet {
	return b.byColor[c] & b.byRole[r-1]
}

// Kings returns the set of squares occupied by kings of either color.
func (b Board) Kings() SquareSet { return b.ByRole(King) }

// KingOf returns the square of the given side's king, or NoSquare if
// that side has no king (or more than one).
func (b Board) KingOf(c Color) Sq {
	return b.ByPiece(c, King).SingleSquare()
}

// RoleAt returns the role of the piece on sq, or NoRole.
func (b Board) RoleAt(sq Sq) Role {
	bit := sq.Set()
	if b.occupied&bit == 0 {
		return NoRole
	}
	for r := Pawn; r <= King; r++ {
		if b.byRole[r-1]&bit != 0 {
			return r
		}
	}
	return NoRole
}

// ColorAt returns the color of the piece on sq; ok is false for an
// empty square.
func (b Board) ColorAt(sq Sq) (c Color, ok bool) {
	bit := sq.Set()
	switch {
	case b.byColor[White]&bit != 0:
		return White, true
	case b.byColor[Black]&bit != 0:
		return Black, true
	}
	return White, false
}

// PieceAt returns the piece on sq; ok is false for an empty square.
func (b Board) PieceAt(sq Sq) (p Piece, ok bool) {
	role := b.RoleAt(sq)
	if role == NoRole {
		return Piece{}, false
	}
	color, _ := b.ColorAt(sq)
	return Piece{color, role, b.promoted.Has(sq)}, true
}

// SetPieceAt returns a board with p placed on sq, replacing whatever
// was there.
func (b Board) SetPieceAt(sq Sq, p Piece) Board {
	b.remove(sq)
	b.put(sq, p)
	return b
}

// RemovePieceAt returns a board with sq emptied.
func (b Board) RemovePieceAt(sq Sq) Board {
	b.remove(sq)
	return b
}

// put places a piece on an empty square.
func (b *Board) put(sq Sq, p Piece) {
	bit := sq.Set()
	b.byColor[p.Color] |= bit
	b.byRole[p.Role-1] |= bit
	b.occupied |= bit
	if p.Promoted {
		b.promoted |= bit
	}
}

// remove clears a square, returning the piece that was there.
func (b *Board) remove(sq Sq) (p Piece, ok bool) {
	p, ok = b.PieceAt(sq)
	if !ok {
		return p, false
	}
	bit := sq.Set()
	b.byColor[p.Color] &^= bit
	b.byRole[p.Role-1] &^= bit
	b.occupied &^= bit
	b.promoted &^= bit
	return p, true
}

// attacksTo returns the pieces of the attacker color that attack sq on
// a board with the given occupancy. Computing the reverse attacks from
// sq saves a scan over the attacker's pieces.
func (b Board) attacksTo(sq Sq, attacker Color, occupied SquareSet) SquareSet {
	return b.byColor[attacker] & (RookAttacks(sq, occupied)&(b.ByRole(Rook)|b.ByRole(Queen)) |
		BishopAttacks(sq, occupied)&(b.ByRole(Bishop)|b.ByRole(Queen)) |
		KnightAttacks(sq)&b.ByRole(Knight) |
		KingAttacks(sq)&b.ByRole(King) |
		PawnAttacks(attacker.Other(), sq)&b.ByRole(Pawn))
}

// ParseBoardFen parses the piece placement field of a FEN string
// (without any pocket part). A piece letter followed by '~' is marked
// promoted.
func ParseBoardFen(field string) (Board, error) {
	var b Board
	boardError := func(msg string) (Board, error) {
		return Board{}, fmt.Errorf("%w: %s in %q", ErrInvalidBoard, msg, field)
	}
	file, rank := 0, 7
	for i := 0; i < len(field); i++ {
		switch c := rune(field[i]); c {
		case '/':
			if rank--; rank < 0 {
				return boardError("too many ranks")
			}
			file = 0
		case '1', '2', '3', '4', '5', '6', '7', '8':
			file += int(c - '0')
			if file > 8 {
				return boardError("rank overflow")
			}
		case '~':
			if file == 0 || i == 0 || field[i-1] == '/' {
				return boardError("misplaced promotion marker")
			}
			b.promoted = b.promoted.With(Square(file-1, rank))
		default:
			if file > 7 {
				return boardError("rank overflow")
			}
			role := roleFromLetter(c)
			if role == NoRole {
				return boardError("unexpected character")
			}
			color := Black
			if c >= 'A' && c <= 'Z' {
				color = White
			}
			b.put(Square(file, rank), Piece{Color: color, Role: role})
			file++
		}
	}
	if rank != 0 {
		return boardError("too few ranks")
	}
	return b, nil
}

// BoardFen returns the piece placement field of the FEN string.
func (b Board) BoardFen() string {
	var fen bytes.Buffer
	for rank := 7; ; rank-- {
		empty := 0
		for file := 0; file <= 7; file++ {
			p, ok := b.PieceAt(Square(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteRune(rune('0' + empty))
				empty = 0
			}
			fen.WriteRune(p.Letter())
			if p.Promoted {
				fen.WriteByte('~')
			}
		}
		if empty > 0 {
			fen.WriteRune(rune('0' + empty))
		}
		if rank == 0 {
			break
		}
		fen.WriteByte('/')
	}
	return fen.String()
}

// String renders the board as an 8x8 figurine diagram, rank 8 first.
func (b Board) String() string {
	var buf bytes.Buffer
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			p, ok := b.PieceAt(Square(file, rank))
			if !ok {
				buf.WriteByte('.')
			} else {
				buf.WriteRune(figurines[p.Color][p.Role])
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
