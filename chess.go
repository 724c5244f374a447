// Package chess implements the rules of chess and a family of variants
// (Antichess, Atomic, Crazyhouse, King of the Hill, Three-check and
// Chess960 castling) on bitboards, together with FEN and SAN notation.
package chess

// Color is the side of a player, White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// backrank returns the first rank from the color's point of view.
func (c Color) backrank() int {
	if c == White {
		return Rank1
	}
	return Rank8
}

// Role is the kind of a piece regardless of its color.
type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var roleLetters = [...]rune{'?', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase FEN letter of the role.
func (r Role) Letter() rune { return roleLetters[r] }

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "?"
}

// roleFromLetter maps a FEN piece letter (either case) to its role.
func roleFromLetter(c rune) Role {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoRole
}

// Piece is a colored piece. Promoted marks pieces that arose by pawn
// promotion; it matters only for Crazyhouse, where a captured promoted
// piece re-enters the capturer's pocket as a pawn.
type Piece struct {
	Color    Color
	Role     Role
	Promoted bool
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() rune {
	c := roleLetters[p.Role]
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// Figurines indexed by role, white then black, for pretty-printing.
var figurines = [2][7]rune{
	{'.', 0x2659, 0x2658, 0x2657, 0x2656, 0x2655, 0x2654},
	{'.', 0x265F, 0x265E, 0x265D, 0x265C, 0x265B, 0x265A},
}

// Squares

// Sq is a square of the board in little-endian rank-file numbering:
// a1 = 0, b1 = 1, ..., h8 = 63.
type Sq int8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Sq = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
	NoSquare Sq = -1
)

// Files
const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Ranks
const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Square returns the square with the given file (0-7) and rank (0-7).
func Square(file, rank int) Sq { return Sq(rank*8 + file) }

// File returns the square's file (0-7).
func (sq Sq) File() int { return int(sq) & 7 }

// Rank returns the square's rank (0-7).
func (sq Sq) Rank() int { return int(sq) >> 3 }

// RelativeRank returns the square's rank relative to the given player (0-7).
func (sq Sq) RelativeRank(color Color) int {
	if color == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// String returns the algebraic notation of the square (a1, e5, ...).
func (sq Sq) String() string {
	if sq < A1 || sq > H8 {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

func squareFromString(s string) Sq {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return Square(int(s[0]-'a'), int(s[1]-'1'))
}

// Wings (castling sides)

// Wing is a side of the board to castle on.
type Wing uint8

const (
	QueenSide Wing = iota
	KingSide
)

func (w Wing) String() string {
	if w == KingSide {
		return "king side"
	}
	return "queen side"
}

// kingCastleTo returns the king's destination square for castling.
func (w Wing) kingCastleTo(c Color) Sq {
	file := FileC
	if w == KingSide {
		file = FileG
	}
	return Square(file, c.backrank())
}

// rookCastleTo returns the rook's destination square for castling.
func (w Wing) rookCastleTo(c Color) Sq {
	file := FileD
	if w == KingSide {
		file = FileF
	}
	return Square(file, c.backrank())
}

// Outcome

// Outcome is the result of a finished game in PGN notation, or "*" for a
// game that is not over.
type Outcome string

const (
	NoOutcome Outcome = "*"
	WhiteWon  Outcome = "1-0"
	BlackWon  Outcome = "0-1"
	Drawn     Outcome = "1/2-1/2"
)

// Winner returns the winning color. ok is false for a draw or an
// unfinished game.
func (o Outcome) Winner() (winner Color, ok bool) {
	switch o {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	}
	return White, false
}

// wonBy returns the outcome in which the given color is the winner.
func wonBy(c Color) Outcome {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}
