package chess

// Precomputed attack tables. Leaper attacks are walked from fixed delta
// sets; sliding attacks are computed on demand with the hyperbola
// quintessence technique over precomputed line masks, so no magic
// number tables are needed.
var (
	kingAttacksTable   [64]SquareSet
	knightAttacksTable [64]SquareSet
	pawnAttacksTable   [2][64]SquareSet

	fileRange     [64]SquareSet // the square's file minus the square
	rankRange     [64]SquareSet // the square's rank minus the square
	diagRange     [64]SquareSet // the square's a1-h8 diagonal minus the square
	antiDiagRange [64]SquareSet // the square's h1-a8 diagonal minus the square

	betweenTable [64][64]SquareSet // squares strictly between two squares
	lineTable    [64][64]SquareSet // the full line through two squares
)

const (
	mainDiag SquareSet = 0x8040_2010_0804_0201 // a1-h8
	antiDiag SquareSet = 0x0102_0408_1020_4080 // h1-a8
)

// leaperMask walks the deltas from sq, discarding targets that leave
// the board or wrap around an edge (file distance greater than 2).
func leaperMask(sq Sq, deltas []int) SquareSet {
	var s SquareSet
	for _, d := range deltas {
		to := sq + Sq(d)
		if to < A1 || to > H8 {
			continue
		}
		if df := to.File() - sq.File(); df < -2 || df > 2 {
			continue
		}
		s = s.With(to)
	}
	return s
}

// shiftedDiag returns a diagonal mask shifted by n ranks; negative n
// shifts towards rank 1.
func shiftedDiag(d SquareSet, n int) SquareSet {
	if n >= 0 {
		return d.Shl(uint(8 * n))
	}
	return d.Shr(uint(-8 * n))
}

func init() {
	kingDeltas := []int{-9, -8, -7, -1, 1, 7, 8, 9}
	knightDeltas := []int{-17, -15, -10, -6, 6, 10, 15, 17}
	whitePawnDeltas := []int{7, 9}
	blackPawnDeltas := []int{-7, -9}

	for sq := A1; sq <= H8; sq++ {
		kingAttacksTable[sq] = leaperMask(sq, kingDeltas)
		knightAttacksTable[sq] = leaperMask(sq, knightDeltas)
		pawnAttacksTable[White][sq] = leaperMask(sq, whitePawnDeltas)
		pawnAttacksTable[Black][sq] = leaperMask(sq, blackPawnDeltas)

		bit := sq.Set()
		file, rank := sq.File(), sq.Rank()
		fileRange[sq] = FileSet(file) &^ bit
		rankRange[sq] = RankSet(rank) &^ bit
		diagRange[sq] = shiftedDiag(mainDiag, rank-file) &^ bit
		antiDiagRange[sq] = shiftedDiag(antiDiag, rank+file-7) &^ bit
	}

	// Rays and between-sets, derived by sliding against a single blocker.
	for a := A1; a <= H8; a++ {
		for _, line := range [...]SquareSet{
			fileRange[a], rankRange[a], diagRange[a], antiDiagRange[a],
		} {
			for bs := line; bs != 0; {
				b := bs.Pop()
				lineTable[a][b] = line.With(a)
				betweenTable[a][b] = slidingAttacks(a, line, b.Set()) &
					slidingAttacks(b, lineTable[a][b].Without(b), a.Set())
			}
		}
	}
}

// hyperbola computes the attacked squares along one line for the piece
// on the square represented by bit, given the board occupancy.
func hyperbola(bit, rng, occupied SquareSet) SquareSet {
	forward := occupied & rng
	reverse := forward.FlipVertical()
	forward -= bit
	reverse -= bit.FlipVertical()
	return (forward ^ reverse.FlipVertical()) & rng
}

// rankHyperbola is hyperbola with the byte flip replaced by an in-rank
// bit reversal, which is the reversal that works along a rank.
func rankHyperbola(bit, rng, occupied SquareSet) SquareSet {
	forward := occupied & rng
	reverse := forward.MirrorHorizontal()
	forward -= bit
	reverse -= bit.MirrorHorizontal()
	return (forward ^ reverse.MirrorHorizontal()) & rng
}

// slidingAttacks dispatches on the line mask kind: rank lines need the
// mirror-based fill, everything else the vertical flip.
func slidingAttacks(sq Sq, rng, occupied SquareSet) SquareSet {
	if rng == rankRange[sq] {
		return rankHyperbola(sq.Set(), rng, occupied)
	}
	return hyperbola(sq.Set(), rng, occupied)
}

// FileAttacks returns the squares a rook on sq attacks along its file.
func FileAttacks(sq Sq, occupied SquareSet) SquareSet {
	return hyperbola(sq.Set(), fileRange[sq], occupied)
}

// RankAttacks returns the squares a rook on sq attacks along its rank.
func RankAttacks(sq Sq, occupied SquareSet) SquareSet {
	return rankHyperbola(sq.Set(), rankRange[sq], occupied)
}

// BishopAttacks returns the squares attacked by a bishop on sq with the
// given occupancy. The occupancy of sq itself is ignored.
func BishopAttacks(sq Sq, occupied SquareSet) SquareSet {
	bit := sq.Set()
	return hyperbola(bit, diagRange[sq], occupied) ^
		hyperbola(bit, antiDiagRange[sq], occupied)
}

// RookAttacks returns the squares attacked by a rook on sq with the
// given occupancy.
func RookAttacks(sq Sq, occupied SquareSet) SquareSet {
	return FileAttacks(sq, occupied) ^ RankAttacks(sq, occupied)
}

// QueenAttacks returns the squares attacked by a queen on sq with the
// given occupancy.
func QueenAttacks(sq Sq, occupied SquareSet) SquareSet {
	return BishopAttacks(sq, occupied) ^ RookAttacks(sq, occupied)
}

// KingAttacks returns the squares attacked by a king on sq.
func KingAttacks(sq Sq) SquareSet { return kingAttacksTable[sq] }

// KnightAttacks returns the squares attacked by a knight on sq.
func KnightAttacks(sq Sq) SquareSet { return knightAttacksTable[sq] }

// PawnAttacks returns the squares attacked by a pawn of the given color
// on sq.
func PawnAttacks(c Color, sq Sq) SquareSet { return pawnAttacksTable[c][sq] }

// Attacks returns the squares attacked by the given piece on sq with
// the given occupancy.
func Attacks(p Piece, sq Sq, occupied SquareSet) SquareSet {
	switch p.Role {
	case Pawn:
		return PawnAttacks(p.Color, sq)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	}
	return 0
}

// Between returns the squares strictly between a and b along a rank,
// file or diagonal, or the empty set if a and b are not collinear.
func Between(a, b Sq) SquareSet { return betweenTable[a][b] }

// Line returns the full line (rank, file or diagonal) through a and b,
// including both, or the empty set if they are not collinear.
func Line(a, b Sq) SquareSet { return lineTable[a][b] }

// Aligned reports whether a, b and c lie on a single rank, file or
// diagonal.
func Aligned(a, b, c Sq) bool { return lineTable[a][b].Has(c) }
