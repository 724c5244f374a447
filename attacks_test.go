package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaperAttacks(t *testing.T) {
	assert.Equal(t, SquareSetOf(B3, C2), KnightAttacks(A1))
	assert.Equal(t, SquareSetOf(C2, C4, D1, D5, F1, F5, G2, G4), KnightAttacks(E3))
	assert.Equal(t, SquareSetOf(A2, B1, B2), KingAttacks(A1))
	assert.Equal(t, SquareSetOf(D4, D5, D6, E4, E6, F4, F5, F6), KingAttacks(E5))
	assert.Equal(t, SquareSetOf(D3, F3), PawnAttacks(White, E2))
	assert.Equal(t, SquareSetOf(D6, F6), PawnAttacks(Black, E7))
	assert.Equal(t, SquareSetOf(B3), PawnAttacks(White, A2))
	assert.Equal(t, SquareSetOf(G6), PawnAttacks(Black, H7))
}

func TestSlidingAttacksEmptyBoard(t *testing.T) {
	assert.Equal(t, (FileSet(FileE)|RankSet(Rank4)).Without(E4), RookAttacks(E4, 0))
	assert.Equal(t, SquareSetOf(A8, B1, B7, C2, C6, D3, D5, F3, F5, G2, G6, H1, H7),
		BishopAttacks(E4, 0))
	for sq := A1; sq <= H8; sq++ {
		assert.Equal(t, BishopAttacks(sq, 0)|RookAttacks(sq, 0), QueenAttacks(sq, 0),
			"queen attacks from %s", sq)
	}
}

func TestSlidingAttacksBlockers(t *testing.T) {
	occ := SquareSetOf(E6, B4)
	rook := RookAttacks(E4, occ)
	assert.True(t, rook.Has(E5))
	assert.True(t, rook.Has(E6), "blocker itself is attacked")
	assert.False(t, rook.Has(E7), "ray stops at blocker")
	assert.True(t, rook.Has(B4))
	assert.False(t, rook.Has(A4))
	assert.True(t, rook.Has(H4))
	assert.True(t, rook.Has(E1))

	// Adding blockers never adds attacked squares.
	for _, sq := range []Sq{A1, D4, E4, H7} {
		free := QueenAttacks(sq, 0)
		blocked := QueenAttacks(sq, SquareSetOf(C3, E5, F6, G2))
		assert.Equal(t, EmptySet, blocked&^free, "from %s", sq)
	}
}

func TestAttacksIgnoreOwnSquare(t *testing.T) {
	// The occupancy of the piece's own square must not matter.
	occ := SquareSetOf(D4, D6)
	assert.Equal(t, RookAttacks(D4, occ.Without(D4)), RookAttacks(D4, occ))
}

func TestBetween(t *testing.T) {
	assert.Equal(t, SquareSetOf(B2, C3, D4, E5, F6, G7), Between(A1, H8))
	assert.Equal(t, SquareSetOf(B2, C3, D4, E5, F6, G7), Between(H8, A1))
	assert.Equal(t, SquareSetOf(E2, E3), Between(E1, E4))
	assert.Equal(t, SquareSetOf(B5, C5, D5, E5, F5, G5), Between(A5, H5))
	assert.Equal(t, EmptySet, Between(E4, E5), "adjacent squares")
	assert.Equal(t, EmptySet, Between(A1, B3), "not collinear")
}

func TestLineAndAligned(t *testing.T) {
	assert.True(t, Aligned(A1, D4, H8))
	assert.True(t, Aligned(E1, E4, E8))
	assert.False(t, Aligned(A1, B3, C5))
	assert.Equal(t, mainDiag, Line(A1, H8))
	assert.True(t, Line(C2, F2).Has(A2))
	assert.True(t, Line(C2, F2).Has(H2))
	assert.Equal(t, EmptySet, Line(A1, B3))
}

func TestPieceAttacks(t *testing.T) {
	occ := SquareSetOf(E4, E6)
	assert.Equal(t, KnightAttacks(E4), Attacks(Piece{Color: White, Role: Knight}, E4, occ))
	assert.Equal(t, QueenAttacks(E4, occ), Attacks(Piece{Color: Black, Role: Queen}, E4, occ))
	assert.Equal(t, PawnAttacks(Black, E4), Attacks(Piece{Color: Black, Role: Pawn}, E4, occ))
}
