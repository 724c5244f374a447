package chess

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPosition(t *testing.T, fen string, variant Variant) *Position {
	t.Helper()
	s, err := ParseFen(fen)
	require.NoError(t, err, fen)
	p, err := FromSetup(s, variant, false)
	require.NoError(t, err, fen)
	return p
}

func TestInitialPosition(t *testing.T) {
	p := NewPosition(Standard)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", p.Fen())
	assert.Equal(t, White, p.Turn())
	assert.Equal(t, EmptySet, p.Checkers())
	assert.Len(t, p.LegalMoves(), 20)

	dests := p.Dests()
	assert.Equal(t, SquareSetOf(E3, E4), dests[E2])
	assert.Equal(t, SquareSetOf(A3, C3), dests[B1])
	_, hasKing := dests[E1]
	assert.False(t, hasKing)
}

func TestFromSetupValidation(t *testing.T) {
	for _, test := range []struct {
		fen  string
		want error
	}{
		{"8/8/8/8/8/8/8/8 w - - 0 1", ErrEmptyBoard},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w - - 0 1", ErrKings},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKKNR w - - 0 1", ErrKings},
		// White to move, but the black king is attacked by the rook.
		{"4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", ErrOppositeCheck},
		{"P3k3/8/8/8/8/8/8/4K3 w - - 0 1", ErrPawnsOnBackrank},
		// Two checkers on the same file ray through the king.
		{"4R3/8/8/8/4k3/8/8/2K1R3 b - - 0 1", ErrImpossibleCheck},
	} {
		s, err := ParseFen(test.fen)
		require.NoError(t, err, test.fen)
		_, err = FromSetup(s, Standard, false)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.fen, err, test.want)
		}
	}

	// The impossible check is accepted when explicitly ignored.
	s, err := ParseFen("4R3/8/8/8/4k3/8/8/2K1R3 b - - 0 1")
	require.NoError(t, err)
	_, err = FromSetup(s, Standard, true)
	assert.NoError(t, err)
}

func TestRoundTripThroughSetup(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r4rk1/2pp1ppp/8/8/8/8/PPPPP1PP/RNBQKBNR b KQ - 5 12",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		p := mustPosition(t, fen, Standard)
		p2, err := FromSetup(p.ToSetup(), Standard, false)
		require.NoError(t, err)
		assert.Equal(t, p.Fen(), p2.Fen())
		assert.Equal(t, fen, p.Fen())
	}
}

func TestScholarsMate(t *testing.T) {
	p := NewPosition(Standard)
	for _, san := range []string{"e4", "e5", "Qh5", "Nc6", "Bc4", "Nf6", "Qxf7#"} {
		next, err := p.PlaySan(san)
		require.NoError(t, err, san)
		p = next
	}
	assert.True(t, p.IsCheckmate())
	assert.True(t, p.IsGameOver())
	assert.Equal(t, WhiteWon, p.Outcome())
	winner, ok := p.Outcome().Winner()
	require.True(t, ok)
	assert.Equal(t, White, winner)
}

func TestEnPassant(t *testing.T) {
	// No white pawn can reach the ep square: no ep capture generated.
	p := mustPosition(t, "rnbqkbnr/1ppppppp/8/p7/8/N7/PPPPPPPP/R1BQKBNR w KQkq a6 0 2", Standard)
	for _, m := range p.LegalMoves() {
		assert.NotEqual(t, A6, m.To, "unexpected en passant capture %s", m)
	}

	// b5xc6 en passant is legal and removes the pawn on c5.
	p = mustPosition(t, "rnbqkbnr/1p1ppppp/8/pPp5/8/8/P1PPPPPP/RNBQKBNR w KQkq c6 0 3", Standard)
	m, err := ParseUci("b5c6")
	require.NoError(t, err)
	assert.True(t, p.IsLegal(m))
	next, err := p.Play(m)
	require.NoError(t, err)
	assert.Equal(t, NoRole, next.Board().RoleAt(C5))
	assert.Equal(t, Pawn, next.Board().RoleAt(C6))
}

func TestEnPassantPin(t *testing.T) {
	// Capturing en passant would expose the king on the fifth rank.
	p := mustPosition(t, "8/8/8/KPp4r/8/8/6k1/8 w - c6 0 2", Standard)
	m := Move{From: B5, To: C6}
	assert.False(t, p.IsLegal(m))
}

func TestEpSquareOnlyWhenCapturable(t *testing.T) {
	// A double push with no enemy pawn beside it leaves no ep square,
	// so positions differing only in a dead ep square compare equal.
	p := NewPosition(Standard)
	next, err := p.Play(Move{From: E2, To: E4})
	require.NoError(t, err)
	assert.Equal(t, NoSquare, next.EpSquare())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", next.Fen())

	// With a black pawn on d4 the push sets the ep square.
	p = mustPosition(t, "rnbqkbnr/ppp1pppp/8/8/3p4/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3", Standard)
	next, err = p.Play(Move{From: E2, To: E4})
	require.NoError(t, err)
	assert.Equal(t, E3, next.EpSquare())
}

func TestCastlingMoves(t *testing.T) {
	p := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", Standard)
	dests := p.Dests()
	assert.True(t, dests[E1].Has(H1), "kingside castle encoded as king onto rook")
	assert.True(t, dests[E1].Has(A1), "queenside castle encoded as king onto rook")

	// The alternate two-square encoding is playable.
	m, err := ParseUci("e1g1")
	require.NoError(t, err)
	assert.True(t, p.IsLegal(m))
	next, err := p.Play(m)
	require.NoError(t, err)
	assert.Equal(t, King, next.Board().RoleAt(G1))
	assert.Equal(t, Rook, next.Board().RoleAt(F1))
	assert.Equal(t, NoRole, next.Board().RoleAt(E1))
	assert.Equal(t, NoSquare, next.Castles().RookOf(White, KingSide))
	assert.Equal(t, NoSquare, next.Castles().RookOf(White, QueenSide))
	assert.Equal(t, H8, next.Castles().RookOf(Black, KingSide))

	alternates := p.LegalMovesWithAlternateCastling()
	assert.Greater(t, len(alternates), len(p.LegalMoves()))
}

func TestCastlingBlocked(t *testing.T) {
	// A rook on f8 attacks f1: white may not castle kingside through it.
	p := mustPosition(t, "5r2/6k1/8/8/8/8/8/R3K2R w KQ - 0 1", Standard)
	assert.False(t, p.IsLegal(Move{From: E1, To: H1}))
	assert.True(t, p.IsLegal(Move{From: E1, To: A1}))

	// Castling while in check is illegal.
	p = mustPosition(t, "4r3/6k1/8/8/8/8/8/R3K2R w KQ - 0 1", Standard)
	assert.False(t, p.IsLegal(Move{From: E1, To: H1}))
	assert.False(t, p.IsLegal(Move{From: E1, To: A1}))
}

func TestChess960Castling(t *testing.T) {
	p := mustPosition(t, "rk2r3/pppbnppp/3p2n1/P2Pp3/4P2q/R5NP/1PP2PP1/1KNQRB2 b Kkq - 0 1", Chess960)
	dests := p.Dests()
	assert.Equal(t, SquareSetOf(A8, C8, E8), dests[B8])

	// Short castling onto the e8 rook.
	next, err := p.Play(Move{From: B8, To: E8})
	require.NoError(t, err)
	assert.Equal(t, King, next.Board().RoleAt(G8))
	assert.Equal(t, Rook, next.Board().RoleAt(F8))
	assert.Equal(t, NoRole, next.Board().RoleAt(B8))
	assert.Equal(t, NoRole, next.Board().RoleAt(E8))
}

func TestPinnedPiece(t *testing.T) {
	// The knight on d2 is pinned by the rook on d8.
	p := mustPosition(t, "3r3k/8/8/8/8/8/3N4/3K4 w - - 0 1", Standard)
	king := p.Board().KingOf(White)
	assert.True(t, p.SliderBlockers(king).Has(D2))
	dests := p.Dests()
	_, ok := dests[D2]
	assert.False(t, ok, "pinned knight may not move")

	// A pinned rook may slide along the pin ray.
	p = mustPosition(t, "3r3k/8/8/8/8/8/3R4/3K4 w - - 0 1", Standard)
	dests = p.Dests()
	assert.True(t, dests[D2].Has(D5))
	assert.True(t, dests[D2].Has(D8), "capturing the pinning piece")
	assert.False(t, dests[D2].Has(E2))
}

func TestCheckEvasions(t *testing.T) {
	// Checked by the rook on e8: block, capture or move the king.
	p := mustPosition(t, "4r3/6k1/8/8/8/8/3B4/4K2R w K - 0 1", Standard)
	dests := p.Dests()
	assert.Equal(t, SquareSetOf(E3), dests[D2]&SquareSetOf(E3), "bishop blocks on e3")
	assert.False(t, dests[E1].Has(E2), "king stays off the ray")
	assert.True(t, dests[E1].Has(D1))
	assert.True(t, dests[E1].Has(F2))

	// Double check: only king moves.
	p = mustPosition(t, "4r3/6k1/8/8/7b/8/3R4/4K3 w - - 0 1", Standard)
	dests = p.Dests()
	_, rookMoves := dests[D2]
	assert.False(t, rookMoves)
	assert.NotEmpty(t, dests[E1])
}

func TestStalemate(t *testing.T) {
	p := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Standard)
	assert.True(t, p.IsStalemate())
	assert.False(t, p.IsCheckmate())
	assert.True(t, p.IsGameOver())
	assert.Equal(t, Drawn, p.Outcome())
}

func TestInsufficientMaterial(t *testing.T) {
	for fen, want := range map[string]bool{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1":     true,  // bare kings
		"4k3/8/8/8/8/8/8/4KN2 w - - 0 1":    true,  // king and knight
		"4k3/8/8/8/8/8/8/4KB2 w - - 0 1":    true,  // king and bishop
		"4kb2/8/8/8/8/8/8/4KB2 w - - 0 1":   false, // opposite colored bishops can mate
		"4k3/8/8/8/8/8/8/3BKB2 w - - 0 1":   true,  // both bishops on light squares
		"4k3/8/8/8/8/8/8/4KNN1 w - - 0 1":   false, // two knights
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1":   false, // pawn
		"4k3/8/8/8/8/8/8/4KR2 w - - 0 1":    false, // rook
	} {
		p := mustPosition(t, fen, Standard)
		assert.Equal(t, want, p.IsInsufficientMaterial(), fen)
	}
}

func TestHalfmoveAndFullmoveClocks(t *testing.T) {
	p := NewPosition(Standard)
	p, err := p.Play(Move{From: G1, To: F3})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Halfmoves())
	assert.Equal(t, 1, p.Fullmoves())

	p, err = p.Play(Move{From: B8, To: C6})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Halfmoves())
	assert.Equal(t, 2, p.Fullmoves())

	p, err = p.Play(Move{From: E2, To: E4})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Halfmoves(), "pawn move resets the clock")
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	p := NewPosition(Standard)
	_, err := p.Play(Move{From: E2, To: E5})
	require.Error(t, err)
	var playErr *PlayError
	require.True(t, errors.As(err, &playErr))
	assert.Contains(t, playErr.Error(), p.Fen())

	next := p.PlayNull()
	assert.Equal(t, Black, next.Turn())
	assert.Equal(t, 1, next.Halfmoves())
}

func TestPromotion(t *testing.T) {
	p := mustPosition(t, "8/4P1k1/8/8/8/8/8/4K3 w - - 0 1", Standard)
	var promotions []Move
	for _, m := range p.LegalMoves() {
		if m.From == E7 && m.To == E8 {
			promotions = append(promotions, m)
		}
	}
	assert.Len(t, promotions, 4)
	assert.False(t, p.IsLegal(Move{From: E7, To: E8}), "promotion role required")

	next, err := p.Play(Move{From: E7, To: E8, Promotion: Queen})
	require.NoError(t, err)
	assert.Equal(t, Queen, next.Board().RoleAt(E8))
	assert.Equal(t, EmptySet, next.Board().Promoted(), "no promoted flag outside crazyhouse")
}

func TestHashConsistency(t *testing.T) {
	p := NewPosition(Standard)
	p1, err := p.Play(Move{From: G1, To: F3})
	require.NoError(t, err)
	p2, err := p1.Play(Move{From: G8, To: F6})
	require.NoError(t, err)

	reparsed := mustPosition(t, p2.Fen(), Standard)
	assert.Equal(t, p2.Hash(), reparsed.Hash())
	assert.NotEqual(t, p.Hash(), p1.Hash())
	assert.NotEqual(t, p1.Hash(), p2.Hash())
}
