package chess

import (
	"errors"
	"testing"
)

type fenTest struct {
	name   string
	fen    string
	fenOut string // expected serialization; "" means same as fen
	check  func(*Setup) bool
}

var fenTests = []fenTest{
	{"initial",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "",
		func(s *Setup) bool {
			return s.Turn == White && s.EpSquare == NoSquare &&
				s.CastlingRights == SquareSetOf(A1, H1, A8, H8) &&
				s.Halfmoves == 0 && s.Fullmoves == 1
		}},
	{"board only",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		func(s *Setup) bool {
			return s.Turn == White && s.CastlingRights == 0 &&
				s.Halfmoves == 0 && s.Fullmoves == 1
		}},
	{"partial castling and ep",
		"r4rk1/2pp1ppp/8/8/8/8/PPPPP1PP/RNBQKBNR b KQ c3 5 12", "",
		func(s *Setup) bool {
			return s.Turn == Black && s.EpSquare == C3 &&
				s.CastlingRights == SquareSetOf(A1, H1) &&
				s.Halfmoves == 5 && s.Fullmoves == 12
		}},
	{"shredder file letters",
		"rk2r3/8/8/8/8/8/8/RK2R3 w EAea - 0 1",
		"rk2r3/8/8/8/8/8/8/RK2R3 w EQeq - 0 1",
		func(s *Setup) bool {
			return s.CastlingRights == SquareSetOf(A1, E1, A8, E8)
		}},
	{"x-fen inner rook",
		"1k2r2r/8/8/8/8/8/8/1K2R2R w Ee - 0 1",
		"1k2r2r/8/8/8/8/8/8/1K2R2R w Ee - 0 1",
		func(s *Setup) bool {
			return s.CastlingRights == SquareSetOf(E1, E8)
		}},
	{"rights without rook survive",
		"8/8/8/8/8/8/8/4k2K w Cc - 0 1", "",
		func(s *Setup) bool {
			return s.CastlingRights == SquareSetOf(C1, C8)
		}},
	{"crazyhouse brackets",
		"r1bqk2r/pp2ppbp/2n2np1/2pp4/3P4/2N1PN2/PPP1BPPP/R1BQK2R[QNq] w KQkq - 0 1", "",
		func(s *Setup) bool {
			return s.Pockets != nil &&
				s.Pockets.Count(White, Queen) == 1 &&
				s.Pockets.Count(White, Knight) == 1 &&
				s.Pockets.Count(Black, Queen) == 1
		}},
	{"crazyhouse ninth rank",
		"r1bqk2r/pp2ppbp/2n2np1/2pp4/3P4/2N1PN2/PPP1BPPP/R1BQK2R/Nn w KQkq - 0 1",
		"r1bqk2r/pp2ppbp/2n2np1/2pp4/3P4/2N1PN2/PPP1BPPP/R1BQK2R[Nn] w KQkq - 0 1",
		func(s *Setup) bool {
			return s.Pockets != nil && s.Pockets.Total() == 2
		}},
	{"crazyhouse empty pocket",
		"r1bqk2r/pp2ppbp/2n2np1/2pp4/3P4/2N1PN2/PPP1BPPP/R1BQK2R/ w KQkq - 0 1",
		"r1bqk2r/pp2ppbp/2n2np1/2pp4/3P4/2N1PN2/PPP1BPPP/R1BQK2R[] w KQkq - 0 1",
		func(s *Setup) bool {
			return s.Pockets != nil && s.Pockets.Total() == 0
		}},
	{"three-check",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 +3+2", "",
		func(s *Setup) bool {
			return s.RemainingChecks != nil &&
				s.RemainingChecks[White] == 3 && s.RemainingChecks[Black] == 2
		}},
	{"promoted piece",
		"rnbq1bnr/ppppkppp/8/8/8/8/PPPPPPPP/RNBQKBQ~R w - - 0 1", "",
		func(s *Setup) bool {
			return s.Board.Promoted() == SquareSetOf(G1)
		}},
}

func TestFen(t *testing.T) {
	for _, test := range fenTests {
		s, err := ParseFen(test.fen)
		if err != nil {
			t.Errorf("%s: %s", test.name, err)
			continue
		}
		if test.check != nil && !test.check(s) {
			t.Errorf("%s: parsed fields wrong for %q", test.name, test.fen)
		}
		want := test.fenOut
		if want == "" {
			want = test.fen
		}
		if fen := s.Fen(); fen != want {
			t.Errorf("%s:\n\texp: %s\n\tgot: %s", test.name, want, fen)
		}
	}
}

func TestFenLossless(t *testing.T) {
	for _, test := range fenTests {
		s, err := ParseFen(test.fen)
		if err != nil {
			continue
		}
		s2, err := ParseFen(s.Fen())
		if err != nil {
			t.Errorf("%s: reparse: %s", test.name, err)
			continue
		}
		if s2.Fen() != s.Fen() {
			t.Errorf("%s: fen not stable: %q vs %q", test.name, s.Fen(), s2.Fen())
		}
	}
}

type fenErrTest struct {
	fen  string
	want error
}

var fenErrTests = []fenErrTest{
	{"", ErrInvalidBoard},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR/8 w", ErrInvalidPockets},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/XNBQKBNR w", ErrInvalidBoard},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x", ErrInvalidTurn},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq", ErrInvalidCastling},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9", ErrInvalidEpSquare},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x", ErrInvalidHalfmoves},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", ErrInvalidFullmoves},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[x] w", ErrInvalidPockets},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 +4+1", ErrInvalidRemainingChecks},
	{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 junk", ErrInvalidRemainingChecks},
}

func TestFenErrors(t *testing.T) {
	for _, test := range fenErrTests {
		_, err := ParseFen(test.fen)
		if err == nil {
			t.Errorf("%q: expected error", test.fen)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%q: got %v, want cause %v", test.fen, err, test.want)
		}
	}
}
