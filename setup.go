package chess

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Pockets holds the pieces in hand of a Crazyhouse game, counted per
// color and role.
type Pockets [2][6]int8

// Count returns the number of pieces of the given color and role in hand.
func (p *Pockets) Count(c Color, r Role) int { return int(p[c][r-1]) }

// Total returns the number of pieces in hand for both sides.
func (p *Pockets) Total() int {
	n := 0
	for c := 0; c < 2; c++ {
		for r := 0; r < 6; r++ {
			n += int(p[c][r])
		}
	}
	return n
}

func (p *Pockets) add(c Color, r Role)    { p[c][r-1]++ }
func (p *Pockets) remove(c Color, r Role) { p[c][r-1]-- }

// String returns the pocket part of a Crazyhouse FEN: white pieces in
// uppercase first, then black in lowercase, in PNBRQK order.
func (p *Pockets) String() string {
	var buf bytes.Buffer
	for _, c := range [2]Color{White, Black} {
		for r := Pawn; r <= King; r++ {
			for i := int8(0); i < p[c][r-1]; i++ {
				buf.WriteRune(Piece{Color: c, Role: r}.Letter())
			}
		}
	}
	return buf.String()
}

func parsePockets(field string) (*Pockets, error) {
	var p Pockets
	for _, c := range field {
		role := roleFromLetter(c)
		if role == NoRole {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidPockets, c)
		}
		color := Black
		if c >= 'A' && c <= 'Z' {
			color = White
		}
		if p[color][role-1]++; p[color][role-1] > 16 {
			return nil, fmt.Errorf("%w: too many pieces in hand", ErrInvalidPockets)
		}
	}
	return &p, nil
}

// RemainingChecks counts the checks each side may still deliver before
// winning a Three-check game.
type RemainingChecks [2]int8

// String returns the FEN form, e.g. "+3+3".
func (r *RemainingChecks) String() string {
	return fmt.Sprintf("+%d+%d", r[White], r[Black])
}

func parseRemainingChecks(field string) (*RemainingChecks, error) {
	parts := strings.Split(field, "+")
	if len(parts) != 3 || parts[0] != "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRemainingChecks, field)
	}
	var r RemainingChecks
	for i, part := range parts[1:] {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRemainingChecks, field)
		}
		r[i] = int8(n)
	}
	return &r, nil
}

// Setup is a not-yet-validated position description: everything a FEN
// string carries. Use FromSetup to turn it into a playable Position.
type Setup struct {
	Board           Board
	Pockets         *Pockets
	Turn            Color
	CastlingRights  SquareSet // squares of unmoved rooks
	EpSquare        Sq
	RemainingChecks *RemainingChecks
	Halfmoves       int
	Fullmoves       int
}

// NewSetup returns the setup of the standard starting position.
func NewSetup() *Setup {
	return &Setup{
		Board:          NewBoard(),
		Turn:           White,
		CastlingRights: SquareSetOf(A1, H1, A8, H8),
		EpSquare:       NoSquare,
		Halfmoves:      0,
		Fullmoves:      1,
	}
}

// ParseFen parses a FEN string into a Setup. Missing trailing fields
// take their defaults (white to move, no castling rights, no en
// passant square, clocks 0 and 1), so a bare board field is accepted.
//
// Castling rights may use the conventional KQkq letters or
// Shredder/X-FEN file letters ('C' for a castleable white rook on the
// c-file). A Crazyhouse pocket may follow the board field in brackets
// ("...R[QNq]") or as a ninth rank ("...R/QNq"), and a Three-check
// FEN may carry a trailing "+3+3" remaining-checks field.
func ParseFen(fen string) (*Setup, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty fen", ErrInvalidBoard)
	}

	s := &Setup{
		Turn:      White,
		EpSquare:  NoSquare,
		Halfmoves: 0,
		Fullmoves: 1,
	}

	// Field 1: board, with an optional crazyhouse pocket appended
	// either in brackets or after an eighth slash.
	boardField := fields[0]
	if i := strings.IndexByte(boardField, '['); i >= 0 {
		if !strings.HasSuffix(boardField, "]") {
			return nil, fmt.Errorf("%w: unclosed pocket", ErrInvalidPockets)
		}
		pockets, err := parsePockets(boardField[i+1 : len(boardField)-1])
		if err != nil {
			return nil, err
		}
		s.Pockets = pockets
		boardField = boardField[:i]
	} else if strings.Count(boardField, "/") == 8 {
		i := strings.LastIndexByte(boardField, '/')
		pockets, err := parsePockets(boardField[i+1:])
		if err != nil {
			return nil, err
		}
		s.Pockets = pockets
		boardField = boardField[:i]
	}
	board, err := ParseBoardFen(boardField)
	if err != nil {
		return nil, err
	}
	s.Board = board

	// Field 2: side to move.
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			s.Turn = White
		case "b":
			s.Turn = Black
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidTurn, fields[1])
		}
	}

	// Field 3: castling rights.
	if len(fields) > 2 && fields[2] != "-" {
		rights, err := parseCastlingFen(board, fields[2])
		if err != nil {
			return nil, err
		}
		s.CastlingRights = rights
	}

	// Field 4: en passant square.
	if len(fields) > 3 && fields[3] != "-" {
		s.EpSquare = squareFromString(fields[3])
		if s.EpSquare == NoSquare {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEpSquare, fields[3])
		}
	}

	rest := fields[4:]

	// A remaining-checks field may appear before the clocks
	// (lichess writes it after; accept it in either spot).
	rest, err = s.takeRemainingChecks(rest)
	if err != nil {
		return nil, err
	}

	// Fields 5 and 6: halfmove clock and fullmove number.
	if len(rest) > 0 {
		if s.Halfmoves, err = strconv.Atoi(rest[0]); err != nil || s.Halfmoves < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHalfmoves, rest[0])
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		if s.Fullmoves, err = strconv.Atoi(rest[0]); err != nil || s.Fullmoves < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFullmoves, rest[0])
		}
		rest = rest[1:]
	}

	rest, err = s.takeRemainingChecks(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing field %q", ErrInvalidRemainingChecks, rest[0])
	}
	return s, nil
}

func (s *Setup) takeRemainingChecks(rest []string) ([]string, error) {
	if len(rest) == 0 || !strings.HasPrefix(rest[0], "+") {
		return rest, nil
	}
	if s.RemainingChecks != nil {
		return nil, fmt.Errorf("%w: duplicate field", ErrInvalidRemainingChecks)
	}
	checks, err := parseRemainingChecks(rest[0])
	if err != nil {
		return nil, err
	}
	s.RemainingChecks = checks
	return rest[1:], nil
}

// parseCastlingFen translates a castling rights field into the set of
// unmoved rook squares. 'K'/'Q' pair with the outermost rook on the
// respective side of the king; file letters name the rook's file
// directly. Letters that name no actual rook still contribute their
// natural square so that the field round-trips.
func parseCastlingFen(board Board, field string) (SquareSet, error) {
	var rights SquareSet
	for _, c := range field {
		color := White
		lower := c
		if c >= 'a' && c <= 'z' {
			color = Black
		} else {
			lower = c + 'a' - 'A'
		}
		backrank := RankSet(color.backrank())
		king := (board.ByPiece(color, King) & backrank & ^board.promoted).SingleSquare()
		candidates := board.ByPiece(color, Rook) & backrank

		switch {
		case lower == 'k':
			sq := Square(FileH, color.backrank())
			for _, rook := range candidates.SquaresReversed() {
				if king == NoSquare || rook > king {
					sq = rook
					break
				}
			}
			rights = rights.With(sq)
		case lower == 'q':
			sq := Square(FileA, color.backrank())
			for _, rook := range candidates.Squares() {
				if king == NoSquare || rook < king {
					sq = rook
					break
				}
			}
			rights = rights.With(sq)
		case lower >= 'a' && lower <= 'h':
			rights = rights.With(Square(int(lower-'a'), color.backrank()))
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidCastling, field)
		}
	}
	return rights, nil
}

// castlingFen is the inverse of parseCastlingFen: rights on the h- and
// a-files are written K/Q, other files as file letters, white first,
// kingside before queenside.
func castlingFen(rights SquareSet) string {
	var buf bytes.Buffer
	for _, color := range [2]Color{White, Black} {
		backrank := RankSet(color.backrank())
		for _, sq := range (rights & backrank).SquaresReversed() {
			switch {
			case sq.File() == FileH && color == White:
				buf.WriteByte('K')
			case sq.File() == FileA && color == White:
				buf.WriteByte('Q')
			case sq.File() == FileH:
				buf.WriteByte('k')
			case sq.File() == FileA:
				buf.WriteByte('q')
			case color == White:
				buf.WriteByte(byte('A' + sq.File()))
			default:
				buf.WriteByte(byte('a' + sq.File()))
			}
		}
	}
	if buf.Len() == 0 {
		return "-"
	}
	return buf.String()
}

// Fen serializes the setup. The output parses back to an equal setup.
func (s *Setup) Fen() string {
	var fen bytes.Buffer
	fen.WriteString(s.Board.BoardFen())
	if s.Pockets != nil {
		fen.WriteByte('[')
		fen.WriteString(s.Pockets.String())
		fen.WriteByte(']')
	}
	fen.WriteByte(' ')
	fen.WriteByte("wb"[s.Turn])
	fen.WriteByte(' ')
	fen.WriteString(castlingFen(s.CastlingRights))
	fmt.Fprintf(&fen, " %s %d %d", s.EpSquare, s.Halfmoves, s.Fullmoves)
	if s.RemainingChecks != nil {
		fen.WriteByte(' ')
		fen.WriteString(s.RemainingChecks.String())
	}
	return fen.String()
}
