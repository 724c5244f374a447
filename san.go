package chess

import (
	"errors"
	"strings"
)

var errInvalidSan = errors.New("chess: invalid or ambiguous san")

// ParseSan parses a move in Standard Algebraic Notation and matches it
// against the legal moves of the position. The parser accepts the
// usual annotation suffixes (+, #, !, ?) and both O-O and 0-0 castling
// forms. An error is returned if the notation matches no legal move or
// more than one.
func (p *Position) ParseSan(s string) (Move, error) {
	san := strings.TrimRight(s, "+#!?")
	if san == "" {
		return NullMove, errInvalidSan
	}

	if san == "O-O" || san == "0-0" || san == "O-O-O" || san == "0-0-0" {
		wing := KingSide
		if len(san) == 5 {
			wing = QueenSide
		}
		king := p.board.KingOf(p.turn)
		rook := p.castles.RookOf(p.turn, wing)
		if king == NoSquare || rook == NoSquare {
			return NullMove, errInvalidSan
		}
		m := Move{From: king, To: rook}
		if !p.IsLegal(m) {
			return NullMove, errInvalidSan
		}
		return m, nil
	}

	// Drop: "N@f3", with "@e4" accepted for a pawn drop.
	if i := strings.IndexByte(san, '@'); i >= 0 {
		role := Pawn
		if i == 1 {
			if role = roleFromLetter(rune(san[0])); role == NoRole || san[0] < 'A' || san[0] > 'Z' {
				return NullMove, errInvalidSan
			}
		} else if i != 0 {
			return NullMove, errInvalidSan
		}
		to := squareFromString(san[i+1:])
		if to == NoSquare {
			return NullMove, errInvalidSan
		}
		m := DropMove(role, to)
		if !p.IsLegal(m) {
			return NullMove, errInvalidSan
		}
		return m, nil
	}

	var (
		role      = NoRole
		promotion = NoRole
		fromFile  = -1
		fromRank  = -1
	)

	if r := roleFromLetter(rune(san[0])); r != NoRole && san[0] >= 'A' && san[0] <= 'Z' {
		role = r
		san = san[1:]
	} else {
		role = Pawn
	}

	if i := strings.IndexByte(san, '='); i >= 0 {
		if i != len(san)-2 {
			return NullMove, errInvalidSan
		}
		promotion = roleFromLetter(rune(san[i+1]))
		if promotion == NoRole || san[i+1] < 'A' || san[i+1] > 'Z' {
			return NullMove, errInvalidSan
		}
		san = san[:i]
	}

	san = strings.Replace(san, "x", "", 1)
	if len(san) < 2 {
		return NullMove, errInvalidSan
	}
	to := squareFromString(san[len(san)-2:])
	if to == NoSquare {
		return NullMove, errInvalidSan
	}
	for _, c := range san[:len(san)-2] {
		switch {
		case c >= 'a' && c <= 'h':
			if fromFile != -1 {
				return NullMove, errInvalidSan
			}
			fromFile = int(c - 'a')
		case c >= '1' && c <= '8':
			if fromRank != -1 {
				return NullMove, errInvalidSan
			}
			fromRank = int(c - '1')
		default:
			return NullMove, errInvalidSan
		}
	}

	match := NullMove
	for _, m := range p.LegalMoves() {
		if m.IsDrop() || m.To != to || m.Promotion != promotion {
			continue
		}
		if p.board.RoleAt(m.From) != role {
			continue
		}
		if fromFile != -1 && m.From.File() != fromFile {
			continue
		}
		if fromRank != -1 && m.From.Rank() != fromRank {
			continue
		}
		if match != NullMove {
			return NullMove, errInvalidSan // ambiguous
		}
		match = m
	}
	if match == NullMove {
		return NullMove, errInvalidSan
	}
	return match, nil
}

// MakeSan returns the canonical SAN of a legal move, with the minimal
// disambiguator and a '+' or '#' suffix where the move gives check.
func (p *Position) MakeSan(m Move) string {
	return p.san(m, func(r Role) rune {
		return Piece{Color: White, Role: r}.Letter()
	})
}

// MakeFan is MakeSan with figurine piece symbols.
func (p *Position) MakeFan(m Move) string {
	return p.san(m, func(r Role) rune {
		return figurines[White][r]
	})
}

// PlayToSan plays a legal move and returns the resulting position
// together with the move's SAN.
func (p *Position) PlayToSan(m Move) (*Position, string, error) {
	san := p.MakeSan(m)
	pp, err := p.Play(m)
	if err != nil {
		return nil, "", err
	}
	return pp, san, nil
}

// PlaySan parses a SAN string and plays it.
func (p *Position) PlaySan(s string) (*Position, error) {
	m, err := p.ParseSan(s)
	if err != nil {
		return nil, err
	}
	return p.Play(m)
}

func (p *Position) san(m Move, letter func(Role) rune) string {
	var buf strings.Builder
	m = p.normalizeMove(m)

	switch {
	case m == NullMove:
		return "--"

	case m.IsDrop():
		buf.WriteRune(letter(m.Drop))
		buf.WriteByte('@')
		buf.WriteString(m.To.String())

	case p.board.RoleAt(m.From) == King && p.board.ByPiece(p.turn, Rook).Has(m.To):
		if m.To > m.From {
			buf.WriteString("O-O")
		} else {
			buf.WriteString("O-O-O")
		}

	default:
		role := p.board.RoleAt(m.From)
		_, isCapture := p.board.PieceAt(m.To)
		if role == Pawn {
			isCapture = m.From.File() != m.To.File()
			if isCapture {
				buf.WriteByte(byte('a' + m.From.File()))
			}
		} else {
			buf.WriteRune(letter(role))
			buf.WriteString(p.disambiguator(m, role))
		}
		if isCapture {
			buf.WriteByte('x')
		}
		buf.WriteString(m.To.String())
		if m.Promotion != NoRole {
			buf.WriteByte('=')
			buf.WriteRune(letter(m.Promotion))
		}
	}

	if suffix := p.checkSuffix(m); suffix != 0 {
		buf.WriteByte(suffix)
	}
	return buf.String()
}

// disambiguator returns the minimal origin hint that makes the move
// unique among legal moves of the same role to the same destination.
func (p *Position) disambiguator(m Move, role Role) string {
	ambiguous, sameFile, sameRank := false, false, false
	ctx := p.context()
	others := p.board.ByPiece(p.turn, role).Without(m.From)
	for others != 0 {
		other := others.Pop()
		if !p.destsFrom(other, ctx).Has(m.To) {
			continue
		}
		ambiguous = true
		if other.File() == m.From.File() {
			sameFile = true
		}
		if other.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(byte('a' + m.From.File()))
	case !sameRank:
		return string(byte('1' + m.From.Rank()))
	}
	return m.From.String()
}

// checkSuffix returns '#' for mate, '+' for check, 0 otherwise.
func (p *Position) checkSuffix(m Move) byte {
	after := p.PlayUnchecked(m)
	if after.Checkers() == 0 {
		return 0
	}
	if after.hasLegalMoves() {
		return '+'
	}
	return '#'
}
