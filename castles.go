package chess

// Castles is the castling metadata derived from a Setup: the set of
// unmoved rooks, and per (color, wing) the castleable rook's square
// and the path of squares that must be empty for the castle. The path
// excludes the king's and rook's own squares but includes both
// destinations, so it is valid for Chess960 back ranks too.
type Castles struct {
	unmovedRooks SquareSet
	rook         [2][2]Sq
	path         [2][2]SquareSet
}

func noCastles() Castles {
	return Castles{rook: [2][2]Sq{{NoSquare, NoSquare}, {NoSquare, NoSquare}}}
}

// castlesFromSetup pairs each side's unmoved backrank rooks with its
// king: the lowest rook left of the king castles queenside, the
// highest right of it kingside.
func castlesFromSetup(s *Setup) Castles {
	c := noCastles()
	c.unmovedRooks = s.CastlingRights

	for _, color := range [2]Color{White, Black} {
		backrank := RankSet(color.backrank())
		king := (s.Board.ByPiece(color, King) & backrank).SingleSquare()
		if king == NoSquare {
			continue
		}
		rooks := s.CastlingRights & s.Board.ByPiece(color, Rook) & backrank
		if queenside := (rooks & smallerSquares(king)).First(); queenside != NoSquare {
			c.set(color, QueenSide, king, queenside)
		}
		if kingside := (rooks & greaterSquares(king)).Last(); kingside != NoSquare {
			c.set(color, KingSide, king, kingside)
		}
	}
	return c
}

func smallerSquares(sq Sq) SquareSet { return sq.Set() - 1 }
func greaterSquares(sq Sq) SquareSet { return ^(sq.Set()<<1 - 1) }

func (c *Castles) set(color Color, wing Wing, king, rook Sq) {
	kingTo := wing.kingCastleTo(color)
	rookTo := wing.rookCastleTo(color)
	c.rook[color][wing] = rook
	c.path[color][wing] = (Between(rook, rookTo).With(rookTo) |
		Between(king, kingTo).With(kingTo)).
		Without(king).Without(rook)
}

// UnmovedRooks returns the set of rook squares that still carry
// castling rights, as parsed from the FEN castling field.
func (c Castles) UnmovedRooks() SquareSet { return c.unmovedRooks }

// RookOf returns the castleable rook square for the color and wing, or
// NoSquare.
func (c Castles) RookOf(color Color, wing Wing) Sq { return c.rook[color][wing] }

// PathOf returns the set of squares that must be empty to castle.
func (c Castles) PathOf(color Color, wing Wing) SquareSet { return c.path[color][wing] }

// IsEmpty reports whether no castling rights remain.
func (c Castles) IsEmpty() bool { return c.unmovedRooks == 0 }

// discardRookAt removes the castling right tied to a rook on sq, if any.
func (c *Castles) discardRookAt(sq Sq) {
	if !c.unmovedRooks.Has(sq) {
		return
	}
	c.unmovedRooks = c.unmovedRooks.Without(sq)
	for color := 0; color < 2; color++ {
		for wing := 0; wing < 2; wing++ {
			if c.rook[color][wing] == sq {
				c.rook[color][wing] = NoSquare
				c.path[color][wing] = 0
			}
		}
	}
}

// discardColor removes both of a side's castling rights.
func (c *Castles) discardColor(color Color) {
	c.unmovedRooks &^= RankSet(color.backrank())
	c.rook[color][QueenSide] = NoSquare
	c.rook[color][KingSide] = NoSquare
	c.path[color][QueenSide] = 0
	c.path[color][KingSide] = 0
}
