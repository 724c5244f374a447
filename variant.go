package chess

// Variant selects the rule set a Position is played under. Chess960
// shares all rules with Standard; the generalized castling paths make
// it work without further dispatch.
type Variant uint8

const (
	Standard Variant = iota
	Chess960
	Antichess
	Atomic
	Crazyhouse
	KingOfTheHill
	ThreeCheck
)

var variantNames = [...]string{
	"standard",
	"chess960",
	"antichess",
	"atomic",
	"crazyhouse",
	"kingofthehill",
	"threecheck",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// VariantFromName returns the variant with the given name; ok is false
// for unknown names.
func VariantFromName(name string) (Variant, bool) {
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return Standard, false
}

// kingAttackers returns the attacker's pieces giving check to a king
// on sq, honoring the variant's check semantics: Antichess has no
// check at all, and in Atomic adjacent kings suppress every check.
func (p *Position) kingAttackers(sq Sq, attacker Color, occupied SquareSet) SquareSet {
	switch p.variant {
	case Antichess:
		return 0
	case Atomic:
		if attackerKing := p.board.ByPiece(attacker, King).SingleSquare(); attackerKing != NoSquare &&
			KingAttacks(attackerKing).Has(sq) {
			return 0
		}
	}
	return p.board.attacksTo(sq, attacker, occupied)
}

// atomicDestsFrom computes legal destinations under Atomic rules.
// Explosions entangle king safety with every capture, so candidates
// are verified by playing them on a scratch copy.
func (p *Position) atomicDestsFrom(from Sq, ctx moveContext) SquareSet {
	role := p.board.RoleAt(from)
	ds := p.pseudoDests(from)
	if role == King {
		// The king may never capture: the explosion would take it too.
		ds &^= p.board.byColor[p.turn.Other()]
		ds |= p.castlingDests(QueenSide, ctx) | p.castlingDests(KingSide, ctx)
	}
	if role == Pawn && p.epSquare != NoSquare && PawnAttacks(p.turn, from).Has(p.epSquare) {
		ds = ds.With(p.epSquare)
	}
	for candidates := ds; candidates != 0; {
		to := candidates.Pop()
		after := p.PlayUnchecked(Move{From: from, To: to})
		ourKing := after.board.ByPiece(p.turn, King).SingleSquare()
		theirKing := after.board.ByPiece(p.turn.Other(), King).SingleSquare()
		switch {
		case ourKing == NoSquare:
			ds = ds.Without(to)
		case theirKing == NoSquare:
			// Exploding the enemy king wins regardless of check.
		case after.kingAttackers(ourKing, p.turn.Other(), after.board.occupied) != 0:
			ds = ds.Without(to)
		}
	}
	return ds
}

// variantOutcome reports variant-specific game endings.
func (p *Position) variantOutcome() (Outcome, bool) {
	switch p.variant {
	case KingOfTheHill:
		for _, c := range [2]Color{White, Black} {
			if p.board.ByPiece(c, King)&centerSquares != 0 {
				return wonBy(c), true
			}
		}
	case ThreeCheck:
		for _, c := range [2]Color{White, Black} {
			if p.remainingChecks != nil && p.remainingChecks[c] <= 0 {
				return wonBy(c), true
			}
		}
	case Atomic:
		for _, c := range [2]Color{White, Black} {
			if p.board.ByPiece(c, King) == 0 {
				return wonBy(c.Other()), true
			}
		}
	case Antichess:
		if p.board.byColor[p.turn] == 0 {
			return wonBy(p.turn), true
		}
	}
	return NoOutcome, false
}
