package chess

import "fmt"

// Position is a rule-validated game state: piece placement, side to
// move, castling metadata, en passant square, clocks and the
// variant-specific extras. Positions are immutable; Play and
// PlayUnchecked return new Positions.
type Position struct {
	board           Board
	pockets         *Pockets
	turn            Color
	castles         Castles
	epSquare        Sq
	remainingChecks *RemainingChecks
	halfmoves       int
	fullmoves       int
	variant         Variant
}

// NewPosition returns the starting position of the given variant.
func NewPosition(variant Variant) *Position {
	p := &Position{
		board:     NewBoard(),
		turn:      White,
		epSquare:  NoSquare,
		halfmoves: 0,
		fullmoves: 1,
		variant:   variant,
	}
	switch variant {
	case Antichess:
		p.castles = noCastles()
	case Crazyhouse:
		p.castles = castlesFromSetup(NewSetup())
		p.pockets = &Pockets{}
	case ThreeCheck:
		p.castles = castlesFromSetup(NewSetup())
		p.remainingChecks = &RemainingChecks{3, 3}
	default:
		p.castles = castlesFromSetup(NewSetup())
	}
	return p
}

// FromSetup validates a setup against the rules of the variant and
// builds a Position. With ignoreImpossibleCheck the reachability test
// on the checker configuration is skipped, accepting artificial
// positions.
func FromSetup(s *Setup, variant Variant, ignoreImpossibleCheck bool) (*Position, error) {
	p := &Position{
		board:     s.Board,
		turn:      s.Turn,
		epSquare:  s.EpSquare,
		halfmoves: s.Halfmoves,
		fullmoves: s.Fullmoves,
		variant:   variant,
	}
	if s.Pockets != nil {
		pockets := *s.Pockets
		p.pockets = &pockets
	}
	if s.RemainingChecks != nil {
		checks := *s.RemainingChecks
		p.remainingChecks = &checks
	}
	switch variant {
	case Antichess:
		p.castles = noCastles()
	case Crazyhouse:
		p.castles = castlesFromSetup(s)
		if p.pockets == nil {
			p.pockets = &Pockets{}
		}
	case ThreeCheck:
		p.castles = castlesFromSetup(s)
		if p.remainingChecks == nil {
			p.remainingChecks = &RemainingChecks{3, 3}
		}
	default:
		p.castles = castlesFromSetup(s)
		if p.pockets != nil || p.remainingChecks != nil {
			return nil, fmt.Errorf("%w: unexpected pockets or check counters", ErrVariant)
		}
	}
	if err := p.validate(ignoreImpossibleCheck); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) validate(ignoreImpossibleCheck bool) error {
	if p.board.occupied == 0 {
		return ErrEmptyBoard
	}
	if p.board.ByRole(Pawn)&backranksSet != 0 {
		return ErrPawnsOnBackrank
	}
	if p.variant == Antichess {
		// Kings are ordinary pieces; no check exists.
		return nil
	}
	if p.board.ByPiece(White, King).Count() != 1 ||
		p.board.ByPiece(Black, King).Count() != 1 {
		return ErrKings
	}
	if otherKing := p.board.KingOf(p.turn.Other()); otherKing != NoSquare {
		if p.kingAttackers(otherKing, p.turn, p.board.occupied) != 0 {
			return ErrOppositeCheck
		}
	}
	if !ignoreImpossibleCheck {
		return p.validateCheckers()
	}
	return nil
}

// validateCheckers rejects checker configurations that no legal move
// sequence can produce.
func (p *Position) validateCheckers() error {
	king := p.board.KingOf(p.turn)
	if king == NoSquare {
		return nil
	}
	checkers := p.kingAttackers(king, p.turn.Other(), p.board.occupied)
	if checkers == 0 {
		return nil
	}
	if p.epSquare != NoSquare {
		// The last move was the double push: the pushed pawn must be
		// the only checker, or must have discovered a single slider.
		pushedTo := p.epSquare ^ 8
		pushedFrom := p.epSquare ^ 24
		if checkers.MoreThanOne() ||
			(checkers.First() != pushedTo &&
				p.kingAttackers(king, p.turn.Other(),
					p.board.occupied.Without(pushedTo).With(pushedFrom)) != 0) {
			return ErrImpossibleCheck
		}
		return nil
	}
	if checkers.Count() > 2 {
		return ErrImpossibleCheck
	}
	if checkers.MoreThanOne() && Aligned(checkers.First(), checkers.Last(), king) {
		return ErrImpossibleCheck
	}
	return nil
}

// Accessors.

// Board returns the piece placement.
func (p *Position) Board() Board { return p.board }

// Pockets returns a copy of the Crazyhouse pockets, or nil.
func (p *Position) Pockets() *Pockets {
	if p.pockets == nil {
		return nil
	}
	pockets := *p.pockets
	return &pockets
}

// Turn returns the side to move.
func (p *Position) Turn() Color { return p.turn }

// Castles returns the castling metadata.
func (p *Position) Castles() Castles { return p.castles }

// EpSquare returns the en passant target square, or NoSquare.
func (p *Position) EpSquare() Sq { return p.epSquare }

// RemainingChecks returns a copy of the Three-check counters, or nil.
func (p *Position) RemainingChecks() *RemainingChecks {
	if p.remainingChecks == nil {
		return nil
	}
	checks := *p.remainingChecks
	return &checks
}

// Halfmoves returns the halfmove clock for the fifty-move rule.
func (p *Position) Halfmoves() int { return p.halfmoves }

// Fullmoves returns the fullmove number, 1-based.
func (p *Position) Fullmoves() int { return p.fullmoves }

// Variant returns the variant the position is played under.
func (p *Position) Variant() Variant { return p.variant }

// ToSetup returns the position as an unvalidated Setup.
func (p *Position) ToSetup() *Setup {
	s := &Setup{
		Board:          p.board,
		Turn:           p.turn,
		CastlingRights: p.castles.unmovedRooks,
		EpSquare:       p.epSquare,
		Halfmoves:      p.halfmoves,
		Fullmoves:      p.fullmoves,
	}
	s.Pockets = p.Pockets()
	s.RemainingChecks = p.RemainingChecks()
	return s
}

// Fen returns the FEN string of the position.
func (p *Position) Fen() string { return p.ToSetup().Fen() }

// Checks and pins.

// Checkers returns the pieces giving check to the side to move.
func (p *Position) Checkers() SquareSet {
	king := p.board.KingOf(p.turn)
	if king == NoSquare {
		return 0
	}
	return p.kingAttackers(king, p.turn.Other(), p.board.occupied)
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool { return p.Checkers() != 0 }

// SliderBlockers returns the pieces (of either color) that are the
// only piece between an enemy slider and the given king square.
// Friendly pieces in the set are pinned.
func (p *Position) SliderBlockers(king Sq) SquareSet {
	them := p.turn.Other()
	snipers := (RookAttacks(king, 0) & (p.board.ByRole(Rook) | p.board.ByRole(Queen)) |
		BishopAttacks(king, 0) & (p.board.ByRole(Bishop) | p.board.ByRole(Queen))) &
		p.board.byColor[them]
	var blockers SquareSet
	for snipers != 0 {
		sniper := snipers.Pop()
		b := Between(king, sniper) & p.board.occupied
		if b != 0 && !b.MoreThanOne() {
			blockers |= b
		}
	}
	return blockers
}

// moveContext caches per-position data shared by all destination
// computations.
type moveContext struct {
	king        Sq
	checkers    SquareSet
	blockers    SquareSet
	mustCapture bool // Antichess capture-forcing rule
}

func (p *Position) context() moveContext {
	ctx := moveContext{king: NoSquare}
	if p.variant == Antichess {
		ctx.mustCapture = p.hasCapture()
		return ctx
	}
	ctx.king = p.board.KingOf(p.turn)
	if ctx.king != NoSquare {
		ctx.checkers = p.kingAttackers(ctx.king, p.turn.Other(), p.board.occupied)
		ctx.blockers = p.SliderBlockers(ctx.king)
	}
	return ctx
}

// pseudoDests returns the destinations of the piece on from before
// king-safety filtering. En passant is not included.
func (p *Position) pseudoDests(from Sq) SquareSet {
	role := p.board.RoleAt(from)
	if role == NoRole {
		return 0
	}
	if color, _ := p.board.ColorAt(from); color != p.turn {
		return 0
	}
	occupied := p.board.occupied
	notOurs := ^p.board.byColor[p.turn]
	switch role {
	case Pawn:
		ds := PawnAttacks(p.turn, from) & p.board.byColor[p.turn.Other()]
		delta := Sq(8)
		if p.turn == Black {
			delta = -8
		}
		push := from + delta
		if !occupied.Has(push) {
			ds = ds.With(push)
			if from.RelativeRank(p.turn) == Rank2 && !occupied.Has(push+delta) {
				ds = ds.With(push + delta)
			}
		}
		return ds
	case Knight:
		return KnightAttacks(from) & notOurs
	case Bishop:
		return BishopAttacks(from, occupied) & notOurs
	case Rook:
		return RookAttacks(from, occupied) & notOurs
	case Queen:
		return QueenAttacks(from, occupied) & notOurs
	default:
		return KingAttacks(from) & notOurs
	}
}

// destsFrom returns the legal destinations of the piece on from,
// including the castling encodings onto the rook square.
func (p *Position) destsFrom(from Sq, ctx moveContext) SquareSet {
	if p.variant == Atomic {
		return p.atomicDestsFrom(from, ctx)
	}

	ds := p.pseudoDests(from)
	role := p.board.RoleAt(from)

	if p.variant == Antichess {
		if ctx.mustCapture {
			ds &= p.board.byColor[p.turn.Other()]
			if ep := p.legalEpCapture(from, ctx); ep != NoSquare {
				ds = ds.With(ep)
			}
		} else if role == Pawn {
			if ep := p.legalEpCapture(from, ctx); ep != NoSquare {
				ds = ds.With(ep)
			}
		}
		return ds
	}

	if from == ctx.king {
		occNoKing := p.board.occupied.Without(from)
		for candidates := ds; candidates != 0; {
			to := candidates.Pop()
			if p.kingAttackers(to, p.turn.Other(), occNoKing) != 0 {
				ds = ds.Without(to)
			}
		}
		ds |= p.castlingDests(QueenSide, ctx) | p.castlingDests(KingSide, ctx)
		return ds
	}

	if ctx.checkers != 0 {
		// With two checkers only the king may move.
		if ctx.checkers.MoreThanOne() {
			return 0
		}
		checker := ctx.checkers.First()
		ds &= Between(ctx.king, checker).With(checker)
	}
	if ctx.blockers.Has(from) {
		ds &= Line(ctx.king, from)
	}
	if role == Pawn {
		if ep := p.legalEpCapture(from, ctx); ep != NoSquare {
			ds = ds.With(ep)
		}
	}
	return ds
}

// legalEpCapture returns the en passant target if the pawn on from may
// legally capture en passant, else NoSquare. Legality is verified by
// recomputing the king's attackers with both pawns removed, which
// covers the discovered check along the shared rank.
func (p *Position) legalEpCapture(from Sq, ctx moveContext) Sq {
	if p.epSquare == NoSquare || p.board.RoleAt(from) != Pawn {
		return NoSquare
	}
	if !PawnAttacks(p.turn, from).Has(p.epSquare) {
		return NoSquare
	}
	captured := p.epSquare ^ 8
	if ctx.king != NoSquare {
		occupied := p.board.occupied.
			Without(from).
			Without(captured).
			With(p.epSquare)
		// The captured pawn is still in the role sets; mask it out of
		// the attacker set instead of rebuilding the board.
		if p.kingAttackers(ctx.king, p.turn.Other(), occupied).Without(captured) != 0 {
			return NoSquare
		}
	}
	return p.epSquare
}

// castlingDests returns the castle move encoding (the rook's square)
// if castling on the wing is legal, else the empty set.
func (p *Position) castlingDests(wing Wing, ctx moveContext) SquareSet {
	rook := p.castles.RookOf(p.turn, wing)
	if rook == NoSquare || ctx.checkers != 0 || ctx.king == NoSquare {
		return 0
	}
	if p.castles.PathOf(p.turn, wing)&p.board.occupied != 0 {
		return 0
	}
	kingTo := wing.kingCastleTo(p.turn)
	occNoKing := p.board.occupied.Without(ctx.king)
	transit := Between(ctx.king, kingTo).With(kingTo)
	for transit != 0 {
		sq := transit.Pop()
		if p.kingAttackers(sq, p.turn.Other(), occNoKing) != 0 {
			return 0
		}
	}
	after := p.board.occupied.
		Without(ctx.king).
		Without(rook).
		With(wing.rookCastleTo(p.turn)).
		With(kingTo)
	if p.kingAttackers(kingTo, p.turn.Other(), after) != 0 {
		return 0
	}
	return rook.Set()
}

// Dests returns the legal destination squares of every piece of the
// side to move, keyed by origin square. Castling appears as the king
// moving onto its own rook.
func (p *Position) Dests() map[Sq]SquareSet {
	ctx := p.context()
	dests := make(map[Sq]SquareSet)
	for pieces := p.board.byColor[p.turn]; pieces != 0; {
		from := pieces.Pop()
		if ds := p.destsFrom(from, ctx); ds != 0 {
			dests[from] = ds
		}
	}
	return dests
}

// LegalDrops returns the squares on which at least one piece from the
// pocket may be dropped.
func (p *Position) LegalDrops() SquareSet {
	if p.pockets == nil {
		return 0
	}
	var ds SquareSet
	for role := Pawn; role <= King; role++ {
		if p.pockets.Count(p.turn, role) > 0 {
			ds |= p.dropDests(role)
		}
	}
	return ds
}

// dropDests returns the legal drop squares for one role.
func (p *Position) dropDests(role Role) SquareSet {
	if p.pockets == nil || p.pockets.Count(p.turn, role) == 0 {
		return 0
	}
	ds := ^p.board.occupied
	ctx := p.context()
	if ctx.checkers != 0 {
		if ctx.checkers.MoreThanOne() {
			return 0
		}
		ds &= Between(ctx.king, ctx.checkers.First())
	}
	if role == Pawn {
		ds &^= backranksSet
	}
	return ds
}

// promotionRoles returns the roles a pawn may promote to.
func (p *Position) promotionRoles() []Role {
	if p.variant == Antichess {
		return []Role{Queen, Rook, Bishop, Knight, King}
	}
	return []Role{Queen, Rook, Bishop, Knight}
}

// LegalMoves returns all legal moves, with pawn moves onto the last
// rank expanded into one move per promotion role and Crazyhouse drops
// included.
func (p *Position) LegalMoves() []Move {
	var moves []Move
	ctx := p.context()
	for pieces := p.board.byColor[p.turn]; pieces != 0; {
		from := pieces.Pop()
		role := p.board.RoleAt(from)
		for ds := p.destsFrom(from, ctx); ds != 0; {
			to := ds.Pop()
			if role == Pawn && to.RelativeRank(p.turn) == Rank8 {
				for _, promotion := range p.promotionRoles() {
					moves = append(moves, Move{From: from, To: to, Promotion: promotion})
				}
			} else {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	if p.pockets != nil {
		for role := Pawn; role <= King; role++ {
			for ds := p.dropDests(role); ds != 0; {
				moves = append(moves, DropMove(role, ds.Pop()))
			}
		}
	}
	return moves
}

// LegalMovesWithAlternateCastling is LegalMoves plus, for each legal
// castle, the alternate encoding of the king stepping to its final
// square (when distinct from the rook encoding).
func (p *Position) LegalMovesWithAlternateCastling() []Move {
	moves := p.LegalMoves()
	ctx := p.context()
	if ctx.king == NoSquare {
		return moves
	}
	for _, wing := range [2]Wing{QueenSide, KingSide} {
		if p.castlingDests(wing, ctx) == 0 {
			continue
		}
		kingTo := wing.kingCastleTo(p.turn)
		rook := p.castles.RookOf(p.turn, wing)
		if kingTo != rook {
			moves = append(moves, Move{From: ctx.king, To: kingTo})
		}
	}
	return moves
}

// hasCapture reports whether the side to move has any capturing move,
// used for the Antichess forced-capture rule.
func (p *Position) hasCapture() bool {
	them := p.board.byColor[p.turn.Other()]
	occupied := p.board.occupied
	for pieces := p.board.byColor[p.turn]; pieces != 0; {
		from := pieces.Pop()
		role := p.board.RoleAt(from)
		var attacks SquareSet
		if role == Pawn {
			attacks = PawnAttacks(p.turn, from)
			if p.epSquare != NoSquare && attacks.Has(p.epSquare) {
				return true
			}
		} else {
			attacks = Attacks(Piece{Color: p.turn, Role: role}, from, occupied)
		}
		if attacks&them != 0 {
			return true
		}
	}
	return false
}

// normalizeMove rewrites the alternate castling encoding (king steps
// two files) to the canonical king-onto-rook encoding.
func (p *Position) normalizeMove(m Move) Move {
	if m.IsDrop() || m == NullMove {
		return m
	}
	if p.board.RoleAt(m.From) != King {
		return m
	}
	if color, _ := p.board.ColorAt(m.From); color != p.turn {
		return m
	}
	if p.board.ByPiece(p.turn, Rook).Has(m.To) {
		return m // already king-onto-rook
	}
	if m.From.Rank() == m.To.Rank() {
		switch m.To.File() - m.From.File() {
		case 2:
			if rook := p.castles.RookOf(p.turn, KingSide); rook != NoSquare {
				return Move{From: m.From, To: rook}
			}
		case -2:
			if rook := p.castles.RookOf(p.turn, QueenSide); rook != NoSquare {
				return Move{From: m.From, To: rook}
			}
		}
	}
	return m
}

// IsLegal reports whether the move is legal in this position. Both
// castling encodings are accepted.
func (p *Position) IsLegal(m Move) bool {
	if m == NullMove {
		return false
	}
	if m.IsDrop() {
		if p.pockets == nil || m.Drop == NoRole {
			return false
		}
		return p.dropDests(m.Drop).Has(m.To)
	}
	m = p.normalizeMove(m)
	role := p.board.RoleAt(m.From)
	if role == NoRole {
		return false
	}
	if role == Pawn && m.To.RelativeRank(p.turn) == Rank8 {
		valid := false
		for _, promotion := range p.promotionRoles() {
			valid = valid || promotion == m.Promotion
		}
		if !valid {
			return false
		}
	} else if m.Promotion != NoRole {
		return false
	}
	ctx := p.context()
	return p.destsFrom(m.From, ctx).Has(m.To)
}

// Play validates and applies a move, returning the resulting position.
func (p *Position) Play(m Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, &PlayError{Move: m, Fen: p.Fen()}
	}
	return p.PlayUnchecked(p.normalizeMove(m)), nil
}

// PlayNull passes the move to the opponent. The en passant square is
// cleared and the clocks advance.
func (p *Position) PlayNull() *Position {
	pp := p.clone()
	pp.epSquare = NoSquare
	pp.halfmoves++
	pp.flipTurn()
	return pp
}

func (p *Position) clone() *Position {
	pp := *p
	if p.pockets != nil {
		pockets := *p.pockets
		pp.pockets = &pockets
	}
	if p.remainingChecks != nil {
		checks := *p.remainingChecks
		pp.remainingChecks = &checks
	}
	return &pp
}

func (p *Position) flipTurn() {
	if p.turn == Black {
		p.fullmoves++
	}
	p.turn = p.turn.Other()
}

// PlayUnchecked applies a move without legality checking. The castling
// move must be in the canonical king-onto-rook encoding.
func (p *Position) PlayUnchecked(m Move) *Position {
	pp := p.clone()
	epSquare := p.epSquare
	pp.epSquare = NoSquare
	pp.halfmoves++

	switch {
	case m == NullMove:
		// nothing to do

	case m.IsDrop():
		pp.pockets.remove(pp.turn, m.Drop)
		pp.board = pp.board.SetPieceAt(m.To, Piece{Color: pp.turn, Role: m.Drop})

	case pp.board.RoleAt(m.From) == King && pp.board.ByPiece(pp.turn, Rook).Has(m.To):
		// Castling: king onto its own rook.
		wing := KingSide
		if m.To < m.From {
			wing = QueenSide
		}
		king, _ := pp.board.remove(m.From)
		rook, _ := pp.board.remove(m.To)
		(&pp.board).put(wing.kingCastleTo(pp.turn), king)
		(&pp.board).put(wing.rookCastleTo(pp.turn), rook)
		pp.castles.discardColor(pp.turn)

	default:
		piece, _ := pp.board.PieceAt(m.From)
		captureSq := m.To
		captured, isCapture := pp.board.PieceAt(m.To)

		if piece.Role == Pawn {
			pp.halfmoves = 0
			switch {
			case m.To-m.From == 16 || m.From-m.To == 16:
				skipped := (m.From + m.To) / 2
				if PawnAttacks(pp.turn, skipped)&pp.board.ByPiece(pp.turn.Other(), Pawn) != 0 {
					pp.epSquare = skipped
				}
			case m.To == epSquare:
				captureSq = epSquare ^ 8
				captured, isCapture = pp.board.PieceAt(captureSq)
			}
		}

		if isCapture {
			pp.halfmoves = 0
			pp.board = pp.board.RemovePieceAt(captureSq)
			pp.castles.discardRookAt(captureSq)
			if pp.pockets != nil {
				role := captured.Role
				if captured.Promoted {
					role = Pawn
				}
				pp.pockets.add(pp.turn, role)
			}
		}

		pp.board = pp.board.RemovePieceAt(m.From)
		if m.Promotion != NoRole {
			piece = Piece{Color: pp.turn, Role: m.Promotion, Promoted: pp.pockets != nil}
		}
		(&pp.board).put(m.To, piece)

		switch piece.Role {
		case King:
			pp.castles.discardColor(pp.turn)
		case Rook:
			pp.castles.discardRookAt(m.From)
		}

		if pp.variant == Atomic && isCapture {
			pp.explode(m.To)
		}
	}

	if pp.remainingChecks != nil {
		if otherKing := pp.board.KingOf(pp.turn.Other()); otherKing != NoSquare {
			if pp.board.attacksTo(otherKing, pp.turn, pp.board.occupied) != 0 {
				pp.remainingChecks[pp.turn]--
			}
		}
	}

	pp.flipTurn()
	return pp
}

// explode applies the Atomic capture explosion centered on sq: the
// capturing piece and every non-pawn piece on the surrounding squares
// are removed from the board.
func (p *Position) explode(sq Sq) {
	p.board = p.board.RemovePieceAt(sq)
	p.castles.discardRookAt(sq)
	blast := KingAttacks(sq) & p.board.occupied &^ p.board.ByRole(Pawn)
	for blast != 0 {
		target := blast.Pop()
		if piece, _ := p.board.PieceAt(target); piece.Role == King {
			p.castles.discardColor(piece.Color)
		}
		p.board = p.board.RemovePieceAt(target)
		p.castles.discardRookAt(target)
	}
}

// Termination.

// hasLegalMoves avoids materializing the move list.
func (p *Position) hasLegalMoves() bool {
	ctx := p.context()
	for pieces := p.board.byColor[p.turn]; pieces != 0; {
		if p.destsFrom(pieces.Pop(), ctx) != 0 {
			return true
		}
	}
	if p.pockets != nil {
		for role := Pawn; role <= King; role++ {
			if p.dropDests(role) != 0 {
				return true
			}
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.Checkers() != 0 && !p.hasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal moves and
// is not in check. Note that in Antichess this wins for the side to
// move rather than drawing.
func (p *Position) IsStalemate() bool {
	return p.Checkers() == 0 && !p.hasLegalMoves()
}

// IsInsufficientMaterial reports whether neither side can deliver mate
// by any sequence of legal moves.
func (p *Position) IsInsufficientMaterial() bool {
	switch p.variant {
	case Antichess, Crazyhouse, KingOfTheHill:
		return false
	case ThreeCheck:
		return p.board.occupied == p.board.Kings()
	}
	occupied := p.board.occupied
	kings := p.board.Kings()
	if occupied == kings {
		return true
	}
	if p.board.ByRole(Pawn)|p.board.ByRole(Rook)|p.board.ByRole(Queen) != 0 {
		return false
	}
	knights := p.board.ByRole(Knight)
	bishops := p.board.ByRole(Bishop)
	if knights != 0 {
		// A lone minor piece cannot mate.
		return bishops == 0 && !knights.MoreThanOne()
	}
	return bishops&LightSquares == bishops || bishops&DarkSquares == bishops
}

// IsVariantEnd reports whether a variant-specific winning condition
// has been reached.
func (p *Position) IsVariantEnd() bool {
	_, over := p.variantOutcome()
	return over
}

// IsGameOver reports whether the game has ended by any rule.
func (p *Position) IsGameOver() bool {
	if _, over := p.variantOutcome(); over {
		return true
	}
	return p.IsInsufficientMaterial() || !p.hasLegalMoves()
}

// Outcome returns the result of the game, or NoOutcome while it is
// still in progress.
func (p *Position) Outcome() Outcome {
	if outcome, over := p.variantOutcome(); over {
		return outcome
	}
	if !p.hasLegalMoves() {
		switch {
		case p.variant == Antichess:
			return wonBy(p.turn)
		case p.Checkers() != 0:
			return wonBy(p.turn.Other())
		default:
			return Drawn
		}
	}
	if p.IsInsufficientMaterial() {
		return Drawn
	}
	return NoOutcome
}
