package chess

import (
	"errors"
	"fmt"
)

// FEN field errors. ParseFen wraps one of these for every syntactic
// failure, so callers can branch with errors.Is.
var (
	ErrInvalidBoard           = errors.New("chess: invalid board in fen")
	ErrInvalidTurn            = errors.New("chess: invalid turn in fen")
	ErrInvalidCastling        = errors.New("chess: invalid castling rights in fen")
	ErrInvalidEpSquare        = errors.New("chess: invalid en passant square in fen")
	ErrInvalidHalfmoves       = errors.New("chess: invalid halfmove clock in fen")
	ErrInvalidFullmoves       = errors.New("chess: invalid fullmove number in fen")
	ErrInvalidPockets         = errors.New("chess: invalid pockets in fen")
	ErrInvalidRemainingChecks = errors.New("chess: invalid remaining checks in fen")
)

// Position setup errors. FromSetup wraps one of these when the setup
// does not describe a playable position of the chosen variant.
var (
	ErrEmptyBoard      = errors.New("chess: empty board")
	ErrKings           = errors.New("chess: missing or extra kings")
	ErrOppositeCheck   = errors.New("chess: side not to move is in check")
	ErrPawnsOnBackrank = errors.New("chess: pawns on backrank")
	ErrImpossibleCheck = errors.New("chess: impossible check configuration")
	ErrVariant         = errors.New("chess: setup not valid for variant")
)

// PlayError reports an attempt to play an illegal move. The position's
// FEN is included to aid debugging.
type PlayError struct {
	Move Move
	Fen  string
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("chess: illegal move %s in %s", e.Move.Uci(), e.Fen)
}
