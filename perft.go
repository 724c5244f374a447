package chess

import (
	"time"

	"github.com/fianchetto/chess/internal/logging"
)

var log = logging.GetLog()

// Perft counts the legal move paths of exactly the given depth from
// the position. Promotions count once per promotion role and
// Crazyhouse drops are expanded like any other move.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	start := time.Now()
	nodes := perft(p, depth)
	log.Debugf("perft(%d) %s: %d nodes in %v", depth, p.Fen(), nodes, time.Since(start))
	return nodes
}

func perft(p *Position, depth int) uint64 {
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += perft(p.PlayUnchecked(m), depth-1)
	}
	return nodes
}
