// Package pgn reads and writes chess games in Portable Game Notation
// (http://www.saremba.de/chessgml/standards/pgn/pgn-complete.htm),
// keeping the full variation tree with comments, annotation glyphs and
// the structured comment annotations (clocks, evaluations, shapes).
//
// The tree stores moves as SAN text without validating them against
// the rules, so human-authored and even slightly broken games survive
// a parse/write round trip.
package pgn

import (
	"sort"
	"strconv"
	"strings"
)

// NodeData is the payload of one move node: the SAN token, comments
// before and after the move, and numeric annotation glyphs.
type NodeData struct {
	San              string
	StartingComments []string
	Comments         []string
	Nags             []int
}

// Node is a parent in the game tree holding an ordered list of
// children. Children[0] continues the mainline; later children start
// sidelines.
type Node[T any] struct {
	Children []*ChildNode[T]
}

// ChildNode is a tree node carrying data. The root of a game is a bare
// Node; every other node is a ChildNode.
type ChildNode[T any] struct {
	Node[T]
	Data T
}

// Mainline returns the data of the chain of first children.
func (n *Node[T]) Mainline() []T {
	var line []T
	for len(n.Children) > 0 {
		line = append(line, n.Children[0].Data)
		n = &n.Children[0].Node
	}
	return line
}

// End returns the final node of the mainline.
func (n *Node[T]) End() *Node[T] {
	for len(n.Children) > 0 {
		n = &n.Children[0].Node
	}
	return n
}

// Transform maps the tree onto a new tree in a depth-first walk
// without recursion. For every child node, f receives the context of
// its parent, the node's data and the node's index among its siblings;
// it returns the transformed data and the context for the node's
// subtree, or ok=false to prune the subtree.
func Transform[T, U, C any](root *Node[T], ctx C, f func(ctx C, data T, childIndex int) (U, C, bool)) *Node[U] {
	newRoot := &Node[U]{}
	type frame struct {
		before *Node[T]
		after  *Node[U]
		ctx    C
	}
	stack := []frame{{before: root, after: newRoot, ctx: ctx}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, child := range fr.before.Children {
			data, childCtx, ok := f(fr.ctx, child.Data, i)
			if !ok {
				continue
			}
			newChild := &ChildNode[U]{Data: data}
			fr.after.Children = append(fr.after.Children, newChild)
			stack = append(stack, frame{
				before: &child.Node,
				after:  &newChild.Node,
				ctx:    childCtx,
			})
		}
	}
	return newRoot
}

// Game is a single PGN game: its headers, the comments before the
// first move, and the move tree.
type Game struct {
	Headers  map[string]string
	Comments []string
	Moves    *Node[NodeData]
}

// The Seven Tag Roster, in its required order.
var rosterTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// DefaultHeaders returns the Seven Tag Roster with placeholder values.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Event":  "?",
		"Site":   "?",
		"Date":   "????.??.??",
		"Round":  "?",
		"White":  "?",
		"Black":  "?",
		"Result": "*",
	}
}

// NewGame returns an empty game with default headers.
func NewGame() *Game {
	return &Game{
		Headers: DefaultHeaders(),
		Moves:   &Node[NodeData]{},
	}
}

// escape inverts the header value unescaping done by the parser.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Result returns the game's result string, defaulting to "*".
func (g *Game) Result() string {
	switch r := g.Headers["Result"]; r {
	case "1-0", "0-1", "1/2-1/2":
		return r
	}
	return "*"
}

// String returns the complete PGN of the game: the header section, a
// blank line, and the movetext terminated by the result and a newline.
func (g *Game) String() string {
	var buf strings.Builder
	for _, tag := range rosterTags {
		if value, ok := g.Headers[tag]; ok {
			buf.WriteString("[" + tag + " \"" + escape(value) + "\"]\n")
		}
	}
	extra := make([]string, 0, len(g.Headers))
	for tag := range g.Headers {
		if !isRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		buf.WriteString("[" + tag + " \"" + escape(g.Headers[tag]) + "\"]\n")
	}
	if len(g.Headers) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString(g.Movetext())
	buf.WriteByte('\n')
	return buf.String()
}

func isRosterTag(tag string) bool {
	for _, t := range rosterTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Movetext serializes the move tree with variations, comments and
// NAGs, terminated by the result token.
func (g *Game) Movetext() string {
	var tokens []string
	token := func(s string) { tokens = append(tokens, s) }

	for _, comment := range g.Comments {
		token("{ " + comment + " }")
	}

	// When the game starts from a position given in a FEN header, move
	// numbering continues from there.
	initialPly := 0
	if fen, ok := g.Headers["FEN"]; ok {
		initialPly = plyFromFen(fen)
	}

	type state int
	const (
		statePre state = iota
		stateSidelines
		stateEnd
	)
	type frame struct {
		state       state
		ply         int
		node        *ChildNode[NodeData]
		sidelines   []*ChildNode[NodeData]
		sidelineIdx int
		inVariation bool
	}

	var stack []frame
	if len(g.Moves.Children) > 0 {
		stack = append(stack, frame{
			ply:       initialPly,
			node:      g.Moves.Children[0],
			sidelines: g.Moves.Children[1:],
		})
	}
	forceMoveNumber := true
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		switch fr.state {
		case statePre:
			for _, comment := range fr.node.Data.StartingComments {
				token("{ " + comment + " }")
				forceMoveNumber = true
			}
			if fr.ply%2 == 0 {
				token(strconv.Itoa(fr.ply/2+1) + ".")
				forceMoveNumber = false
			} else if forceMoveNumber {
				token(strconv.Itoa((fr.ply+1)/2) + "...")
				forceMoveNumber = false
			}
			token(fr.node.Data.San)
			for _, nag := range fr.node.Data.Nags {
				token("$" + strconv.Itoa(nag))
				forceMoveNumber = true
			}
			for _, comment := range fr.node.Data.Comments {
				token("{ " + comment + " }")
				forceMoveNumber = true
			}
			fr.state = stateSidelines
		case stateSidelines:
			if fr.sidelineIdx < len(fr.sidelines) {
				sideline := fr.sidelines[fr.sidelineIdx]
				fr.sidelineIdx++
				token("(")
				forceMoveNumber = true
				stack = append(stack, frame{
					ply:         fr.ply,
					node:        sideline,
					inVariation: true,
				})
				continue
			}
			fr.state = stateEnd
			if len(fr.node.Children) > 0 {
				stack = append(stack, frame{
					ply:       fr.ply + 1,
					node:      fr.node.Children[0],
					sidelines: fr.node.Children[1:],
				})
			}
		case stateEnd:
			if fr.inVariation {
				token(")")
				forceMoveNumber = true
			}
			stack = stack[:len(stack)-1]
		}
	}

	token(g.Result())
	return strings.Join(tokens, " ")
}

// plyFromFen extracts the starting halfmove count from a FEN string,
// tolerating truncated input.
func plyFromFen(fen string) int {
	fields := strings.Fields(fen)
	blackToMove := len(fields) > 1 && fields[1] == "b"
	fullmoves := 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 1 {
			fullmoves = n
		}
	}
	ply := (fullmoves - 1) * 2
	if blackToMove {
		ply++
	}
	return ply
}
