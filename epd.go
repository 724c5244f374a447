package chess

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// EPD is an Extended Position Description: a position given by its
// first four FEN fields plus a list of opcode operations such as
// "bm" (best move), "am" (avoid move), "id" and free-form comments.
//
// The halfmove clock and fullmove number may instead be supplied by
// the "hmvc" and "fmvn" operations; both default as in a truncated
// FEN.
type EPD struct {
	Position   *Position
	Id         string
	BestMoves  []Move            // bm
	AvoidMoves []Move            // am
	Ops        map[string]string // remaining operations, unquoted
}

// ParseEPD parses one EPD line. Move operands are resolved as SAN
// against the position, so "bm" and "am" yield concrete moves.
func ParseEPD(line string, variant Variant) (*EPD, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: truncated epd", ErrInvalidBoard)
	}
	rest := strings.TrimSpace(strings.Join(fields[4:], " "))

	setup, err := ParseFen(strings.Join(fields[:4], " "))
	if err != nil {
		return nil, err
	}

	epd := &EPD{Ops: make(map[string]string)}

	// Operations: opcode operands... ';', with quoted string operands.
	ops := make(map[string]string)
	var order []string
	for _, op := range splitOps(rest) {
		opcode, operand, ok := strings.Cut(op, " ")
		if !ok {
			opcode, operand = op, ""
		}
		if opcode == "" {
			continue
		}
		ops[opcode] = trimQuotes(strings.TrimSpace(operand))
		order = append(order, opcode)
	}

	if hmvc, ok := ops["hmvc"]; ok {
		fmt.Sscanf(hmvc, "%d", &setup.Halfmoves)
	}
	if fmvn, ok := ops["fmvn"]; ok {
		fmt.Sscanf(fmvn, "%d", &setup.Fullmoves)
	}

	epd.Position, err = FromSetup(setup, variant, false)
	if err != nil {
		return nil, err
	}

	for _, opcode := range order {
		operand := ops[opcode]
		switch opcode {
		case "hmvc", "fmvn":
			// already folded into the position
		case "id":
			epd.Id = operand
		case "bm", "am":
			var moves []Move
			for _, san := range strings.Fields(operand) {
				m, err := epd.Position.ParseSan(san)
				if err != nil {
					return nil, fmt.Errorf("chess: epd %s operand %q: %v", opcode, san, err)
				}
				moves = append(moves, m)
			}
			if opcode == "bm" {
				epd.BestMoves = moves
			} else {
				epd.AvoidMoves = moves
			}
		default:
			epd.Ops[opcode] = operand
		}
	}
	return epd, nil
}

// splitOps splits the operations section on ';', honoring quotes.
func splitOps(s string) []string {
	var ops []string
	start, quoted := 0, false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				ops = append(ops, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		ops = append(ops, tail)
	}
	return ops
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// String serializes the EPD: the four position fields followed by the
// operations, each terminated by ';'. String operands are quoted.
func (e *EPD) String() string {
	var buf bytes.Buffer
	fen := strings.Fields(e.Position.Fen())
	buf.WriteString(strings.Join(fen[:4], " "))

	writeOp := func(opcode, operand string) {
		buf.WriteByte(' ')
		buf.WriteString(opcode)
		if operand != "" {
			buf.WriteByte(' ')
			buf.WriteString(operand)
		}
		buf.WriteByte(';')
	}
	if len(e.BestMoves) > 0 {
		sans := make([]string, len(e.BestMoves))
		for i, m := range e.BestMoves {
			sans[i] = e.Position.MakeSan(m)
		}
		writeOp("bm", strings.Join(sans, " "))
	}
	if len(e.AvoidMoves) > 0 {
		sans := make([]string, len(e.AvoidMoves))
		for i, m := range e.AvoidMoves {
			sans[i] = e.Position.MakeSan(m)
		}
		writeOp("am", strings.Join(sans, " "))
	}
	if e.Id != "" {
		writeOp("id", `"`+e.Id+`"`)
	}
	if e.Position.Halfmoves() != 0 {
		writeOp("hmvc", fmt.Sprint(e.Position.Halfmoves()))
	}
	if e.Position.Fullmoves() != 1 {
		writeOp("fmvn", fmt.Sprint(e.Position.Fullmoves()))
	}
	opcodes := make([]string, 0, len(e.Ops))
	for opcode := range e.Ops {
		opcodes = append(opcodes, opcode)
	}
	sort.Strings(opcodes)
	for _, opcode := range opcodes {
		writeOp(opcode, `"`+e.Ops[opcode]+`"`)
	}
	return buf.String()
}
