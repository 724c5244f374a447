package pgn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fianchetto/chess"
)

// ShapeColor is one of the four colors of PGN board annotations.
type ShapeColor byte

const (
	Green  ShapeColor = 'G'
	Red    ShapeColor = 'R'
	Yellow ShapeColor = 'Y'
	Blue   ShapeColor = 'B'
)

// CommentShape is a colored circle (From == To) or arrow drawn on the
// board by a [%csl ...] or [%cal ...] annotation.
type CommentShape struct {
	Color ShapeColor
	From  chess.Sq
	To    chess.Sq
}

// IsCircle reports whether the shape is a circle rather than an arrow.
func (s CommentShape) IsCircle() bool { return s.From == s.To }

func (s CommentShape) String() string {
	if s.IsCircle() {
		return string(byte(s.Color)) + s.From.String()
	}
	return string(byte(s.Color)) + s.From.String() + s.To.String()
}

// Evaluation is an engine evaluation from a [%eval ...] annotation:
// either an advantage in pawns or a forced mate in Mate moves, with an
// optional search depth.
type Evaluation struct {
	Pawns  float64
	Mate   int
	Depth  int
	IsMate bool
}

// PawnsEval returns a pawn-advantage evaluation. A depth of 0 means
// unknown.
func PawnsEval(pawns float64, depth int) Evaluation {
	return Evaluation{Pawns: pawns, Depth: depth}
}

// MateEval returns a mate-in-m evaluation, negative for a mate against
// the player.
func MateEval(mate, depth int) Evaluation {
	return Evaluation{Mate: mate, Depth: depth, IsMate: true}
}

func (e Evaluation) String() string {
	var s string
	if e.IsMate {
		s = "#" + strconv.Itoa(e.Mate)
	} else {
		s = fmt.Sprintf("%.2f", e.Pawns)
	}
	if e.Depth > 0 {
		s += "," + strconv.Itoa(e.Depth)
	}
	return s
}

// Comment is the structured view of one brace comment: the free text
// with every recognized annotation extracted.
type Comment struct {
	Text   string
	Shapes []CommentShape
	Clock  *time.Duration // remaining time, [%clk]
	Emt    *time.Duration // elapsed move time, [%emt]
	Eval   *Evaluation
}

var (
	clkRe  = regexp.MustCompile(`\[%clk\s+(\d+):(\d+):(\d+(?:\.\d+)?)\]`)
	emtRe  = regexp.MustCompile(`\[%emt\s+(\d+):(\d+):(\d+(?:\.\d+)?)\]`)
	evalRe = regexp.MustCompile(`\[%eval\s+(?:#([+-]?\d+)|([+-]?\d+(?:\.\d+)?))(?:,(\d+))?\]`)
	cslRe  = regexp.MustCompile(`\[%csl\s+([RGYB][a-h][1-8](?:\s*,\s*[RGYB][a-h][1-8])*)\]`)
	calRe  = regexp.MustCompile(`\[%cal\s+([RGYB][a-h][1-8][a-h][1-8](?:\s*,\s*[RGYB][a-h][1-8][a-h][1-8])*)\]`)
)

// ParseComment extracts the structured annotations from the text of a
// brace comment. The annotations are removed from the text; leftover
// whitespace is collapsed.
func ParseComment(text string) Comment {
	var c Comment

	text = clkRe.ReplaceAllStringFunc(text, func(match string) string {
		if c.Clock == nil {
			d := parseDuration(clkRe.FindStringSubmatch(match))
			c.Clock = &d
		}
		return " "
	})
	text = emtRe.ReplaceAllStringFunc(text, func(match string) string {
		if c.Emt == nil {
			d := parseDuration(emtRe.FindStringSubmatch(match))
			c.Emt = &d
		}
		return " "
	})
	text = evalRe.ReplaceAllStringFunc(text, func(match string) string {
		if c.Eval == nil {
			sub := evalRe.FindStringSubmatch(match)
			depth := 0
			if sub[3] != "" {
				depth, _ = strconv.Atoi(sub[3])
			}
			var e Evaluation
			if sub[1] != "" {
				mate, _ := strconv.Atoi(sub[1])
				e = MateEval(mate, depth)
			} else {
				pawns, _ := strconv.ParseFloat(sub[2], 64)
				e = PawnsEval(pawns, depth)
			}
			c.Eval = &e
		}
		return " "
	})
	text = cslRe.ReplaceAllStringFunc(text, func(match string) string {
		for _, field := range strings.Split(cslRe.FindStringSubmatch(match)[1], ",") {
			if shape, ok := parseShape(strings.TrimSpace(field)); ok {
				c.Shapes = append(c.Shapes, shape)
			}
		}
		return " "
	})
	text = calRe.ReplaceAllStringFunc(text, func(match string) string {
		for _, field := range strings.Split(calRe.FindStringSubmatch(match)[1], ",") {
			if shape, ok := parseShape(strings.TrimSpace(field)); ok {
				c.Shapes = append(c.Shapes, shape)
			}
		}
		return " "
	})

	c.Text = strings.Join(strings.Fields(text), " ")
	return c
}

func parseShape(s string) (CommentShape, bool) {
	switch len(s) {
	case 3:
		from := squareOf(s[1:3])
		if from == chess.NoSquare {
			return CommentShape{}, false
		}
		return CommentShape{Color: ShapeColor(s[0]), From: from, To: from}, true
	case 5:
		from, to := squareOf(s[1:3]), squareOf(s[3:5])
		if from == chess.NoSquare || to == chess.NoSquare {
			return CommentShape{}, false
		}
		return CommentShape{Color: ShapeColor(s[0]), From: from, To: to}, true
	}
	return CommentShape{}, false
}

func squareOf(s string) chess.Sq {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare
	}
	return chess.Square(int(s[0]-'a'), int(s[1]-'1'))
}

func parseDuration(sub []string) time.Duration {
	hours, _ := strconv.Atoi(sub[1])
	minutes, _ := strconv.Atoi(sub[2])
	seconds, _ := strconv.ParseFloat(sub[3], 64)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
}

func formatDuration(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := float64(d%time.Minute) / float64(time.Second)
	s := fmt.Sprintf("%d:%02d:%06.3f", hours, minutes, seconds)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// String serializes the comment: text first, then shapes (circles
// before arrows), evaluation, elapsed move time and clock, each in its
// bracketed form.
func (c Comment) String() string {
	var parts []string
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	var circles, arrows []string
	for _, shape := range c.Shapes {
		if shape.IsCircle() {
			circles = append(circles, shape.String())
		} else {
			arrows = append(arrows, shape.String())
		}
	}
	if len(circles) > 0 {
		parts = append(parts, "[%csl "+strings.Join(circles, ",")+"]")
	}
	if len(arrows) > 0 {
		parts = append(parts, "[%cal "+strings.Join(arrows, ",")+"]")
	}
	if c.Eval != nil {
		parts = append(parts, "[%eval "+c.Eval.String()+"]")
	}
	if c.Emt != nil {
		parts = append(parts, "[%emt "+formatDuration(*c.Emt)+"]")
	}
	if c.Clock != nil {
		parts = append(parts, "[%clk "+formatDuration(*c.Clock)+"]")
	}
	return strings.Join(parts, " ")
}
