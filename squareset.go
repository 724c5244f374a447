package chess

// SquareSet is a bitboard: a set of squares encoded in a 64-bit word,
// bit i representing square i. SquareSets are values; the usual Go
// operators |, &, ^ and &^ act as union, intersection, symmetric
// difference and difference.
type SquareSet uint64

// Common masks.
const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = 0xFFFF_FFFF_FFFF_FFFF

	FileASet SquareSet = 0x0101_0101_0101_0101
	Rank1Set SquareSet = 0x0000_0000_0000_00FF

	LightSquares SquareSet = 0x55AA_55AA_55AA_55AA
	DarkSquares  SquareSet = 0xAA55_AA55_AA55_AA55

	centerSquares SquareSet = 0x0000_0018_1800_0000 // d4, e4, d5, e5
	backranksSet  SquareSet = 0xFF00_0000_0000_00FF
)

// SquareSetOf returns the set containing exactly the given squares.
func SquareSetOf(sqs ...Sq) SquareSet {
	var s SquareSet
	for _, sq := range sqs {
		s |= sq.Set()
	}
	return s
}

// Set returns the single-square set for sq, or the empty set for NoSquare.
func (sq Sq) Set() SquareSet {
	if sq < A1 || sq > H8 {
		return 0
	}
	return SquareSet(1) << uint(sq)
}

// FileSet returns the set of all squares on the given file.
func FileSet(file int) SquareSet { return FileASet << uint(file) }

// RankSet returns the set of all squares on the given rank.
func RankSet(rank int) SquareSet { return Rank1Set << uint(8*rank) }

// Has reports whether sq is a member of the set.
func (s SquareSet) Has(sq Sq) bool { return s&sq.Set() != 0 }

// With returns the set with sq added.
func (s SquareSet) With(sq Sq) SquareSet { return s | sq.Set() }

// Without returns the set with sq removed.
func (s SquareSet) Without(sq Sq) SquareSet { return s &^ sq.Set() }

// Toggled returns the set with sq's membership flipped.
func (s SquareSet) Toggled(sq Sq) SquareSet { return s ^ sq.Set() }

// IsEmpty reports whether no square is in the set.
func (s SquareSet) IsEmpty() bool { return s == 0 }

// Count returns the number of squares in the set.
func (s SquareSet) Count() int {
	// SWAR popcount.
	x := uint64(s)
	x = x - (x>>1)&0x5555555555555555
	x = x&0x3333333333333333 + x>>2&0x3333333333333333
	x = (x + x>>4) & 0x0F0F0F0F0F0F0F0F
	return int(x * 0x0101010101010101 >> 56)
}

// MoreThanOne reports whether the set has at least two members.
func (s SquareSet) MoreThanOne() bool { return s&(s-1) != 0 }

// ntzTable maps (x & -x) % 131 to the number of trailing zeros of x.
// 131 is prime with 2 as a primitive root, so the 64 single-bit residues
// are distinct. Index 0 corresponds to x == 0 and maps to 64.
var ntzTable = [131]int8{
	64, 0, 1, 0, 2, 46, 0, 0, 3, 14, 47, 56, 0, 18, 0, 0,
	4, 43, 15, 35, 48, 38, 57, 23, 0, 0, 19, 0, 0, 51, 0, 29,
	5, 0, 44, 12, 16, 41, 36, 0, 49, 0, 39, 0, 58, 60, 24, 0,
	0, 62, 0, 0, 20, 26, 0, 0, 0, 0, 52, 0, 0, 0, 30, 0,
	6, 0, 0, 0, 45, 0, 13, 55, 17, 0, 42, 34, 37, 22, 0, 0,
	50, 28, 0, 11, 40, 0, 0, 0, 59, 0, 61, 0, 25, 0, 0, 0,
	0, 0, 63, 0, 0, 54, 0, 33, 21, 0, 27, 10, 0, 0, 0, 0,
	0, 0, 0, 0, 53, 32, 0, 9, 0, 0, 0, 0, 31, 8, 0, 0,
	7, 0, 0,
}

// ntz returns the number of trailing zero bits in x; 64 for x == 0.
func ntz(x uint64) int {
	return int(ntzTable[(x&-x)%131])
}

// nlz returns the number of leading zero bits in x; 64 for x == 0.
func nlz(x uint64) int {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return SquareSet(^x).Count()
}

// First returns the lowest square in the set, or NoSquare if empty.
func (s SquareSet) First() Sq {
	if s == 0 {
		return NoSquare
	}
	return Sq(ntz(uint64(s)))
}

// Last returns the highest square in the set, or NoSquare if empty.
func (s SquareSet) Last() Sq {
	if s == 0 {
		return NoSquare
	}
	return Sq(63 - nlz(uint64(s)))
}

// SingleSquare returns the only member of the set, or NoSquare if the
// set is empty or has more than one member.
func (s SquareSet) SingleSquare() Sq {
	if s == 0 || s.MoreThanOne() {
		return NoSquare
	}
	return s.First()
}

// Pop removes and returns the lowest square of the set. It returns
// NoSquare if the set is empty.
func (s *SquareSet) Pop() Sq {
	sq := s.First()
	*s &= *s - 1
	return sq
}

// Squares returns the members of the set in ascending order.
func (s SquareSet) Squares() []Sq {
	sqs := make([]Sq, 0, s.Count())
	for s != 0 {
		sqs = append(sqs, s.Pop())
	}
	return sqs
}

// SquaresReversed returns the members of the set in descending order.
func (s SquareSet) SquaresReversed() []Sq {
	sqs := make([]Sq, 0, s.Count())
	for s != 0 {
		sq := s.Last()
		sqs = append(sqs, sq)
		s = s.Without(sq)
	}
	return sqs
}

// Shl shifts the set towards higher squares. Shifts of 64 or more
// return the empty set.
func (s SquareSet) Shl(n uint) SquareSet {
	if n >= 64 {
		return 0
	}
	return s << n
}

// Shr shifts the set towards lower squares. Shifts of 64 or more
// return the empty set.
func (s SquareSet) Shr(n uint) SquareSet {
	if n >= 64 {
		return 0
	}
	return s >> n
}

// FlipVertical mirrors the set along the horizontal axis between the
// 4th and 5th ranks (a byte reversal of the 64-bit word).
func (s SquareSet) FlipVertical() SquareSet {
	const (
		k1 SquareSet = 0x00FF_00FF_00FF_00FF
		k2 SquareSet = 0x0000_FFFF_0000_FFFF
	)
	s = s>>8&k1 | s&k1<<8
	s = s>>16&k2 | s&k2<<16
	return s>>32 | s<<32
}

// MirrorHorizontal mirrors the set along the vertical axis between the
// d and e files (a bit reversal within each byte).
func (s SquareSet) MirrorHorizontal() SquareSet {
	const (
		k1 SquareSet = 0x5555_5555_5555_5555
		k2 SquareSet = 0x3333_3333_3333_3333
		k4 SquareSet = 0x0F0F_0F0F_0F0F_0F0F
	)
	s = s>>1&k1 | s&k1<<1
	s = s>>2&k2 | s&k2<<2
	return s>>4&k4 | s&k4<<4
}

// String renders the set as an 8x8 diagram, rank 8 first.
func (s SquareSet) String() string {
	b := make([]byte, 0, 9*8)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file <= 7; file++ {
			if s.Has(Square(file, rank)) {
				b = append(b, 'X')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
