package board

import "fmt"

// Square represents a square on the board, indexed as rank*8+file: A1=0, B1=1, .., H1=7,
// A2=8, .., H8=63. Rank 0 is White's back rank and file 0 is the a-file. 6 bits.
type Square int8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

// Named squares for the four corners and the squares referenced by castling and the trivial
// endgame oracle. The full board is addressed via NewSquare, not a full enumeration of names.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare composes a square from a file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)*8 + Square(f)
}

// ParseSquare parses a file/rank rune pair, e.g. ('e', '4').
func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(file, rank), nil
}

// ParseSquareStr parses a square in algebraic notation, e.g. "e4".
func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %v", str)
	}
	return ParseSquare(runes[0], runes[1])
}

func (s Square) IsValid() bool {
	return s >= ZeroSquare && s < NumSquares
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) File() File {
	return File(s % 8)
}

// RelativeRank returns the rank as seen by the given color: rank 0 is always the color's
// own back rank.
func (s Square) RelativeRank(c Color) Rank {
	if c == White {
		return s.Rank()
	}
	return Rank(7 - int(s.Rank()))
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank represents a chess board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool {
	return r >= ZeroRank && r < NumRanks
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	if !r.IsValid() {
		return "?"
	}
	return string(rune('1' + r))
}

// File represents a chess board file, FileA=0 .. FileH=7. 3 bits.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f >= ZeroFile && f < NumFiles
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	if !f.IsValid() {
		return "?"
	}
	return string(rune('a' + f))
}

// AbsDiff returns the absolute difference between two files, as an int.
func AbsDiff(a, b File) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
