// Package board implements the immutable Gomoku board, its move/capture
// mechanics, and content hashing (spec.md §3, §4.1, §4.2).
package board

// Size is the edge length of the square grid (spec.md §3).
const Size = 19

// Point is a single board coordinate.
type Point struct {
	X, Y int
}

// Board is an immutable, content-hashed position. All operations that would
// change the grid return a new Board; the receiver is never mutated.
type Board struct {
	position [Size][Size]Color

	moveIdx  int
	fromMove Point
	hasMove  bool
	lastMove Color

	captures [2]int // indexed by colorIndex(c)

	// freeThreesCount holds the free_three scorer's board-wide sum,
	// truncated to an integer for storage; the double-free-three check in
	// Apply compares the untruncated delta (which can be fractional, since
	// a half-open three scores 0.5) against 2 before truncating.
	freeThreesCount [2]int

	hash     Hash128
	hashedAt bool
}

// colorIndex maps Black/White to a dense 0/1 index for the capture and
// free-three-count arrays.
func colorIndex(c Color) int {
	if c == Black {
		return 0
	}
	return 1
}

// Empty returns the initial 19x19 board: no stones, move 0, no captures.
func Empty() *Board {
	return &Board{}
}

// OnBoard reports whether (x, y) is within [0, Size).
func OnBoard(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// IsEmpty reports whether (x, y) holds no stone. The caller must ensure the
// point is on the board; IsEmpty does not bounds-check.
func (b *Board) IsEmpty(x, y int) bool {
	return b.position[x][y] == Empty
}

// At returns the color at (x, y), or Empty if the point is off-board.
func (b *Board) At(x, y int) Color {
	if !OnBoard(x, y) {
		return Empty
	}
	return b.position[x][y]
}

// MoveIdx returns the number of plies played to reach this board.
func (b *Board) MoveIdx() int {
	return b.moveIdx
}

// FromMove returns the coordinates of the stone that produced this board,
// and false for the initial empty board.
func (b *Board) FromMove() (Point, bool) {
	return b.fromMove, b.hasMove
}

// LastMoveColor returns the color that played FromMove, and false for the
// initial empty board.
func (b *Board) LastMoveColor() (Color, bool) {
	return b.lastMove, b.hasMove
}

// Captures returns the number of capture events (two stones each) performed
// by c so far.
func (b *Board) Captures(c Color) int {
	return b.captures[colorIndex(c)]
}

// FreeThreesCount returns the cumulative free-three count seen on boards
// reached by c (spec.md §3, §9 open-question resolution in SPEC_FULL.md §4).
func (b *Board) FreeThreesCount(c Color) int {
	return b.freeThreesCount[colorIndex(c)]
}

// Equals reports whether two boards have identical grids. Per spec.md §3
// this is the sole definition of board equality.
func (b *Board) Equals(other *Board) bool {
	if other == nil {
		return false
	}
	return b.position == other.position
}

// Hash returns the 128-bit content hash of the position, computing and
// caching it on first use (spec.md §4.1).
func (b *Board) Hash() Hash128 {
	if !b.hashedAt {
		b.hash = hashPosition(&b.position)
		b.hashedAt = true
	}
	return b.hash
}

// clone returns a deep copy of b's grid and bookkeeping fields, ready to be
// mutated by the caller before being frozen and returned from Apply.
func (b *Board) clone() *Board {
	nb := &Board{
		position:        b.position,
		moveIdx:         b.moveIdx,
		fromMove:        b.fromMove,
		hasMove:         b.hasMove,
		lastMove:        b.lastMove,
		captures:        b.captures,
		freeThreesCount: b.freeThreesCount,
	}
	return nb
}
