package board

// This file contains some sample positions, used solely for testing.

// VsWho is a plaintext representation of a position, in the format
// produced by ToDisplayText.
type VsWho string

const (
	// VsStart is the canonical starting position.
	VsStart VsWho = `
   a b c d e f g h
   ----------------
 1|. . . . . . . .|
 2|. . . . . . . .|
 3|. . . . . . . .|
 4|. . . O X . . .|
 5|. . . X O . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
   ----------------
`
	// VsBlackBlocked has no legal move for Black; White can play c1.
	VsBlackBlocked VsWho = `
 1|O X . . . . . .|
 2|. . . . . . . .|
 3|. . . . . . . .|
 4|. . . . . . . .|
 5|. . . . . . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
`
	// VsWrap would let Black capture a2 from h1 if scanning wrapped from
	// the end of one row to the start of the next.
	VsWrap VsWho = `
 1|. . . . . . . .|
 2|O X . . . . . .|
 3|. . . . . . . .|
 4|. . . . . . . .|
 5|. . . . . . . .|
 6|. . . . . . . .|
 7|. . . . . . . .|
 8|. . . . . . . .|
`
	// VsCornerOffer gives Black exactly two moves: b2 (next to a corner)
	// and h8 (the corner itself).
	VsCornerOffer VsWho = `
 1|. . . . . . . .|
 2|. . O X . . . .|
 3|. . . . . . . .|
 4|. . . . . . . .|
 5|. . . . . . . .|
 6|. . . . . X . .|
 7|. . . . . . O .|
 8|. . . . . . . .|
`
	// VsTwoHoles is nearly full. Black can fill either hole; White can
	// never move, so Black plays both and wins 64-0.
	VsTwoHoles VsWho = `
 1|. O X X X X X X|
 2|X X X X X X X X|
 3|X X X X X X X X|
 4|X X X X X X X X|
 5|X X X X X X X X|
 6|X X X X X X X X|
 7|X X X X X X X X|
 8|X X X X X X O .|
`
	// VsFullBlack is a full board that Black wins 40-24.
	VsFullBlack VsWho = `
 1|X X X X X X X X|
 2|X X X X X X X X|
 3|X X X X X X X X|
 4|X X X X X X X X|
 5|X X X X X X X X|
 6|O O O O O O O O|
 7|O O O O O O O O|
 8|O O O O O O O O|
`
	// VsFullWhite is a full board that White wins 33-31.
	VsFullWhite VsWho = `
 1|O O O O O O O O|
 2|O O O O O O O O|
 3|O O O O O O O O|
 4|O O O O O O O O|
 5|X X X X X X X X|
 6|X X X X X X X X|
 7|X X X X X X X X|
 8|X X X X X X X O|
`
	// VsFullDraw is a full board split 32-32.
	VsFullDraw VsWho = `
 1|X O X O X O X O|
 2|O X O X O X O X|
 3|X O X O X O X O|
 4|O X O X O X O X|
 5|X O X O X O X O|
 6|O X O X O X O X|
 7|X O X O X O X O|
 8|O X O X O X O X|
`
)

// SetToGame returns the board for one of the sample positions. It panics
// on a malformed fixture.
func SetToGame(game VsWho) Board {
	return MustFromPlaintext(string(game))
}
