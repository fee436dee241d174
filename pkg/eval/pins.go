package eval

import "github.com/arjunp/corvid/pkg/board"

var allDirections = []struct{ df, dr int }{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var diagonal = map[[2]int]bool{{1, 1}: true, {1, -1}: true, {-1, 1}: true, {-1, -1}: true}

// PinnedPieces returns the squares of color c's pieces that are pinned against c's own king by
// an enemy bishop, rook, or queen: walking from the king outward in each of the eight ray
// directions, a friendly piece found before any enemy piece is pinned if the next occupied
// square beyond it is an enemy slider whose movement pattern covers that ray.
func PinnedPieces(pos *board.Position, c board.Color) []board.Square {
	king := pos.King(c)
	kf, kr := int(king.File()), int(king.Rank())

	var pinned []board.Square
	for _, d := range allDirections {
		candidate, candidateFound := board.ZeroSquare, false

		nf, nr := kf+d.df, kr+d.dr
		for inRange(nf, nr) {
			sq := board.NewSquare(board.File(nf), board.Rank(nr))
			cp := pos.PieceAt(sq)
			if !cp.IsEmpty() {
				if !candidateFound {
					if cp.Color != c {
						break // first piece on the ray is an enemy piece: nothing of ours to pin.
					}
					candidate, candidateFound = sq, true
				} else {
					if cp.Color != c && slidesAlong(cp.Piece, d.df, d.dr) {
						pinned = append(pinned, candidate)
					}
					break
				}
			}
			nf += d.df
			nr += d.dr
		}
	}
	return pinned
}

func slidesAlong(p board.Piece, df, dr int) bool {
	if p == board.Queen {
		return true
	}
	if diagonal[[2]int{df, dr}] {
		return p == board.Bishop
	}
	return p == board.Rook
}

func inRange(f, r int) bool {
	return f >= 0 && f < int(board.NumFiles) && r >= 0 && r < int(board.NumRanks)
}
