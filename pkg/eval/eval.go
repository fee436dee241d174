package eval

import (
	"github.com/arjunp/corvid/pkg/board"
	"github.com/arjunp/corvid/pkg/endgame"
)

// Weights scales each evaluation component relative to the others, in tenths: a field value of
// 10 is weight 1.0, 15 is weight 1.5, 1 is weight 0.1. This lets Mobility's 0.1 and KingSafety's
// 1.5 be expressed exactly instead of rounding to the nearest integer multiplier.
type Weights struct {
	Material       int
	PSQT           int
	Pawns          int
	KingSafety     int
	Mobility       int
	NoiseAmplitude int
}

// DefaultWeights reproduces the component weights given in spec.md's evaluator table: material
// and piece-square at 1.0, pawn structure at 0.5, king safety at 1.5, mobility at 0.1.
var DefaultWeights = Weights{Material: 10, PSQT: 10, Pawns: 5, KingSafety: 15, Mobility: 1}

// Evaluator computes a static Score for a Position. It holds no position-specific state, so a
// single instance is safe to share across concurrent searches (only the board they evaluate
// differs).
type Evaluator struct {
	weights Weights
}

// New returns an Evaluator using the default component weighting.
func New() *Evaluator {
	return &Evaluator{weights: DefaultWeights}
}

// NewWithWeights returns an Evaluator using a custom component weighting, e.g. for tuning
// experiments or to disable a component (weight 0) for isolated testing.
func NewWithWeights(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

// Evaluate returns pos's score from White's perspective. Callers under the negamax convention
// must negate it for Black to move; Evaluate itself is side-to-move-agnostic.
func (e *Evaluator) Evaluate(pos *board.Position) Score {
	if v := endgame.Probe(pos); v.Decided {
		return Score(v.Score)
	}

	phase := Phase(pos)
	isEndgame := IsEndgame(pos)
	tenths := 0

	if w := e.weights.Material; w != 0 {
		tenths += w * (Material(pos, board.White) - Material(pos, board.Black))
	}
	if w := e.weights.PSQT; w != 0 {
		tenths += w * (psqtScore(pos, board.White, phase) - psqtScore(pos, board.Black, phase))
	}
	if w := e.weights.Pawns; w != 0 {
		tenths += w * (PawnStructure(pos, board.White) - PawnStructure(pos, board.Black))
	}
	if w := e.weights.KingSafety; w != 0 && !isEndgame {
		tenths += w * (KingSafety(pos, board.White) - KingSafety(pos, board.Black))
	}
	if w := e.weights.Mobility; w != 0 {
		mobility := w * (Mobility(pos, board.White) - Mobility(pos, board.Black))
		if isEndgame {
			mobility /= 2
		}
		tenths += mobility
	}

	score := tenths / 10
	score += Noise(pos.Fingerprint, e.weights.NoiseAmplitude)

	return Score(score)
}

// RelativeEvaluate returns Evaluate from the perspective of c: positive always means good for
// c, matching the sign convention negamax search expects at every node.
func (e *Evaluator) RelativeEvaluate(pos *board.Position, c board.Color) Score {
	s := e.Evaluate(pos)
	return Score(c.Unit()) * s
}

func psqtScore(pos *board.Position, c board.Color, phase int) int {
	total := 0
	for p := board.Pawn; p < board.NumPieces; p++ {
		for _, sq := range pos.PieceBitboard(c, p).Squares() {
			total += psqtValue(c, p, sq, phase)
		}
	}
	return total
}
