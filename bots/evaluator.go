package bots

import "github.com/notnil/chess"

// Piece values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

// MaterialEvaluator sums piece values, positive for White and negative for
// Black. Nothing but piece placement is looked at.
type MaterialEvaluator struct{}

func (MaterialEvaluator) Evaluate(board *chess.Board) int {
	if board == nil {
		return 0
	}
	score := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := PieceValue(piece.Type())
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

// PieceValue returns the material value of t, or 0 for NoPieceType.
func PieceValue(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return PawnValue
	case chess.Knight:
		return KnightValue
	case chess.Bishop:
		return BishopValue
	case chess.Rook:
		return RookValue
	case chess.Queen:
		return QueenValue
	case chess.King:
		return KingValue
	default:
		return 0
	}
}
