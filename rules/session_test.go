package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/notnil/chess"
)

// snapshot is everything a caller can observe about a session.
type snapshot struct {
	FEN       string
	Turn      chess.Color
	Moves     []string
	Checkmate bool
	Draw      bool
}

func observe(s *Session) snapshot {
	snap := snapshot{
		FEN:       s.FEN(),
		Turn:      s.Turn(),
		Checkmate: s.IsCheckmate(),
		Draw:      s.IsDraw(),
	}
	for _, m := range s.LegalMoves() {
		snap.Moves = append(snap.Moves, m.String())
	}
	return snap
}

var applyUndoFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	// castling both ways, en passant and promotions
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
}

func TestApplyUndoRestoresPosition(t *testing.T) {
	for _, fen := range applyUndoFENs {
		s, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		before := observe(s)
		for _, m := range s.LegalMoves() {
			s.Apply(m)
			if s.Depth() != 1 {
				t.Fatalf("Depth after Apply = %d, want 1", s.Depth())
			}
			if s.Turn() == before.Turn {
				t.Errorf("%s: side to move unchanged after %s", fen, m)
			}
			s.Undo()
			if diff := cmp.Diff(before, observe(s)); diff != "" {
				t.Fatalf("%s: apply/undo %s changed the position (-before +after):\n%s", fen, m, diff)
			}
		}
	}
}

func TestNestedApplyUndo(t *testing.T) {
	s := StartingSession()
	before := observe(s)
	for _, m1 := range s.LegalMoves() {
		s.Apply(m1)
		for _, m2 := range s.LegalMoves() {
			s.Apply(m2)
			if s.Depth() != 2 {
				t.Fatalf("Depth = %d, want 2", s.Depth())
			}
			s.Undo()
		}
		s.Undo()
	}
	if diff := cmp.Diff(before, observe(s)); diff != "" {
		t.Fatalf("position changed (-before +after):\n%s", diff)
	}
}

func TestUndoWithoutApplyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	StartingSession().Undo()
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		turn      chess.Color
		checkmate bool
		stalemate bool
		moves     int
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chess.White, false, false, 20},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true, false, 0},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromFEN(tt.fen)
			if err != nil {
				t.Fatalf("FromFEN: %v", err)
			}
			if s.Turn() != tt.turn {
				t.Errorf("Turn = %v, want %v", s.Turn(), tt.turn)
			}
			if s.IsCheckmate() != tt.checkmate {
				t.Errorf("IsCheckmate = %v, want %v", s.IsCheckmate(), tt.checkmate)
			}
			if s.IsStalemate() != tt.stalemate || s.IsDraw() != tt.stalemate {
				t.Errorf("IsStalemate/IsDraw = %v/%v, want %v", s.IsStalemate(), s.IsDraw(), tt.stalemate)
			}
			if got := len(s.LegalMoves()); got != tt.moves {
				t.Errorf("LegalMoves = %d, want %d", got, tt.moves)
			}
		})
	}
}

func TestFromFENInvalid(t *testing.T) {
	if _, err := FromFEN("not a fen"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRootIsNotModified(t *testing.T) {
	game := chess.NewGame()
	root := game.Position()
	fen := root.String()

	s := NewSession(root)
	s.Apply(s.LegalMoves()[0])
	if root.String() != fen {
		t.Fatalf("root position changed to %s", root.String())
	}
	if s.Position() == root {
		t.Fatal("Position() still returns the root after Apply")
	}
}
