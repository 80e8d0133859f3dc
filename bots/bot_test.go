package bots

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"negamax", "Negamax Bot (depth 2)"},
		{"", "Negamax Bot (depth 2)"},
		{" Newborn ", "Newborn"},
		{"random", "Random Bot"},
	}
	for _, tt := range tests {
		bot, err := New(tt.name, Options{Depth: 2, Seed: 7})
		if err != nil {
			t.Fatalf("New(%q): %v", tt.name, err)
		}
		if got := bot.Name(); got != tt.wantName {
			t.Errorf("New(%q).Name() = %q, want %q", tt.name, got, tt.wantName)
		}
	}

	if _, err := New("stockfish", Options{Depth: 2}); !errors.Is(err, ErrUnknownBot) {
		t.Fatalf("unknown bot err = %v, want ErrUnknownBot", err)
	}
	if _, err := New(NegamaxName, Options{Depth: 0}); err == nil {
		t.Fatal("expected error for depth 0")
	}
}

func TestBotsReturnLegalMoves(t *testing.T) {
	for _, bot := range []ChessBot{NewNegamaxBot(2), NewNewbornBot(), NewRandomBot(1)} {
		game := chess.NewGame()
		for i := 0; i < 6 && game.Outcome() == chess.NoOutcome; i++ {
			move := bot.BestMove(game)
			if move == nil {
				t.Fatalf("%s: no move at ply %d", bot.Name(), i)
			}
			if err := game.Move(move); err != nil {
				t.Fatalf("%s: illegal move %s: %v", bot.Name(), move, err)
			}
		}
	}
}

func TestBotsGameOver(t *testing.T) {
	opt, err := chess.FEN(whiteMatedFEN)
	if err != nil {
		t.Fatalf("FEN: %v", err)
	}
	for _, bot := range []ChessBot{NewNegamaxBot(3), NewNewbornBot(), NewRandomBot(1)} {
		if move := bot.BestMove(chess.NewGame(opt)); move != nil {
			t.Errorf("%s: move %s in a finished game", bot.Name(), move)
		}
	}
	if move := NewNegamaxBot(3).BestMove(nil); move != nil {
		t.Errorf("nil game returned %s", move)
	}
}

func TestRandomBotSeedIsRepeatable(t *testing.T) {
	game := chess.NewGame()
	a, b := NewRandomBot(42), NewRandomBot(42)
	for i := 0; i < 5; i++ {
		if ma, mb := a.BestMove(game), b.BestMove(game); ma.String() != mb.String() {
			t.Fatalf("pick %d: %s != %s", i, ma, mb)
		}
	}
}

func TestNegamaxBotLeavesGameUntouched(t *testing.T) {
	game := chess.NewGame()
	if err := game.MoveStr("e4"); err != nil {
		t.Fatalf("MoveStr: %v", err)
	}
	before := game.FEN()
	if move := NewNegamaxBot(2).BestMove(game); move == nil {
		t.Fatal("expected a reply")
	}
	if after := game.FEN(); after != before {
		t.Fatalf("game changed from %s to %s", before, after)
	}
}

func TestNewbornMatchesTieBreak(t *testing.T) {
	// From the initial position every depth-1 score ties, so negamax keeps
	// the first generated move, which is what the newborn bot plays.
	game := chess.NewGame()
	newborn := NewNewbornBot().BestMove(game)
	negamax := NewNegamaxBot(1).BestMove(game)
	if newborn.String() != negamax.String() {
		t.Fatalf("newborn %s, negamax %s", newborn, negamax)
	}
}

func TestNextCyclesEveryBot(t *testing.T) {
	name := NegamaxName
	var seen []string
	for range Names {
		name = Next(name)
		seen = append(seen, name)
		if _, err := New(name, Options{Depth: 2, Seed: 1}); err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
	}
	want := []string{NewbornName, RandomName, NegamaxName}
	if len(seen) != len(want) {
		t.Fatalf("Next cycle = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Next cycle = %v, want %v", seen, want)
		}
	}

	if got := Next(""); got != NewbornName {
		t.Errorf("Next(\"\") = %q, want %q", got, NewbornName)
	}
	if got := Next("stockfish"); got != NegamaxName {
		t.Errorf("Next(unknown) = %q, want %q", got, NegamaxName)
	}
}
