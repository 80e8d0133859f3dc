package game

import (
	"fmt"
	"strings"

	"negachess/rules"

	"github.com/notnil/chess"
)

// State is a snapshot of the game for display.
type State struct {
	FEN      string   `json:"fen"`
	Turn     string   `json:"turn"`
	Status   string   `json:"status"`
	Outcome  string   `json:"outcome"`
	Method   string   `json:"method"`
	GameOver bool     `json:"gameOver"`
	InCheck  bool     `json:"inCheck"`
	Thinking bool     `json:"thinking"`
	LastMove string   `json:"lastMove,omitempty"`
	History  []string `json:"history"`
	Bot      string   `json:"bot"`
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.game
	st := State{
		FEN:      g.FEN(),
		Turn:     strings.ToLower(rules.ColorName(g.Position().Turn())),
		Status:   StatusText(g, c.thinking),
		Outcome:  string(g.Outcome()),
		GameOver: g.Outcome() != chess.NoOutcome,
		InCheck:  inCheck(g),
		Thinking: c.thinking,
		History:  sanHistory(g),
		Bot:      c.bot.Name(),
	}
	if g.Method() != chess.NoMethod {
		st.Method = g.Method().String()
	}
	if moves := g.Moves(); len(moves) > 0 {
		st.LastMove = moves[len(moves)-1].String()
	}
	return st
}

// StatusText describes whose turn it is, check, checkmate or draw.
func StatusText(g *chess.Game, thinking bool) string {
	mover := rules.ColorName(g.Position().Turn())

	switch g.Outcome() {
	case chess.NoOutcome:
	case chess.Draw:
		return fmt.Sprintf("Game over, drawn position (%s).", g.Method())
	default:
		if g.Method() == chess.Checkmate {
			return fmt.Sprintf("Game over, %s is checkmated.", mover)
		}
		return fmt.Sprintf("Game over, %s (%s).", g.Outcome(), g.Method())
	}

	status := mover + " to move"
	if thinking {
		status += " (computer thinking...)"
	}
	if inCheck(g) {
		status += fmt.Sprintf(", %s is in check", mover)
	}
	return status
}

func inCheck(g *chess.Game) bool {
	moves := g.Moves()
	return len(moves) > 0 && moves[len(moves)-1].HasTag(chess.Check)
}

func sanHistory(g *chess.Game) []string {
	positions := g.Positions()
	moves := g.Moves()
	history := make([]string, 0, len(moves))
	for i, m := range moves {
		history = append(history, chess.AlgebraicNotation{}.Encode(positions[i], m))
	}
	return history
}
