package bots

import (
	"math/rand"
	"sync"

	"negachess/rules"

	"github.com/notnil/chess"
)

// NewbornBot plays the first legal move in generation order, which is also
// the move the negamax bot falls back to when every move scores the same.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	if moves := rules.NewSession(game.Position()).LegalMoves(); len(moves) > 0 {
		return moves[0]
	}
	return nil
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}

// RandomBot plays a uniformly random legal move. Bots built with the same
// seed make the same sequence of choices.
type RandomBot struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return moves[b.rng.Intn(len(moves))]
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
