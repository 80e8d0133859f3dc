// Package game sequences a human-versus-computer game: it applies the
// human's drops, schedules the computer's reply and reports status.
package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"negachess/bots"
	"negachess/rules"

	"github.com/notnil/chess"
)

// Options configures a Controller. Bot is required.
type Options struct {
	Bot        bots.ChessBot
	Scheduler  Scheduler
	ReplyDelay time.Duration
	ThinkDelay time.Duration
}

// Controller owns one live game. The human plays White and the bot Black.
// All methods are safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	game       *chess.Game
	human      chess.Color
	bot        bots.ChessBot
	sched      Scheduler
	replyDelay time.Duration
	thinkDelay time.Duration
	thinking   bool
	generation int
}

func NewController(opts Options) *Controller {
	sched := opts.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Controller{
		game:       chess.NewGame(),
		human:      chess.White,
		bot:        opts.Bot,
		sched:      sched,
		replyDelay: opts.ReplyDelay,
		thinkDelay: opts.ThinkDelay,
	}
}

// Drop plays the human's move from one square to another. Pawns reaching the
// last rank always promote to a queen. On success the bot's reply is
// scheduled unless the game is over.
func (c *Controller) Drop(from, to string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.game.Outcome() != chess.NoOutcome {
		return ErrGameOver
	}
	if c.thinking || c.game.Position().Turn() != c.human {
		return ErrNotYourTurn
	}

	s1, err := rules.ParseSquare(from)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	s2, err := rules.ParseSquare(to)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	move := rules.FindMove(c.game.ValidMoves(), s1, s2)
	if move == nil {
		return fmt.Errorf("%w: %s%s", ErrIllegalMove, s1, s2)
	}
	if err := c.game.Move(move); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	c.claimDraw()

	if c.game.Outcome() == chess.NoOutcome {
		gen := c.generation
		c.sched.Schedule(c.replyDelay, func() { c.startBotTurn(gen) })
	}
	return nil
}

// CanDrag reports whether the human may pick up the piece on square.
func (c *Controller) CanDrag(square string) bool {
	sq, err := rules.ParseSquare(square)
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.game.Outcome() != chess.NoOutcome || c.thinking || c.game.Position().Turn() != c.human {
		return false
	}
	piece := c.game.Position().Board().Piece(sq)
	return piece != chess.NoPiece && piece.Color() == c.human
}

// Reset starts a new game. Bot replies scheduled for the old game are dropped.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.game = chess.NewGame()
	c.thinking = false
	c.generation++
}

func (c *Controller) startBotTurn(gen int) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.thinking = true
	c.mu.Unlock()

	c.sched.Schedule(c.thinkDelay, func() { c.makeBotMove(gen) })
}

func (c *Controller) makeBotMove(gen int) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	if c.game.Outcome() != chess.NoOutcome || c.game.Position().Turn() == c.human {
		c.thinking = false
		c.mu.Unlock()
		return
	}
	// The search walks its own copy so status reads are not blocked.
	snapshot := c.game.Clone()
	bot := c.bot
	c.mu.Unlock()

	start := time.Now()
	move := bot.BestMove(snapshot)
	elapsed := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.thinking = false
	if move == nil {
		return
	}
	if err := c.game.Move(move); err != nil {
		log.Printf("Bot move error: %v", err)
		return
	}
	c.claimDraw()
	log.Printf("%s played %s in %s", bot.Name(), move, elapsed.Round(time.Millisecond))
}

// Position returns the current position. Positions are never modified once
// created, so the result may be read without holding any lock.
func (c *Controller) Position() *chess.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Position()
}

// Thinking reports whether the bot's turn is in progress.
func (c *Controller) Thinking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.thinking
}

func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return StatusText(c.game, c.thinking)
}

// PGN renders the game played so far.
func (c *Controller) PGN() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.String()
}

// claimDraw ends the game on threefold repetition or the fifty-move rule.
// chess.Game only makes these claimable; the game here ends on them.
// Callers hold c.mu.
func (c *Controller) claimDraw() {
	if c.game.Outcome() != chess.NoOutcome {
		return
	}
	for _, method := range c.game.EligibleDraws() {
		if method != chess.ThreefoldRepetition && method != chess.FiftyMoveRule {
			continue
		}
		if err := c.game.Draw(method); err != nil {
			log.Printf("draw claim %s: %v", method, err)
			continue
		}
		return
	}
}

func (c *Controller) BotName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bot.Name()
}

// SetBot replaces the opponent. A reply already being searched is dropped
// and the new bot is scheduled in its place.
func (c *Controller) SetBot(bot bots.ChessBot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bot = bot
	c.generation++
	if c.game.Outcome() == chess.NoOutcome && c.game.Position().Turn() != c.human {
		c.thinking = false
		gen := c.generation
		c.sched.Schedule(c.replyDelay, func() { c.startBotTurn(gen) })
	}
}
