// Package rules adapts github.com/notnil/chess into a reversible position
// that the search can walk with apply/undo.
package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

// Session is a position stack. Apply pushes the successor position and Undo
// pops it, so after a balanced sequence of calls the session is back on the
// exact position it started from.
type Session struct {
	stack []*chess.Position
}

// NewSession starts a session rooted at pos. The root is never modified.
func NewSession(pos *chess.Position) *Session {
	return &Session{stack: []*chess.Position{pos}}
}

// StartingSession returns a session on the standard initial position.
func StartingSession() *Session {
	return NewSession(chess.NewGame().Position())
}

// FromFEN parses fen and returns a session rooted at it.
func FromFEN(fen string) (*Session, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return NewSession(chess.NewGame(opt).Position()), nil
}

func (s *Session) current() *chess.Position {
	return s.stack[len(s.stack)-1]
}

// Position returns the position on top of the stack.
func (s *Session) Position() *chess.Position {
	return s.current()
}

// LegalMoves lists the legal moves for the side to move, in the order the
// rules engine generates them.
func (s *Session) LegalMoves() []*chess.Move {
	return s.current().ValidMoves()
}

// Apply plays m on top of the stack. m must be one of LegalMoves().
func (s *Session) Apply(m *chess.Move) {
	s.stack = append(s.stack, s.current().Update(m))
}

// Undo takes back the last applied move.
func (s *Session) Undo() {
	if len(s.stack) == 1 {
		panic("rules: undo without a matching apply")
	}
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
}

// Depth is the number of moves currently applied on top of the root.
func (s *Session) Depth() int {
	return len(s.stack) - 1
}

func (s *Session) Turn() chess.Color {
	return s.current().Turn()
}

func (s *Session) IsCheckmate() bool {
	return s.current().Status() == chess.Checkmate
}

func (s *Session) IsStalemate() bool {
	return s.current().Status() == chess.Stalemate
}

// IsDraw reports positional draws only. Repetition and insufficient material
// depend on game history and are judged by chess.Game.
func (s *Session) IsDraw() bool {
	return s.IsStalemate()
}

func (s *Session) Board() *chess.Board {
	return s.current().Board()
}

func (s *Session) FEN() string {
	return s.current().String()
}
