// Package counter implements the reference game used by the engine's
// tests and the demo driver: a race to land the shared counter exactly on
// the target.
package counter

import "duel/game"

// Target ends the game: landing on it wins, overshooting it loses for
// both players.
const Target = 42

// Action bumps the counter by its amount.
type Action struct {
	Bump int
}

type Outcome int

const (
	BlackWins Outcome = iota
	WhiteWins
	BothLose
)

// IsFinal reports true for every counter outcome; the game has no
// intermediate results.
func (o Outcome) IsFinal() bool { return true }

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "BlackWins"
	case WhiteWins:
		return "WhiteWins"
	case BothLose:
		return "BothLose"
	}
	return "Unknown"
}

// State is a counter game position: the running total and the color to
// move. Black moves first from a fresh state.
type State struct {
	Num int
	Cur game.PlayerColor
}

// NewState returns the start position: counter at zero, Black to move.
func NewState() *State {
	return &State{Num: 0, Cur: game.Black}
}

func (s *State) MakeNext(action Action) {
	s.Num += action.Bump
	s.Cur = s.Cur.Other()
}

// LegalActions returns the three bumps while the game is undecided.
func (s *State) LegalActions() []Action {
	if s.Num >= Target {
		return nil
	}
	return []Action{{Bump: 2}, {Bump: 3}, {Bump: 4}}
}

func (s *State) CurrentPlayerTurn() game.PlayerColor { return s.Cur }

// Outcome reports no outcome below Target, a win for the mover who landed
// exactly on Target, and BothLose past it.
func (s *State) Outcome() (Outcome, bool) {
	switch {
	case s.Num < Target:
		return 0, false
	case s.Num > Target:
		return BothLose, true
	default:
		// MakeNext already passed the turn, so the mover who reached
		// Target is the color not on the move.
		if s.Cur.Other() == game.Black {
			return BlackWins, true
		}
		return WhiteWins, true
	}
}

func (s *State) Clone() *State {
	next := *s
	return &next
}

// Game is the compile-time binding of the counter game's three types.
type Game = game.Game[*State, Action, Outcome]

var _ game.State[*State, Action, Outcome] = (*State)(nil)
