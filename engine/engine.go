package engine

import (
	"github.com/pkg/errors"

	"duel/game"
)

// MaxTurns bounds a match by default so a game that never reaches an
// outcome cannot spin the loop forever.
const MaxTurns = 10000

// Engine drives one match to completion and surfaces its terminal
// outcome.
type Engine[O game.Outcome] interface {
	Play() (O, error)
}

var (
	// ErrNoLegalActions reports an undecided state with an empty legal
	// set: the concrete game broke its own invariant.
	ErrNoLegalActions = errors.New("no legal actions in undecided state")

	// ErrIllegalAction reports an agent picking an action outside the
	// legal set it was offered.
	ErrIllegalAction = errors.New("agent picked an action outside the legal set")

	// ErrTurnLimit reports a match abandoned at the turn limit before
	// any outcome was reached.
	ErrTurnLimit = errors.New("turn limit reached without an outcome")
)
