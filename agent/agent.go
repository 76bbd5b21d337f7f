package agent

import "duel/game"

// Agent is a seat's decision policy. PickAction is shown the current
// state and the non-empty slice of legal actions already computed by the
// runner, and must return one element of actions. The call is synchronous
// and local; an implementation may keep internal memory across calls
// within a match, but must not retain or mutate state beyond the call.
type Agent[S game.State[S, A, O], A game.Action, O game.Outcome] interface {
	PickAction(state S, actions []A) A
}
