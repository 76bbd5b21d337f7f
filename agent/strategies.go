package agent

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"duel/game"
)

// First always picks the first listed action. It is the cheapest possible
// policy and the usual baseline opponent in tests.
type First[S game.State[S, A, O], A game.Action, O game.Outcome] struct{}

func (First[S, A, O]) PickAction(_ S, actions []A) A {
	return actions[0]
}

// Random picks uniformly among the legal actions.
type Random[S game.State[S, A, O], A game.Action, O game.Outcome] struct {
	rng *rand.Rand
}

// NewRandom returns a Random agent seeded from the wall clock.
func NewRandom[S game.State[S, A, O], A game.Action, O game.Outcome]() *Random[S, A, O] {
	return NewRandomSeeded[S, A, O](uint64(time.Now().UnixNano()))
}

// NewRandomSeeded returns a Random agent with a fixed seed for
// reproducible matches.
func NewRandomSeeded[S game.State[S, A, O], A game.Action, O game.Outcome](seed uint64) *Random[S, A, O] {
	return &Random[S, A, O]{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random[S, A, O]) PickAction(_ S, actions []A) A {
	return actions[r.rng.Intn(len(actions))]
}

// Greedy plays one ply ahead: it applies each legal action to a copy of
// the state and picks the action whose successor scores highest under
// Eval. Ties go to the earlier-listed action.
type Greedy[S game.State[S, A, O], A game.Action, O game.Outcome] struct {
	Eval game.Evaluate[S]
}

func (g Greedy[S, A, O]) PickAction(state S, actions []A) A {
	best := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := g.Eval(game.Next[S, A, O](state, action))
		if score > bestScore {
			best = action
			bestScore = score
		}
	}
	return best
}

// Func adapts a plain function to the Agent interface.
type Func[S game.State[S, A, O], A game.Action, O game.Outcome] func(state S, actions []A) A

func (f Func[S, A, O]) PickAction(state S, actions []A) A {
	return f(state, actions)
}
