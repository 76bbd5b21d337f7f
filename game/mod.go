package game

// PlayerColor identifies one of the two seats in a match. The two values
// are ordered (Black < White) for comparison only; order carries no
// gameplay meaning.
type PlayerColor int

const (
	Black PlayerColor = iota
	White
)

func (c PlayerColor) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Unknown"
}

// Other returns the opposing color.
func (c PlayerColor) Other() PlayerColor {
	if c == Black {
		return White
	}
	return Black
}

// Action is the constraint on a game's move type. The engine never looks
// inside an action: it only needs equality, so it can check that an
// agent's pick came from the legal set. Any comparable value type works.
type Action interface {
	comparable
}

// Outcome is the terminal result of a finished game. IsFinal reports
// whether the concrete value represents a true end-of-game condition. The
// runner never calls it; termination is driven by State.Outcome alone, so
// IsFinal is a contract between a concrete game and its callers.
type Outcome interface {
	IsFinal() bool
}

// State is a complete, self-contained game position. S is the concrete
// state type itself (usually a pointer), so MakeNext can mutate in place
// while Clone returns the concrete type.
//
// Implementations must keep two invariants: Outcome reports a value
// exactly when the game is over, and LegalActions is non-empty whenever
// Outcome reports none. A state with neither is invalid and the engine
// treats reaching one as a defect in the concrete game.
type State[S any, A Action, O Outcome] interface {
	// MakeNext applies action to the receiver in place. The action must
	// be one the receiver's own LegalActions would currently return;
	// applying anything else is a contract breach the engine does not
	// repair.
	MakeNext(action A)

	// LegalActions returns every action applicable in this position.
	LegalActions() []A

	// CurrentPlayerTurn returns the color to move. Defined even in a
	// terminal position, though the runner no longer consults it there.
	CurrentPlayerTurn() PlayerColor

	// Outcome returns the terminal result and true once the game is
	// decided, and ok == false while play continues.
	Outcome() (outcome O, ok bool)

	// Clone returns a deep copy sharing no mutable data with the
	// receiver.
	Clone() S
}

// Next returns the position reached by applying action to s, leaving s
// itself unchanged. Use it to explore a continuation without committing
// the live state to it.
func Next[S State[S, A, O], A Action, O Outcome](s S, action A) S {
	next := s.Clone()
	next.MakeNext(action)
	return next
}

// Game ties one State, one Action and one Outcome type together as a
// single named binding. It has no behavior of its own; a concrete game
// declares an alias of the instantiation, which makes the compiler verify
// that the three types cooperate:
//
//	type Game = game.Game[*State, Action, Outcome]
type Game[S State[S, A, O], A Action, O Outcome] struct{}

// Evaluate scores a position, higher meaning more favorable to a winning
// outcome for the evaluating player.
type Evaluate[S any] func(S) float64
