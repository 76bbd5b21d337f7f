package counter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"duel/game"
)

func TestLegalActionsInvariant(t *testing.T) {
	// Every position is either decided or offers at least one action.
	for num := 0; num <= 50; num++ {
		for _, cur := range []game.PlayerColor{game.Black, game.White} {
			s := &State{Num: num, Cur: cur}
			_, over := s.Outcome()
			if over {
				require.Empty(t, s.LegalActions(),
					"terminal state %+v should have no legal actions", s)
			} else {
				require.NotEmpty(t, s.LegalActions(),
					"undecided state %+v should have legal actions", s)
			}
		}
	}
}

func TestNextMatchesMakeNext(t *testing.T) {
	s := &State{Num: 10, Cur: game.White}
	before := *s

	for _, action := range s.LegalActions() {
		got := game.Next[*State, Action, Outcome](s, action)

		want := s.Clone()
		want.MakeNext(action)

		require.Empty(t, cmp.Diff(want, got),
			"Next(%v) should match Clone+MakeNext", action)
		require.Empty(t, cmp.Diff(&before, s),
			"Next(%v) should leave the receiver unchanged", action)
	}
}

func TestMakeNextPassesTurn(t *testing.T) {
	s := NewState()
	require.Equal(t, game.Black, s.CurrentPlayerTurn(), "Black moves first")

	s.MakeNext(Action{Bump: 3})
	require.Equal(t, 3, s.Num)
	require.Equal(t, game.White, s.CurrentPlayerTurn())

	s.MakeNext(Action{Bump: 2})
	require.Equal(t, 5, s.Num)
	require.Equal(t, game.Black, s.CurrentPlayerTurn())
}

func TestOutcome(t *testing.T) {
	t.Run("undecided below target", func(t *testing.T) {
		for num := 0; num < Target; num++ {
			s := &State{Num: num, Cur: game.Black}
			_, over := s.Outcome()
			require.False(t, over, "state at %d should be undecided", num)
		}
	})

	t.Run("mover landing on target wins", func(t *testing.T) {
		// Cur has already been passed to the opponent of the mover.
		s := &State{Num: Target, Cur: game.White}
		outcome, over := s.Outcome()
		require.True(t, over)
		require.Equal(t, BlackWins, outcome)

		s = &State{Num: Target, Cur: game.Black}
		outcome, over = s.Outcome()
		require.True(t, over)
		require.Equal(t, WhiteWins, outcome)
	})

	t.Run("overshooting loses for both", func(t *testing.T) {
		for _, num := range []int{Target + 1, Target + 2, Target + 4} {
			s := &State{Num: num, Cur: game.Black}
			outcome, over := s.Outcome()
			require.True(t, over)
			require.Equal(t, BothLose, outcome)
		}
	})
}

func TestOutcomeIsFinal(t *testing.T) {
	for _, outcome := range []Outcome{BlackWins, WhiteWins, BothLose} {
		require.True(t, outcome.IsFinal())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState()
	clone := s.Clone()
	clone.MakeNext(Action{Bump: 4})

	require.Equal(t, 0, s.Num, "mutating a clone should not touch the original")
	require.Equal(t, game.Black, s.Cur)
}
