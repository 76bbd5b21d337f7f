package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"duel/agent"
	"duel/game"
	"duel/metrics"
)

type config struct {
	maxTurns  int
	logger    zerolog.Logger
	collector metrics.Collector
}

type Option func(*config)

// WithMaxTurns overrides the default turn limit.
func WithMaxTurns(maxTurns int) Option {
	return func(c *config) {
		c.maxTurns = maxTurns
	}
}

// WithLogger makes the runner log match progress; by default it is
// silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithCollector makes the runner record match telemetry; by default none
// is collected.
func WithCollector(collector metrics.Collector) Option {
	return func(c *config) {
		c.collector = collector
	}
}

// Runner orchestrates one match: it owns the two agents and the evolving
// state exclusively, and alternates turns until the state reports an
// outcome. A Runner drives a single match; Play is not restartable.
type Runner[S game.State[S, A, O], A game.Action, O game.Outcome] struct {
	black agent.Agent[S, A, O]
	white agent.Agent[S, A, O]
	state S
	cfg   config
}

// NewRunner builds a runner from the Black agent, the White agent and the
// start state. The runner takes ownership of all three; nothing else may
// mutate the state until Play returns.
func NewRunner[S game.State[S, A, O], A game.Action, O game.Outcome](
	black, white agent.Agent[S, A, O], start S, options ...Option,
) *Runner[S, A, O] {
	cfg := config{
		maxTurns:  MaxTurns,
		logger:    zerolog.Nop(),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&cfg)
	}
	return &Runner[S, A, O]{
		black: black,
		white: white,
		state: start,
		cfg:   cfg,
	}
}

// Play drives the turn loop until the state reports an outcome and
// returns it. A start state that is already terminal returns immediately
// without consulting any agent.
//
// Play validates each pick against the legal set it offered; a
// non-member pick, an undecided state with no legal actions, or hitting
// the turn limit abandons the match with a wrapped sentinel error.
func (r *Runner[S, A, O]) Play() (O, error) {
	r.cfg.collector.Start(r.state.CurrentPlayerTurn())
	r.cfg.logger.Info().
		Stringer("starting_player", r.state.CurrentPlayerTurn()).
		Msg("match started")

	for turn := 1; ; turn++ {
		if outcome, over := r.state.Outcome(); over {
			r.cfg.collector.Complete(true)
			r.cfg.logger.Info().Int("turns", turn-1).Msg("match over")
			return outcome, nil
		}

		if turn > r.cfg.maxTurns {
			var zero O
			r.cfg.collector.Complete(false)
			return zero, errors.Wrapf(ErrTurnLimit, "after %d turns", r.cfg.maxTurns)
		}

		player := r.state.CurrentPlayerTurn()
		legal := r.state.LegalActions()
		if len(legal) == 0 {
			var zero O
			r.cfg.collector.Complete(false)
			return zero, errors.Wrapf(ErrNoLegalActions, "turn %d, %s to move", turn, player)
		}

		active := r.black
		if player == game.White {
			active = r.white
		}

		pickStart := time.Now()
		action := active.PickAction(r.state, legal)
		pickDuration := time.Since(pickStart)

		if !contains(legal, action) {
			var zero O
			r.cfg.collector.Complete(false)
			return zero, errors.Wrapf(ErrIllegalAction, "turn %d, %s played %v", turn, player, action)
		}

		r.state.MakeNext(action)

		r.cfg.collector.AddTurn(metrics.TurnMetric{
			Turn:         turn,
			Player:       player,
			LegalActions: len(legal),
			Duration:     pickDuration,
		})
		r.cfg.logger.Debug().
			Int("turn", turn).
			Stringer("player", player).
			Int("legal_actions", len(legal)).
			Msg("turn played")
	}
}

func contains[A game.Action](actions []A, action A) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
