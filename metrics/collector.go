package metrics

import (
	"time"

	"duel/game"
)

// TurnMetric records one resolved turn.
type TurnMetric struct {
	Turn         int
	Player       game.PlayerColor
	LegalActions int
	Duration     time.Duration // time the agent spent picking
}

// MatchMetric summarizes one complete match.
type MatchMetric struct {
	StartingPlayer game.PlayerColor
	Decided        bool // false when the match was abandoned (turn limit, defect)
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
}

// Collector gathers telemetry for a single match. The runner drives it
// from its single-threaded loop: Start once, AddTurn per resolved turn,
// Complete once at the end. Match and Turns expose the gathered data to
// the caller afterwards.
type Collector interface {
	Start(startingPlayer game.PlayerColor)
	AddTurn(metric TurnMetric)
	Complete(decided bool) MatchMetric
	Match() MatchMetric
	Turns() []TurnMetric
}

type collector struct {
	startingPlayer game.PlayerColor
	startTime      time.Time
	turns          []TurnMetric
	match          MatchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer game.PlayerColor) {
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.turns = nil
}

func (c *collector) AddTurn(metric TurnMetric) {
	c.turns = append(c.turns, metric)
}

func (c *collector) Complete(decided bool) MatchMetric {
	endTime := time.Now()
	c.match = MatchMetric{
		StartingPlayer: c.startingPlayer,
		Decided:        decided,
		StartTime:      c.startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(c.startTime),
		TotalTurns:     len(c.turns),
	}
	return c.match
}

func (c *collector) Match() MatchMetric {
	return c.match
}

func (c *collector) Turns() []TurnMetric {
	return c.turns
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op Collector for matches that should not
// pay for telemetry.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(startingPlayer game.PlayerColor) {}
func (dummyCollector) AddTurn(metric TurnMetric)             {}
func (dummyCollector) Complete(decided bool) MatchMetric     { return MatchMetric{} }
func (dummyCollector) Match() MatchMetric                    { return MatchMetric{} }
func (dummyCollector) Turns() []TurnMetric                   { return nil }
