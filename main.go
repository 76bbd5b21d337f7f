package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duel/agent"
	"duel/engine"
	"duel/game/counter"
	"duel/metrics"
)

const numMatches = 10

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := runSeries(); err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}
}

// runSeries plays a short series of counter matches between the built-in
// agents and writes the telemetry as CSV records.
func runSeries() error {
	var matchRecords []metrics.MatchRecord
	var turnRecords []metrics.TurnRecord

	for i := 0; i < numMatches; i++ {
		collector := metrics.NewCollector()
		black := agent.NewRandomSeeded[*counter.State, counter.Action, counter.Outcome](uint64(i))
		white := agent.First[*counter.State, counter.Action, counter.Outcome]{}

		runner := engine.NewRunner[*counter.State, counter.Action, counter.Outcome](
			black, white, counter.NewState(),
			engine.WithLogger(log.Logger),
			engine.WithCollector(collector),
		)

		outcome, err := runner.Play()
		if err != nil {
			return err
		}
		log.Info().Int("match", i+1).Stringer("outcome", outcome).Msg("match finished")

		matchRecords = append(matchRecords, metrics.MatchRecord{
			ID:          i + 1,
			Black:       "random",
			White:       "first",
			MatchMetric: collector.Match(),
		})
		for _, turn := range collector.Turns() {
			turnRecords = append(turnRecords, metrics.TurnRecord{
				Match:      i + 1,
				TurnMetric: turn,
			})
		}
	}

	writer, err := metrics.NewWriter("matches")
	if err != nil {
		return err
	}
	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		return err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("records written")

	return nil
}
