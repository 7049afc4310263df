// Package experiments measures playing strength of the MCTS agent
// against a uniform-random baseline across iteration budgets.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uttt/agent"
	"uttt/engine"
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/searcher"
)

// RunStrengthExperiment plays every config against the random baseline
// for its number of games and writes configs plus per-game records as
// CSV under baseDir. The MCTS agent always plays crosses.
func RunStrengthExperiment(configs []metrics.AgentConfig, baseDir string) error {
	writer, err := metrics.NewWriter(baseDir)
	if err != nil {
		return err
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return err
	}

	var records []metrics.GameRecord
	for _, config := range configs {
		wins := 0
		for i := 0; i < config.Games; i++ {
			winner, moves, err := runGame(config)
			if err != nil {
				return fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}
			if winner == game.CrossPlayer {
				wins++
			}
			records = append(records, metrics.GameRecord{
				Config:   config.ID,
				Game:     i + 1,
				Winner:   winner,
				Moves:    len(moves),
				Duration: sumDurations(moves),
			})
		}
		log.Info().
			Int("config", config.ID).
			Int("iterations", config.Iterations).
			Int("wins", wins).
			Int("games", config.Games).
			Msg("config finished")
	}

	err = writer.WriteGameRecords(records)
	if err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("experiment results written")
	return nil
}

func runGame(config metrics.AgentConfig) (string, []engine.MoveRecord, error) {
	options := []searcher.Option{searcher.WithIterations(config.Iterations)}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	mcts := agent.NewMCTSAgent("mcts", options...)
	random := agent.NewRandomAgent(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))

	return engine.Local(mcts, random).Run()
}

func sumDurations(moves []engine.MoveRecord) time.Duration {
	var total time.Duration
	for _, move := range moves {
		total += move.Duration
	}
	return total
}
