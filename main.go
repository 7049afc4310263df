package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uttt/agent"
	"uttt/engine"
	"uttt/experiments"
	"uttt/experiments/metrics"
	"uttt/game"
	"uttt/searcher"
)

func main() {
	iterations := flag.Int("iterations", searcher.DefaultIterations, "simulation budget per move")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "UCB exploration constant")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "rollout random seed")
	experiment := flag.Bool("experiment", false, "run the strength experiment instead of a demo game")
	verbose := flag.Bool("verbose", false, "log every move and search diagnostics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment {
		runStrengthExperiment()
		return
	}
	runDemoGame(*iterations, *exploration, *seed)
}

// runDemoGame plays MCTS against the random baseline once and prints
// the final board.
func runDemoGame(iterations int, exploration float64, seed uint64) {
	mcts := agent.NewMCTSAgent("mcts",
		searcher.WithIterations(iterations),
		searcher.WithExploration(exploration),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
	)
	random := agent.NewRandomAgent(rand.New(rand.NewSource(seed + 1)))

	e := engine.Local(mcts, random)
	_, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	fmt.Print(engine.Render(e.State().(*game.GameState)))
}

func runStrengthExperiment() {
	configs := []metrics.AgentConfig{
		{ID: 1, Iterations: 50, Games: 10},
		{ID: 2, Iterations: 200, Games: 10},
		{ID: 3, Iterations: 1000, Games: 10},
	}

	err := experiments.RunStrengthExperiment(configs, "experiments-out")
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
