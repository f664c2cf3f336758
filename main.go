package main

import (
	"fmt"
	"io"
	"os"
	"yahtzee/config"
	"yahtzee/experiments/metrics"
	"yahtzee/game"
	"yahtzee/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	hand := game.Hand(cfg.Hand)
	if cfg.Roll {
		hand = cfg.Rules().Roll(rand.New(rand.NewSource(cfg.Seed)))
		log.Info().Msgf("rolled hand %v with seed %d", hand, cfg.Seed)
	}

	if err := run(os.Stdout, hand, cfg.NumDieSides, cfg.ReportDir); err != nil {
		log.Fatal().Err(err).Msg("failed to compute strategy")
	}
}

// run writes the best hold for hand to w and, if reportDir is set, stores the
// ranking of every hold.
func run(w io.Writer, hand game.Hand, numDieSides int, reportDir string) error {
	planner := searcher.NewPlanner(searcher.WithMetrics(), searcher.WithLogger(log.Logger))

	if reportDir == "" {
		best, metric, err := planner.Strategy(hand, numDieSides)
		if err != nil {
			return err
		}
		printBest(w, hand, best, metric)
		return nil
	}

	ranked, metric, err := planner.Rank(hand, numDieSides)
	if err != nil {
		return err
	}
	printBest(w, hand, ranked[0], metric)

	writer, err := metrics.NewWriter(reportDir)
	if err != nil {
		return err
	}
	records := lo.Map(ranked, func(r searcher.Result, i int) metrics.RankRecord {
		return metrics.RankRecord{
			Rank:          i + 1,
			Hold:          r.Hold,
			FreeDice:      r.FreeDice,
			ExpectedValue: r.Value,
		}
	})
	if err := writer.WriteRankRecords(records); err != nil {
		return err
	}
	if err := writer.WriteSearchMetric(metric); err != nil {
		return err
	}
	log.Info().Msgf("stored rankings in %s", writer.Dir())
	return nil
}

func printBest(w io.Writer, hand game.Hand, best searcher.Result, metric metrics.SearchMetric) {
	fmt.Fprintf(w, "Best strategy for hand %v is to hold %v with expected score %f\n", []int(hand), []int(best.Hold), best.Value)
	log.Info().Msgf("evaluated %d holds and %d outcomes in %s", metric.Holds, metric.Outcomes, metric.Duration)
}
