package searcher

import (
	"fmt"
	"yahtzee/experiments/metrics"
	"yahtzee/game"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

type Option func(p *Planner)

// Planner searches every hold of a hand for the one with the highest
// expected upper-section score.
type Planner struct {
	metrics metrics.Collector
	logger  zerolog.Logger
}

func WithMetrics() Option {
	return func(p *Planner) {
		p.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

func NewPlanner(options ...Option) *Planner {
	p := &Planner{ // Default values
		metrics: metrics.NewDummyCollector(),
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Strategy returns the hold with the highest expected value. Ties go to the
// lexicographically smallest sorted hold.
func Strategy(hand game.Hand, numDieSides int) (Result, error) {
	result, _, err := NewPlanner().Strategy(hand, numDieSides)
	return result, err
}

// Rank returns every candidate hold ordered from best to worst.
func Rank(hand game.Hand, numDieSides int) ([]Result, error) {
	results, _, err := NewPlanner().Rank(hand, numDieSides)
	return results, err
}

func (p *Planner) Strategy(hand game.Hand, numDieSides int) (Result, metrics.SearchMetric, error) {
	var best *Result
	metric, err := p.search(hand, numDieSides, func(candidate Result) {
		if best == nil || compareResults(candidate, *best) < 0 {
			best = &candidate
		}
	})
	if err != nil {
		return Result{}, metrics.SearchMetric{}, err
	}
	if best == nil {
		panic("search evaluated no holds")
	}

	p.logger.Debug().Ints("hand", hand).Ints("hold", best.Hold).Float64("value", best.Value).Msg("found best hold")
	return *best, metric, nil
}

func (p *Planner) Rank(hand game.Hand, numDieSides int) ([]Result, metrics.SearchMetric, error) {
	results := make([]Result, 0, 1<<len(hand))
	metric, err := p.search(hand, numDieSides, func(candidate Result) {
		results = append(results, candidate)
	})
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	slices.SortStableFunc(results, compareResults)
	return results, metric, nil
}

// search evaluates every hold of hand and hands each result to visit.
func (p *Planner) search(hand game.Hand, numDieSides int, visit func(Result)) (metrics.SearchMetric, error) {
	rules := game.Rules{NumDieSides: numDieSides, HandSize: len(hand)}
	if err := rules.ValidateHand(hand); err != nil {
		return metrics.SearchMetric{}, fmt.Errorf("invalid hand %v: %w", hand, err)
	}
	faces, err := game.Faces(numDieSides)
	if err != nil {
		return metrics.SearchMetric{}, err
	}

	p.metrics.Start(hand, numDieSides)
	for _, hold := range Holds(hand) {
		free := len(hand) - len(hold)
		value, outcomes, err := expectedValue(hold, faces, free)
		if err != nil {
			return metrics.SearchMetric{}, fmt.Errorf("expected value of hold %v: %w", hold, err)
		}
		p.metrics.AddHold()
		p.metrics.AddOutcomes(outcomes)

		sorted := hold.Sorted()
		p.logger.Debug().Ints("hold", sorted).Int("free", free).Float64("value", value).Msg("evaluated hold")
		visit(Result{Value: value, Hold: sorted, FreeDice: free})
	}
	return p.metrics.Complete(), nil
}
