package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Hand        []int         `json:"hand"`
	NumDieSides int           `json:"numDieSides"`
	Holds       int           `json:"holds"`    // Candidate holds evaluated
	Outcomes    int           `json:"outcomes"` // Re-roll outcomes scored across all holds
	StartTime   time.Time     `json:"startTime"`
	Duration    time.Duration `json:"duration"`
}

type Collector interface {
	Start(hand []int, numDieSides int)
	AddHold()
	AddOutcomes(n int)
	Complete() SearchMetric
}

type collector struct {
	hand        []int
	numDieSides int
	startTime   time.Time
	holds       atomic.Int64
	outcomes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(hand []int, numDieSides int) {
	m.hand = append([]int{}, hand...)
	m.numDieSides = numDieSides
	m.startTime = time.Now()
	m.holds.Store(0)
	m.outcomes.Store(0)
}

func (m *collector) AddHold() {
	m.holds.Add(1)
}

func (m *collector) AddOutcomes(n int) {
	m.outcomes.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Hand:        m.hand,
		NumDieSides: m.numDieSides,
		Holds:       int(m.holds.Load()),
		Outcomes:    int(m.outcomes.Load()),
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(hand []int, numDieSides int) {}
func (m *dummyCollector) AddHold()                          {}
func (m *dummyCollector) AddOutcomes(n int)                 {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
