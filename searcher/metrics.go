package searcher

import "time"

// MoveMetrics describes one completed search.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int // completed four-phase iterations
	PlayoutMoves int // moves played across all rollouts
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddPlayoutMove()
	Complete() MoveMetrics
}

// The search is single-threaded, so plain counters suffice.
type metricsCollector struct {
	startTime    time.Time
	episodes     int
	playoutMoves int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.playoutMoves = 0
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) AddPlayoutMove() {
	m.playoutMoves++
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		PlayoutMoves: m.playoutMoves,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddEpisode()           {}
func (m *noMetricsCollector) AddPlayoutMove()       {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
