package searcher

import (
	"sync/atomic"
	"time"
)

type Metric struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Leaves    int64
	MaxDepth  int64
}

type MetricsCollector interface {
	Start()
	AddNode(depth int, leaf bool)
	Complete() Metric
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	maxDepth  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.maxDepth.Store(0)
}

func (m *metricsCollector) AddNode(depth int, leaf bool) {
	m.nodes.Add(1)
	if leaf {
		m.leaves.Add(1)
	}
	d := int64(depth)
	for {
		current := m.maxDepth.Load()
		if d <= current || m.maxDepth.CompareAndSwap(current, d) {
			return
		}
	}
}

func (m *metricsCollector) Complete() Metric {
	return Metric{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Leaves:    m.leaves.Load(),
		MaxDepth:  m.maxDepth.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                       {}
func (m *noMetricsCollector) AddNode(depth int, leaf bool) {}
func (m *noMetricsCollector) Complete() Metric             { return Metric{} }
