package csp

// stats.go: monitoring and statistics for solver runs.

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SolverStats holds counters from one solving run.
type SolverStats struct {
	RunID string // unique per monitor, for correlating logs

	NodesExplored  int           // search nodes expanded
	Backtracks     int           // value exhaustions that popped a frame
	SolutionsFound int           // complete assignments emitted
	MaxDepth       int           // deepest search frame reached
	SearchTime     time.Duration // wall time from monitor creation to FinishSearch

	Propagations  int // forward-check / AC-3 invocations
	PeakTrailSize int // largest trail observed
}

// String returns a formatted multi-line summary.
func (s *SolverStats) String() string {
	return fmt.Sprintf(
		"Solver Statistics (run %s):\n"+
			"  Search: %d nodes, %d backtracks, %d solutions, max depth %d, %v\n"+
			"  Propagation: %d ops, peak trail %d",
		s.RunID,
		s.NodesExplored, s.Backtracks, s.SolutionsFound, s.MaxDepth, s.SearchTime,
		s.Propagations, s.PeakTrailSize,
	)
}

// SolverMonitor collects statistics during solving. Attach one with
// Solver.SetMonitor before calling Solve. A monitor may be shared by
// parallel branches, so it is safe for concurrent use.
type SolverMonitor struct {
	mu        sync.Mutex
	stats     SolverStats
	startTime time.Time
}

// NewSolverMonitor creates a monitor with a fresh run ID.
func NewSolverMonitor() *SolverMonitor {
	return &SolverMonitor{
		stats:     SolverStats{RunID: uuid.NewString()},
		startTime: time.Now(),
	}
}

// Stats returns a copy of the current statistics.
func (m *SolverMonitor) Stats() *SolverStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.stats
	return &stats
}

// RecordNode records expanding a search node.
func (m *SolverMonitor) RecordNode() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.NodesExplored++
}

// RecordBacktrack records exhausting a frame's values.
func (m *SolverMonitor) RecordBacktrack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Backtracks++
}

// RecordSolution records emitting a complete assignment.
func (m *SolverMonitor) RecordSolution() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SolutionsFound++
}

// RecordDepth records the current search depth.
func (m *SolverMonitor) RecordDepth(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}
}

// RecordPropagation records one propagation invocation.
func (m *SolverMonitor) RecordPropagation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Propagations++
}

// RecordTrailSize records the current trail size.
func (m *SolverMonitor) RecordTrailSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if size > m.stats.PeakTrailSize {
		m.stats.PeakTrailSize = size
	}
}

// FinishSearch stamps the total search time.
func (m *SolverMonitor) FinishSearch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.SearchTime = time.Since(m.startTime)
}
