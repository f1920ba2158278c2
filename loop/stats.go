package loop

import "time"

// Stats describes how a Loop has spent its frames so far.
type Stats struct {
	Frames          uint64
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *systemStatsInternal) snapshot() SystemStats {
	out := SystemStats{
		Name:           s.name,
		ExecutionCount: s.executionCount,
		MaxDuration:    s.maxDuration,
		LastDuration:   s.lastDuration,
		TotalDuration:  s.totalDuration,
	}
	if s.executionCount > 0 {
		out.MinDuration = s.minDuration
		out.AvgDuration = s.totalDuration / time.Duration(s.executionCount)
	}
	return out
}
