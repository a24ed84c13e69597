package compression

import (
	"sync"
	"time"
)

// Stats describes a single compression outcome. It is stored alongside cached
// payloads, so the fields carry JSON tags.
type Stats struct {
	OriginalSize   int           `json:"original_size"`
	CompressedSize int           `json:"compressed_size"`
	Ratio          float64       `json:"ratio"`
	Algorithm      Algorithm     `json:"algorithm"`
	Duration       time.Duration `json:"duration"`
}

// Summary is the aggregate view over all recorded stats.
type Summary struct {
	TotalRequests        int               `json:"total_requests"`
	AverageRatio         float64           `json:"average_ratio"`
	AverageDuration      time.Duration     `json:"average_duration"`
	AlgorithmCounts      map[Algorithm]int `json:"algorithm_counts"`
	TotalOriginalBytes   int64             `json:"total_original_bytes"`
	TotalCompressedBytes int64             `json:"total_compressed_bytes"`
	TotalSavedBytes      int64             `json:"total_saved_bytes"`
}

// Aggregator collects compression stats keyed by cache key. Keying by cache
// key means replaying a cached response overwrites the existing entry instead
// of double-counting it. Safe for concurrent use; middleware instances share
// one Aggregator by injection rather than through package state.
type Aggregator struct {
	mu      sync.RWMutex
	entries map[string]Stats
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[string]Stats)}
}

// Record inserts or replaces the stats entry for the given cache key.
func (a *Aggregator) Record(key string, s Stats) {
	a.mu.Lock()
	a.entries[key] = s
	a.mu.Unlock()
}

// Len returns the number of recorded entries.
func (a *Aggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entries)
}

// Aggregate computes the summary over all recorded entries. With no entries it
// returns zero values and an empty histogram.
func (a *Aggregator) Aggregate() Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	summary := Summary{AlgorithmCounts: make(map[Algorithm]int)}
	if len(a.entries) == 0 {
		return summary
	}

	var (
		ratioSum    float64
		durationSum time.Duration
	)
	for _, s := range a.entries {
		summary.TotalRequests++
		ratioSum += s.Ratio
		durationSum += s.Duration
		summary.AlgorithmCounts[s.Algorithm]++
		summary.TotalOriginalBytes += int64(s.OriginalSize)
		summary.TotalCompressedBytes += int64(s.CompressedSize)
	}
	summary.AverageRatio = ratioSum / float64(summary.TotalRequests)
	summary.AverageDuration = durationSum / time.Duration(summary.TotalRequests)
	summary.TotalSavedBytes = summary.TotalOriginalBytes - summary.TotalCompressedBytes
	return summary
}
