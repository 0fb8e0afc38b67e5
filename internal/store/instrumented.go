package store

import (
	"sync/atomic"
	"time"

	"github.com/setkv/setkv/pkg/kv"
)

// Metrics holds timing statistics for store operations.
// Uses atomic operations for thread-safe updates without locks.
// Read operations (Exists, Members, Cardinality) share one counter.
type Metrics struct {
	ReadCount   atomic.Uint64
	AddCount    atomic.Uint64
	RemoveCount atomic.Uint64
	DeleteCount atomic.Uint64
	FlushCount  atomic.Uint64

	// Cumulative latencies in nanoseconds
	ReadLatencyNs   atomic.Uint64
	AddLatencyNs    atomic.Uint64
	RemoveLatencyNs atomic.Uint64
	DeleteLatencyNs atomic.Uint64
	FlushLatencyNs  atomic.Uint64
}

// InstrumentedStore wraps any kv.Store implementation with timing metrics.
// This pattern works for both in-memory and Raft-backed stores.
type InstrumentedStore struct {
	store   kv.Store
	metrics *Metrics
}

// Compile-time check to ensure InstrumentedStore implements kv.Store.
var _ kv.Store = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps a store with instrumentation.
func NewInstrumentedStore(store kv.Store) *InstrumentedStore {
	return &InstrumentedStore{
		store:   store,
		metrics: &Metrics{},
	}
}

func (s *InstrumentedStore) record(count, latency *atomic.Uint64, start time.Time) {
	count.Add(1)
	latency.Add(uint64(time.Since(start).Nanoseconds()))
}

// Exists delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Exists(key string) bool {
	start := time.Now()
	defer s.record(&s.metrics.ReadCount, &s.metrics.ReadLatencyNs, start)
	return s.store.Exists(key)
}

// AddMembers delegates to the wrapped store and records timing.
func (s *InstrumentedStore) AddMembers(key string, members []string) (int, error) {
	start := time.Now()
	defer s.record(&s.metrics.AddCount, &s.metrics.AddLatencyNs, start)
	return s.store.AddMembers(key, members)
}

// RemoveMember delegates to the wrapped store and records timing.
func (s *InstrumentedStore) RemoveMember(key, member string) (bool, error) {
	start := time.Now()
	defer s.record(&s.metrics.RemoveCount, &s.metrics.RemoveLatencyNs, start)
	return s.store.RemoveMember(key, member)
}

// Members delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Members(key string) []string {
	start := time.Now()
	defer s.record(&s.metrics.ReadCount, &s.metrics.ReadLatencyNs, start)
	return s.store.Members(key)
}

// Cardinality delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Cardinality(key string) int {
	start := time.Now()
	defer s.record(&s.metrics.ReadCount, &s.metrics.ReadLatencyNs, start)
	return s.store.Cardinality(key)
}

// DeleteKey delegates to the wrapped store and records timing.
func (s *InstrumentedStore) DeleteKey(key string) (bool, error) {
	start := time.Now()
	defer s.record(&s.metrics.DeleteCount, &s.metrics.DeleteLatencyNs, start)
	return s.store.DeleteKey(key)
}

// FlushAll delegates to the wrapped store and records timing.
func (s *InstrumentedStore) FlushAll() error {
	start := time.Now()
	defer s.record(&s.metrics.FlushCount, &s.metrics.FlushLatencyNs, start)
	return s.store.FlushAll()
}

// GetMetrics returns a snapshot of current metrics.
func (s *InstrumentedStore) GetMetrics() MetricsSnapshot {
	readCount := s.metrics.ReadCount.Load()
	addCount := s.metrics.AddCount.Load()
	removeCount := s.metrics.RemoveCount.Load()
	deleteCount := s.metrics.DeleteCount.Load()
	flushCount := s.metrics.FlushCount.Load()

	return MetricsSnapshot{
		ReadCount:        readCount,
		AddCount:         addCount,
		RemoveCount:      removeCount,
		DeleteCount:      deleteCount,
		FlushCount:       flushCount,
		ReadAvgLatency:   s.avgLatency(s.metrics.ReadLatencyNs.Load(), readCount),
		AddAvgLatency:    s.avgLatency(s.metrics.AddLatencyNs.Load(), addCount),
		RemoveAvgLatency: s.avgLatency(s.metrics.RemoveLatencyNs.Load(), removeCount),
		DeleteAvgLatency: s.avgLatency(s.metrics.DeleteLatencyNs.Load(), deleteCount),
		FlushAvgLatency:  s.avgLatency(s.metrics.FlushLatencyNs.Load(), flushCount),
	}
}

// ResetMetrics clears all metrics counters.
func (s *InstrumentedStore) ResetMetrics() {
	s.metrics.ReadCount.Store(0)
	s.metrics.AddCount.Store(0)
	s.metrics.RemoveCount.Store(0)
	s.metrics.DeleteCount.Store(0)
	s.metrics.FlushCount.Store(0)
	s.metrics.ReadLatencyNs.Store(0)
	s.metrics.AddLatencyNs.Store(0)
	s.metrics.RemoveLatencyNs.Store(0)
	s.metrics.DeleteLatencyNs.Store(0)
	s.metrics.FlushLatencyNs.Store(0)
}

func (s *InstrumentedStore) avgLatency(totalNs, count uint64) time.Duration {
	if count == 0 {
		return 0
	}
	return time.Duration(totalNs / count)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	ReadCount   uint64
	AddCount    uint64
	RemoveCount uint64
	DeleteCount uint64
	FlushCount  uint64

	ReadAvgLatency   time.Duration
	AddAvgLatency    time.Duration
	RemoveAvgLatency time.Duration
	DeleteAvgLatency time.Duration
	FlushAvgLatency  time.Duration
}
