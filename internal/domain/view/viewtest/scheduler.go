// Package viewtest provides a manual scheduler for driving navigator
// transitions with virtual time in tests.
package viewtest

import (
	"sync"
	"time"
)

// Scheduler implements view.Scheduler with a manually advanced clock.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []entry
}

type entry struct {
	at time.Duration
	fn func()
}

// NewScheduler creates a manual scheduler starting at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AfterFunc records fn to run once the virtual clock reaches now+d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, entry{at: s.now + d, fn: fn})
}

// Advance moves the virtual clock forward, firing due callbacks in order.
// Callbacks may schedule further work; anything falling inside the advanced
// window fires in the same call.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		idx := -1
		for i, e := range s.pending {
			if e.at > target {
				continue
			}
			if idx == -1 || e.at < s.pending[idx].at {
				idx = i
			}
		}
		if idx == -1 {
			break
		}
		e := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		if e.at > s.now {
			s.now = e.at
		}
		s.mu.Unlock()
		e.fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending reports how many callbacks are still scheduled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
