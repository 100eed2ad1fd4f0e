// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package hwflow

import (
	"container/heap"

	"github.com/pkg/errors"
)

// Time is a point in simulated time, measured in abstract time units.
type Time uint64

// An event is a callback scheduled at a point in simulated time. seq breaks
// ties between events scheduled at the same instant: first scheduled, first
// fired.
type event struct {
	at  Time
	seq uint64
	fn  func()
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Simulator is a runnable discrete-event simulation.
//
// It is single threaded: events fire one at a time in (time, schedule order)
// order, so a run over the same event set is fully deterministic.
//
type Simulator struct {
	now    Time
	seq    uint64
	queue  eventQueue
	halted bool
}

// New returns a new simulator with an empty event queue at t=0.
//
func New() *Simulator {
	return &Simulator{}
}

// Now returns the current simulated time.
//
func (s *Simulator) Now() Time { return s.now }

// Halted reports whether Halt has been called.
//
func (s *Simulator) Halted() bool { return s.halted }

// Schedule enqueues fn to fire delay time units from now. A zero delay fires
// fn at the current instant, after all events already scheduled at it.
//
func (s *Simulator) Schedule(delay Time, fn func()) {
	s.push(s.now+delay, fn)
}

// ScheduleAt enqueues fn to fire at the absolute instant t.
//
func (s *Simulator) ScheduleAt(t Time, fn func()) error {
	if t < s.now {
		return errors.Errorf("schedule at t=%d: time %d already passed", t, s.now)
	}
	s.push(t, fn)
	return nil
}

// Every enqueues fn to fire every period time units, first firing one period
// from now. The process reschedules itself until the simulation halts.
//
func (s *Simulator) Every(period Time, fn func()) error {
	if period == 0 {
		return errors.New("zero period")
	}
	var tick func()
	tick = func() {
		fn()
		s.push(s.now+period, tick)
	}
	s.push(s.now+period, tick)
	return nil
}

func (s *Simulator) push(t Time, fn func()) {
	e := &event{at: t, seq: s.seq, fn: fn}
	s.seq++
	heap.Push(&s.queue, e)
}

// Halt stops the run after the current event. A halted simulator stays
// halted: events remaining in the queue never fire.
//
func (s *Simulator) Halt() { s.halted = true }

// Run fires events in order until the queue drains or Halt is called, and
// returns the time of the last event fired.
//
func (s *Simulator) Run() Time {
	return s.RunUntil(^Time(0))
}

// RunUntil is Run bounded by simulated time: events scheduled after end stay
// in the queue and the current time is advanced to end.
//
func (s *Simulator) RunUntil(end Time) Time {
	for !s.halted && len(s.queue) > 0 {
		e := s.queue[0]
		if e.at > end {
			s.now = end
			return s.now
		}
		heap.Pop(&s.queue)
		s.now = e.at
		e.fn()
	}
	return s.now
}
