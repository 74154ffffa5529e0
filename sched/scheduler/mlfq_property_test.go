//go:build property_test
// +build property_test

package scheduler

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/schedsim/mlfqsim/sched"
)

// simulate runs a whole workload to completion and returns the trace.
func simulate(works []int, quanta []int) []simEvent {
	e := &recordingEmitter{}
	m := NewMLFQ(testConfig(quanta...), e, nil)
	for _, w := range works {
		m.AddJob("spin", w)
	}
	for ticks := 0; m.HasRunnableJobs(); ticks++ {
		if ticks > 10000000 {
			panic("generated simulation did not terminate")
		}
		m.Tick()
	}
	return e.events
}

func Test_WorkConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every job consumes its work rounded up to a tick and exits exactly once", prop.ForAll(
		func(works []int, quanta []int) bool {
			tickMs := DefaultConfig().TickMs
			events := simulate(works, quanta)

			consumed := map[sched.JobID]int{}
			exits := map[sched.JobID]int{}
			for _, ev := range events {
				switch ev.kind {
				case "tick":
					consumed[ev.id] += ev.ms
				case "exit":
					exits[ev.id]++
					// The exit tick is the first on which consumption
					// covers the work.
					if consumed[ev.id] < works[ev.id-1] || consumed[ev.id]-tickMs >= works[ev.id-1] {
						return false
					}
				}
			}
			for i, w := range works {
				id := sched.JobID(i + 1)
				roundedUp := ((w + tickMs - 1) / tickMs) * tickMs
				if consumed[id] != roundedUp || exits[id] != 1 {
					return false
				}
			}
			return true
		},
		sched.GopterGenWorkMsList(),
		sched.GopterGenQuanta(),
	))

	properties.TestingRun(t)
}

func Test_DemotionMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a job's level never decreases and steps down at most one level at a time", prop.ForAll(
		func(works []int, quanta []int) bool {
			lastLevel := map[sched.JobID]sched.LevelID{}
			for _, ev := range simulate(works, quanta) {
				if ev.kind != "tick" {
					continue
				}
				if prev, ok := lastLevel[ev.id]; ok {
					if ev.level < prev || ev.level > prev+1 {
						return false
					}
				} else if ev.level != 0 {
					return false // every job starts at the highest level
				}
				lastLevel[ev.id] = ev.level
			}
			return true
		},
		sched.GopterGenWorkMsList(),
		sched.GopterGenQuanta(),
	))

	properties.TestingRun(t)
}

func Test_PriorityDominance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("each tick dispatches from the highest non-empty level", prop.ForAll(
		func(works []int, quanta []int) bool {
			e := &recordingEmitter{}
			m := NewMLFQ(testConfig(quanta...), e, nil)
			for _, w := range works {
				m.AddJob("spin", w)
			}

			for ticks := 0; m.HasRunnableJobs(); ticks++ {
				if ticks > 10000000 {
					return false
				}
				want := m.firstNonEmptyLevel()
				m.Tick()
				got := e.events[len(e.events)-1]
				if got.kind == "exit" {
					got = e.events[len(e.events)-2]
				}
				if got.kind != "tick" || got.level != sched.LevelID(want) {
					return false
				}
			}
			return true
		},
		sched.GopterGenWorkMsList(),
		sched.GopterGenQuanta(),
	))

	properties.TestingRun(t)
}

func Test_IdleIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("once drained, further ticks emit only identical idle events", prop.ForAll(
		func(works []int, quanta []int) bool {
			e := &recordingEmitter{}
			m := NewMLFQ(testConfig(quanta...), e, nil)
			for _, w := range works {
				m.AddJob("spin", w)
			}
			for ticks := 0; m.HasRunnableJobs(); ticks++ {
				if ticks > 10000000 {
					return false
				}
				m.Tick()
			}

			drainedLen := len(e.events)
			completed := m.JobsCompleted()
			for i := 0; i < 5; i++ {
				m.Tick()
			}
			if m.HasRunnableJobs() || m.JobsCompleted() != completed {
				return false
			}
			for _, ev := range e.events[drainedLen:] {
				if ev.kind != "idle" || ev.ms != DefaultConfig().TickMs {
					return false
				}
			}
			return true
		},
		sched.GopterGenWorkMsList(),
		sched.GopterGenQuanta(),
	))

	properties.TestingRun(t)
}
