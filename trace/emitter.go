// Package trace renders scheduler events as the text lines consumed by the
// timeline visualizer. Lines are emitted in exactly the order ticks are
// processed, so the trace is a faithful linear history of the run.
package trace

//go:generate mockgen -source=emitter.go -package=mock_trace -destination=mock_trace/emitter_mock.go

import (
	"fmt"
	"io"

	"github.com/schedsim/mlfqsim/sched"
)

// Emitter receives one event per simulated tick, plus an exit event on the
// tick a job finishes. Implementations must not block; emission happens
// inside the scheduler's tick and the core assumes a local append.
type Emitter interface {
	// TickEvent records that a job consumed consumedMs of CPU at its level.
	TickEvent(id sched.JobID, name string, level sched.LevelID, consumedMs int)

	// ExitEvent records that a job finished. Emitted at most once per job,
	// on the same tick as its final TickEvent.
	ExitEvent(id sched.JobID, name string)

	// IdleEvent records a tick in which no job was runnable.
	IdleEvent(consumedMs int)
}

type writerEmitter struct {
	w io.Writer
}

// NewWriterEmitter returns an Emitter that writes one line per event to w.
// The line formats are a fixed contract with the visualizer; do not change
// them without updating it.
func NewWriterEmitter(w io.Writer) Emitter {
	return &writerEmitter{w: w}
}

func (e *writerEmitter) TickEvent(id sched.JobID, name string, level sched.LevelID, consumedMs int) {
	fmt.Fprintf(e.w, "Process %s %d has consumed %d ms in L%d\n", name, id, consumedMs, level)
}

func (e *writerEmitter) ExitEvent(id sched.JobID, name string) {
	fmt.Fprintf(e.w, "Process %s %d EXIT\n", name, id)
}

func (e *writerEmitter) IdleEvent(consumedMs int) {
	fmt.Fprintf(e.w, "Process idle %d has consumed %d ms in IDLE\n", sched.IdleID, consumedMs)
}
