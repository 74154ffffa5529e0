// Package sched provides definitions for simulator Jobs and the priority
// levels they are scheduled on.
package sched

// JobID identifies a Job for the lifetime of a simulation. IDs are assigned
// monotonically starting at 1 and are never reused. ID 0 is reserved for the
// idle pseudo-process in trace output.
type JobID int

// IdleID is the pseudo-ID rendered on idle trace lines.
const IdleID JobID = 0

// LevelID is an index into the ordered set of priority levels, 0 being the
// highest priority.
type LevelID int

// Job is the unit of schedulable work. Jobs live in an arena owned by the
// scheduler and are referenced by JobID from the level queues, so a Job is
// only ever reachable from one queue at a time.
type Job struct {
	ID     JobID
	Name   string
	Level  LevelID
	Status Status

	// WorkLeftMs is the CPU time still needed, in milliseconds. It goes
	// negative when the final tick overshoots the remaining work.
	WorkLeftMs int

	// TicksLeft is the remaining quantum at the current level. It stays in
	// [0, quantum-of-level] while the job is queued or running.
	TicksLeft int
}

// Status for a Job
type Status int

const (
	// Waiting in a level queue to be dispatched
	Queued Status = iota

	// Being executed for the current tick
	Running

	// Finished all its work; terminal
	Exited
)

func (s Status) String() string {
	asString := [3]string{"Queued", "Running", "Exited"}
	if s < Queued || s > Exited {
		return "Unknown"
	}
	return asString[s]
}
