// Package queue implements the FIFO run queue for one scheduling level.
package queue

import (
	"fmt"

	"github.com/schedsim/mlfqsim/sched"
)

// Queue is a strict FIFO of job ids with O(1) amortized push and pop.
// Round-robin fairness within a level depends on insertion order being
// preserved exactly, so no other access pattern is offered: no peeking,
// no reordering, no priority within the level.
//
// The queue holds ids rather than jobs; job state lives in the scheduler's
// arena, which keeps ownership transfers between queues to an index move.
type Queue struct {
	ids  []sched.JobID
	head int
}

func New() *Queue {
	return &Queue{}
}

// Push appends a job id at the tail.
func (q *Queue) Push(id sched.JobID) {
	q.ids = append(q.ids, id)
}

// Pop removes and returns the earliest-inserted id. Popping an empty queue
// means the caller's dispatch logic is broken, so it panics rather than
// returning a sentinel.
func (q *Queue) Pop() sched.JobID {
	if q.Empty() {
		panic(fmt.Sprintf("queue: Pop from empty queue (len %d, head %d)", len(q.ids), q.head))
	}
	id := q.ids[q.head]
	q.head++
	if q.head == len(q.ids) {
		q.ids = q.ids[:0]
		q.head = 0
	}
	return id
}

func (q *Queue) Empty() bool {
	return q.head == len(q.ids)
}

// Len returns the number of queued ids.
func (q *Queue) Len() int {
	return len(q.ids) - q.head
}
