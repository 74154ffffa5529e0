// Package scheduler implements the multi-level feedback queue core: the
// per-tick dispatch decision and the requeue/demotion state transitions.
package scheduler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/schedsim/mlfqsim/common/stats"
	"github.com/schedsim/mlfqsim/sched"
	"github.com/schedsim/mlfqsim/sched/queue"
	"github.com/schedsim/mlfqsim/trace"
)

// MLFQ owns the ordered level queues and the job arena. It is constructed
// once per simulation run and driven one tick at a time; it is not safe for
// concurrent use and does not need to be - the whole simulation is a single
// sequential computation.
//
// State machine per job: Queued(level) -> Running(level) -> Queued(level'),
// with level' >= level, or Exited. All transitions happen inside Tick, the
// sole mutator of scheduler state. A job's level never decreases, and an
// Exited job is never requeued.
type MLFQ struct {
	config  SchedulerConfig
	levels  []*queue.Queue
	jobs    []sched.Job // arena, indexed by JobID-1
	nextID  sched.JobID
	exited  int
	started bool

	emitter trace.Emitter
	stat    stats.StatsReceiver
}

// NewMLFQ creates a scheduler with one empty queue per configured level.
// The config must have been validated. A nil stat gets a no-op receiver.
func NewMLFQ(config SchedulerConfig, emitter trace.Emitter, stat stats.StatsReceiver) *MLFQ {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	levels := make([]*queue.Queue, len(config.Quanta))
	for i := range levels {
		levels[i] = queue.New()
	}
	return &MLFQ{
		config:  config,
		levels:  levels,
		nextID:  1,
		emitter: emitter,
		stat:    stat,
	}
}

// AddJob creates a job at the highest level with that level's full quantum
// and returns its id. Creation order fixes the initial FIFO order. All jobs
// are known up front: calling AddJob after the first Tick panics.
//
// A declaration with non-positive work is malformed; it is skipped silently
// (no job created, id 0 returned) per the workload contract.
func (m *MLFQ) AddJob(name string, workMs int) sched.JobID {
	if m.started {
		panic(fmt.Sprintf("scheduler: AddJob(%q) after ticking started; there is no dynamic arrival", name))
	}
	if workMs <= 0 {
		m.stat.Counter(stats.SchedJobsSkippedCounter).Inc(1)
		log.Debugf("skipping workload declaration %q with non-positive work %dms", name, workMs)
		return 0
	}

	id := m.nextID
	m.nextID++
	m.jobs = append(m.jobs, sched.Job{
		ID:         id,
		Name:       name,
		Level:      0,
		Status:     sched.Queued,
		WorkLeftMs: workMs,
		TicksLeft:  m.config.Quanta[0],
	})
	m.levels[0].Push(id)
	m.stat.Counter(stats.SchedJobsCreatedCounter).Inc(1)
	return id
}

// Tick advances the simulation by exactly one tick:
//
//  1. dispatch from the highest non-empty level, FIFO within the level;
//     if every level is empty the tick is idle and nothing changes
//  2. guard: a job about to run always has a positive quantum budget
//  3. account one tick of work and emit the tick event
//  4. a finished job exits before any requeue/demotion decision, even if
//     its quantum expired on the same tick
//  5. otherwise round-robin at the same level while quantum remains, else
//     demote with a fresh quantum (the lowest level refreshes in place)
func (m *MLFQ) Tick() {
	m.started = true
	m.stat.Counter(stats.SchedTicksCounter).Inc(1)

	level := m.firstNonEmptyLevel()
	if level < 0 {
		m.stat.Counter(stats.SchedIdleTicksCounter).Inc(1)
		m.emitter.IdleEvent(m.config.TickMs)
		return
	}

	id := m.levels[level].Pop()
	j := m.job(id)
	if j.Status != sched.Queued {
		panic(fmt.Sprintf("scheduler: dispatched job %d in state %v, want Queued", id, j.Status))
	}
	if j.Level != sched.LevelID(level) {
		panic(fmt.Sprintf("scheduler: job %d popped from L%d but records L%d", id, level, j.Level))
	}
	if j.TicksLeft < 0 || j.TicksLeft > m.config.Quanta[level] {
		panic(fmt.Sprintf("scheduler: job %d has quantum %d outside [0,%d]", id, j.TicksLeft, m.config.Quanta[level]))
	}
	j.Status = sched.Running

	if j.TicksLeft == 0 {
		j.TicksLeft = m.config.Quanta[level]
	}

	j.WorkLeftMs -= m.config.TickMs
	j.TicksLeft--
	m.emitter.TickEvent(j.ID, j.Name, j.Level, m.config.TickMs)

	if j.WorkLeftMs <= 0 {
		j.Status = sched.Exited
		m.exited++
		m.stat.Counter(stats.SchedJobExitsCounter).Inc(1)
		m.stat.Gauge(stats.SchedRunnableJobsGauge).Update(int64(m.Pending()))
		m.emitter.ExitEvent(j.ID, j.Name)
		return
	}

	if j.TicksLeft > 0 {
		m.requeue(j, level)
		m.stat.Counter(stats.SchedRequeuesCounter).Inc(1)
		return
	}

	if level < len(m.levels)-1 {
		j.Level++
		j.TicksLeft = m.config.Quanta[level+1]
		m.requeue(j, level+1)
		m.stat.Counter(stats.SchedDemotionsCounter).Inc(1)
		log.Debugf("job %d quantum expired, demoted to L%d", j.ID, j.Level)
		return
	}

	// The lowest level never demotes further; refresh its quantum and
	// rotate to the tail.
	j.TicksLeft = m.config.Quanta[level]
	m.requeue(j, level)
	m.stat.Counter(stats.SchedRequeuesCounter).Inc(1)
}

// HasRunnableJobs reports whether any level has a queued job.
func (m *MLFQ) HasRunnableJobs() bool {
	return m.firstNonEmptyLevel() >= 0
}

// Pending returns the number of jobs queued across all levels.
func (m *MLFQ) Pending() int {
	n := 0
	for _, q := range m.levels {
		n += q.Len()
	}
	return n
}

// JobsCompleted returns the number of jobs that have exited so far.
func (m *MLFQ) JobsCompleted() int {
	return m.exited
}

func (m *MLFQ) NumLevels() int {
	return len(m.levels)
}

func (m *MLFQ) Config() SchedulerConfig {
	return m.config
}

func (m *MLFQ) firstNonEmptyLevel() int {
	for i, q := range m.levels {
		if !q.Empty() {
			return i
		}
	}
	return -1
}

func (m *MLFQ) job(id sched.JobID) *sched.Job {
	if id < 1 || int(id) > len(m.jobs) {
		panic(fmt.Sprintf("scheduler: job id %d outside arena [1,%d]", id, len(m.jobs)))
	}
	return &m.jobs[id-1]
}

func (m *MLFQ) requeue(j *sched.Job, level int) {
	if j.Status != sched.Running {
		panic(fmt.Sprintf("scheduler: requeue of job %d in state %v, want Running", j.ID, j.Status))
	}
	j.Status = sched.Queued
	m.levels[level].Push(j.ID)
	m.stat.Gauge(stats.SchedRunnableJobsGauge).Update(int64(m.Pending()))
}
