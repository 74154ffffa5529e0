package scheduler

import (
	log "github.com/sirupsen/logrus"

	"github.com/schedsim/mlfqsim/common/stats"
	"github.com/schedsim/mlfqsim/workload"
)

// RunSummary describes how a simulation run ended.
type RunSummary struct {
	// TicksRun is the total number of ticks processed, idle included.
	TicksRun int

	// IdleTicks is the number of ticks with no runnable job.
	IdleTicks int

	// JobsCompleted is the number of jobs that exited.
	JobsCompleted int

	// CapReached is true when the run was cut off by MaxTicks with
	// runnable jobs remaining.
	CapReached bool
}

// LoadWorkload feeds parsed declarations to the scheduler in order and
// returns the number of jobs created. Creation order determines the initial
// FIFO order at the highest level.
func LoadWorkload(m *MLFQ, decls []workload.Decl) int {
	created := 0
	for _, d := range decls {
		if id := m.AddJob(d.Name, d.WorkMs); id != 0 {
			created++
		}
	}
	return created
}

// Run drives the scheduler one tick at a time until every queue has been
// empty for more than the configured grace, or the tick cap is reached.
// Both bounds are driver policy, not scheduler invariants: the scheduler
// itself would happily process idle ticks forever.
func Run(m *MLFQ, stat stats.StatsReceiver) RunSummary {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	defer stat.Latency(stats.SchedRunLatency_ms).Time().Stop()

	config := m.Config()
	summary := RunSummary{}
	idle := 0
	for summary.TicksRun < config.MaxTicks {
		if !m.HasRunnableJobs() {
			idle++
			if idle > config.IdleGraceTicks {
				summary.JobsCompleted = m.JobsCompleted()
				log.Infof("no runnable jobs for %d consecutive ticks, ending run", idle-1)
				return summary
			}
			summary.IdleTicks++
		} else {
			idle = 0
		}
		m.Tick()
		summary.TicksRun++
	}

	summary.JobsCompleted = m.JobsCompleted()
	summary.CapReached = m.HasRunnableJobs()
	if summary.CapReached {
		log.Warnf("tick cap %d reached with %d jobs still runnable", config.MaxTicks, m.Pending())
	}
	return summary
}
