package stats

/*
This file defines all the metrics being collected. As new metrics are added
please follow this pattern.
*/

const (
	/************************* Scheduler metrics **************************/
	/*
		the number of jobs created from the workload
	*/
	SchedJobsCreatedCounter = "jobsCreatedCounter"

	/*
		the number of workload declarations skipped for non-positive work
	*/
	SchedJobsSkippedCounter = "jobsSkippedCounter"

	/*
		the total number of ticks processed, idle ticks included
	*/
	SchedTicksCounter = "ticksCounter"

	/*
		the number of ticks in which no job was runnable
	*/
	SchedIdleTicksCounter = "idleTicksCounter"

	/*
		the number of round-robin requeues at the same level (includes
		quantum refreshes at the lowest level)
	*/
	SchedRequeuesCounter = "requeuesCounter"

	/*
		the number of demotions to a lower level on quantum expiry
	*/
	SchedDemotionsCounter = "demotionsCounter"

	/*
		the number of jobs that ran to completion
	*/
	SchedJobExitsCounter = "jobExitsCounter"

	/*
		the number of jobs currently queued across all levels
	*/
	SchedRunnableJobsGauge = "runnableJobsGauge"

	/************************* Driver metrics *****************************/
	/*
		wall-clock duration of a whole simulation run
	*/
	SchedRunLatency_ms = "runLatency_ms"
)
