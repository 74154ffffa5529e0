package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pkg/errors"

	"github.com/schedsim/mlfqsim/common/stats"
	"github.com/schedsim/mlfqsim/sched/scheduler"
	"github.com/schedsim/mlfqsim/trace"
	"github.com/schedsim/mlfqsim/workload"
)

func main() {
	if err := makeRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

type simCLI struct {
	configText string
	maxTicks   int
	idleGrace  int
	logLevel   string
	dumpStats  bool
}

func makeRootCmd() *cobra.Command {
	c := &simCLI{}
	rootCmd := &cobra.Command{
		Use:   "mlfqsim [workload]",
		Short: "mlfqsim simulates a multi-level feedback queue CPU scheduler",
		Long: `mlfqsim runs a discrete-time simulation of a multi-level feedback queue
CPU scheduler over a synthetic workload and writes one trace line per tick
to stdout. The workload is a semicolon-delimited list of "spin <ms>"
declarations, e.g.:

  mlfqsim "spin 10000 &; spin 200000 &; spin 3000000 &;"

Without a workload argument a built-in default workload is used.
Diagnostics go to stderr so the trace stays machine-parseable.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	rootCmd.Flags().StringVar(&c.configText, "sched_config", "", "scheduler configuration as JSON text, overlaid on the defaults")
	rootCmd.Flags().IntVar(&c.maxTicks, "max_ticks", 0, "override the total tick safety cap")
	rootCmd.Flags().IntVar(&c.idleGrace, "idle_grace", -1, "override the consecutive idle ticks tolerated before the run ends")
	rootCmd.Flags().StringVar(&c.logLevel, "log_level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&c.dumpStats, "dump_stats", false, "render run statistics as JSON to stderr at exit")
	return rootCmd
}

func (c *simCLI) run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	config, err := scheduler.ParseConfig(c.configText)
	if err != nil {
		return err
	}
	if c.maxTicks > 0 {
		config.MaxTicks = c.maxTicks
	}
	if c.idleGrace >= 0 {
		config.IdleGraceTicks = c.idleGrace
	}
	if err := config.Validate(); err != nil {
		return err
	}

	text := workload.DefaultWorkload
	if len(args) > 0 {
		text = args[0]
	}
	decls := workload.Parse(text)
	if len(decls) == 0 {
		log.Warnf("workload %q declares no runnable jobs", text)
	}

	stat := stats.NewStatsReceiver().Scope("sched")
	m := scheduler.NewMLFQ(config, trace.NewWriterEmitter(cmd.OutOrStdout()), stat)
	created := scheduler.LoadWorkload(m, decls)
	log.Infof("starting simulation: %d jobs, %d levels, %dms ticks", created, m.NumLevels(), config.TickMs)

	summary := scheduler.Run(m, stat)
	log.Infof("simulation finished after %d ticks (%d idle), %d of %d jobs completed",
		summary.TicksRun, summary.IdleTicks, summary.JobsCompleted, created)

	if c.dumpStats {
		fmt.Fprintf(os.Stderr, "%s\n", stat.Render(true))
	}
	return nil
}
