package scheduler

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Scheduler config variables read at initialization
// TickMs - simulated CPU time one tick represents, in ms. Every trace
//     line attributes exactly this much consumption.
// Quanta - per-level quanta in ticks, highest priority first. The slice
//     length is the number of levels; it never changes during a run.
// MaxTicks - hard cap on total ticks, a guard against runaway workloads
//     while experimenting. Hitting it is a bounded early exit, not an error.
// IdleGraceTicks - consecutive non-runnable ticks tolerated before the
//     driver ends the run.
type SchedulerConfig struct {
	TickMs         int   `json:"tick_ms"`
	Quanta         []int `json:"quanta"`
	MaxTicks       int   `json:"max_ticks"`
	IdleGraceTicks int   `json:"idle_grace_ticks"`
}

// DefaultConfig returns the classic teaching setup: three levels with
// quanta 1/2/4 ticks, 10ms ticks.
func DefaultConfig() SchedulerConfig {
	return SchedulerConfig{
		TickMs:         10,
		Quanta:         []int{1, 2, 4},
		MaxTicks:       100000,
		IdleGraceTicks: 10,
	}
}

// ParseConfig overlays the JSON configText onto the defaults and validates
// the result. An empty configText yields the defaults.
func ParseConfig(configText string) (SchedulerConfig, error) {
	c := DefaultConfig()
	if configText != "" {
		if err := json.Unmarshal([]byte(configText), &c); err != nil {
			return c, errors.Wrap(err, "parsing scheduler config")
		}
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c SchedulerConfig) Validate() error {
	if c.TickMs <= 0 {
		return errors.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if len(c.Quanta) == 0 {
		return errors.New("at least one level is required")
	}
	for i, q := range c.Quanta {
		if q <= 0 {
			return errors.Errorf("quantum for L%d must be positive, got %d", i, q)
		}
	}
	if c.MaxTicks <= 0 {
		return errors.Errorf("max_ticks must be positive, got %d", c.MaxTicks)
	}
	if c.IdleGraceTicks < 0 {
		return errors.Errorf("idle_grace_ticks must not be negative, got %d", c.IdleGraceTicks)
	}
	return nil
}
