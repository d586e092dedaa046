// Package conditions checks system metrics before a scheduled scrape is allowed to run
package conditions

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/umputun/jobfeed/app/config"
)

// Checker verifies system conditions using gopsutil probes
type Checker struct {
	cpuPercent func() (float64, error)
	memPercent func() (float64, error)
	loadAvg1   func() (float64, error)
}

// NewChecker makes Checker sampling cpu usage over cpuSample, 1s if zero
func NewChecker(cpuSample time.Duration) *Checker {
	if cpuSample <= 0 {
		cpuSample = time.Second
	}
	return &Checker{
		cpuPercent: func() (float64, error) {
			res, err := cpu.Percent(cpuSample, false)
			if err != nil {
				return 0, err
			}
			if len(res) == 0 {
				return 0, fmt.Errorf("no CPU data available")
			}
			return res[0], nil
		},
		memPercent: func() (float64, error) {
			v, err := mem.VirtualMemory()
			if err != nil {
				return 0, err
			}
			return v.UsedPercent, nil
		},
		loadAvg1: func() (float64, error) {
			l, err := load.Avg()
			if err != nil {
				return 0, err
			}
			return l.Load1, nil
		},
	}
}

// Check verifies if all conditions are met.
// Returns true if conditions are satisfied, false with reason otherwise
func (c *Checker) Check(cond config.ConditionsConfig) (bool, string) {
	if cond.CPUBelow != nil {
		current, err := c.cpuPercent()
		if err != nil {
			return false, fmt.Sprintf("failed to get CPU: %v", err)
		}
		if int(current) >= *cond.CPUBelow {
			return false, fmt.Sprintf("CPU at %d%%, threshold %d%%", int(current), *cond.CPUBelow)
		}
	}

	if cond.MemoryBelow != nil {
		current, err := c.memPercent()
		if err != nil {
			return false, fmt.Sprintf("failed to get memory: %v", err)
		}
		if int(current) >= *cond.MemoryBelow {
			return false, fmt.Sprintf("memory at %d%%, threshold %d%%", int(current), *cond.MemoryBelow)
		}
	}

	if cond.LoadAvgBelow != nil {
		current, err := c.loadAvg1()
		if err != nil {
			return false, fmt.Sprintf("failed to get load average: %v", err)
		}
		if current >= *cond.LoadAvgBelow {
			return false, fmt.Sprintf("load at %.2f, threshold %.2f", current, *cond.LoadAvgBelow)
		}
	}

	return true, ""
}
