package collector

import (
	"math"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"
)

// DefaultClockTicks is USER_HZ on every mainstream Linux architecture.
const DefaultClockTicks = 100

// ClockTicks returns the kernel's clock ticks per second, falling back to
// DefaultClockTicks.
func ClockTicks() int64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return DefaultClockTicks
	}
	return hz
}

// Uptime returns whole seconds since boot from the first field of the uptime
// record.
func (s *Source) Uptime() int64 {
	fields := strings.Fields(s.firstLine(s.procPath("uptime")))
	if len(fields) == 0 {
		return 0
	}
	up, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || up < 0 || math.IsNaN(up) || math.IsInf(up, 0) {
		return 0
	}
	return int64(up)
}

// TotalProcesses returns the "processes" line of the stat record: forks since
// boot.
func (s *Source) TotalProcesses() int {
	return s.labeledInt(s.procPath("stat"), "processes")
}

func (s *Source) RunningProcesses() int {
	return s.labeledInt(s.procPath("stat"), "procs_running")
}
