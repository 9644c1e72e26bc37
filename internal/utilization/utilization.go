// Package utilization turns cumulative kernel jiffy counters into busy
// fractions in [0,1].
//
// System and Process both divide counters accumulated since boot (or since
// process start) by the matching elapsed time, so they report an all-time
// average rather than current load. A live rate needs two samples taken some
// time apart; SystemInterval computes that from a previous and a current
// tuple.
package utilization

import "github.com/prabalesh/procview/internal/models"

// Idle returns the idle jiffies: idle + iowait.
func Idle(c models.CPUCounters) uint64 {
	return c[models.CPUIdle] + c[models.CPUIOWait]
}

// NonIdle returns the busy jiffies. Guest time is already folded into user
// and nice by the kernel, so it is not added again.
func NonIdle(c models.CPUCounters) uint64 {
	return c[models.CPUUser] + c[models.CPUNice] + c[models.CPUSystem] +
		c[models.CPUIRQ] + c[models.CPUSoftIRQ] + c[models.CPUSteal]
}

// System returns (total - idle) / total for the tuple, or 0 when total is 0.
func System(c models.CPUCounters) float64 {
	idle := Idle(c)
	total := idle + NonIdle(c)
	if total == 0 {
		return 0
	}
	return float64(total-idle) / float64(total)
}

// SystemInterval returns the busy fraction between two samples. It returns 0
// when no time elapsed or the counters went backwards.
func SystemInterval(prev, cur models.CPUCounters) float64 {
	prevIdle, curIdle := Idle(prev), Idle(cur)
	prevTotal, curTotal := prevIdle+NonIdle(prev), curIdle+NonIdle(cur)
	if curTotal <= prevTotal || curIdle < prevIdle {
		return 0
	}
	dt := curTotal - prevTotal
	di := curIdle - prevIdle
	if di > dt {
		return 0
	}
	return float64(dt-di) / float64(dt)
}

// ActiveTicks sums utime, stime, cutime and cstime.
func ActiveTicks(utime, stime, cutime, cstime uint64) uint64 {
	return utime + stime + cutime + cstime
}

// Process returns activeTicks / (uptimeSeconds * ticksPerSecond), or 0 when
// the denominator is not positive.
func Process(activeTicks uint64, uptimeSeconds, ticksPerSecond int64) float64 {
	elapsed := uptimeSeconds * ticksPerSecond
	if elapsed <= 0 {
		return 0
	}
	return float64(activeTicks) / float64(elapsed)
}

// ProcessAge returns uptimeSeconds - startTicks/ticksPerSecond. The division
// truncates, matching the kernel's whole-second uptime. A start later than
// uptime, as seen when uptime is unreadable, gives 0.
func ProcessAge(uptimeSeconds int64, startTicks uint64, ticksPerSecond int64) int64 {
	if ticksPerSecond <= 0 {
		return 0
	}
	return max(0, uptimeSeconds-int64(startTicks)/ticksPerSecond)
}
