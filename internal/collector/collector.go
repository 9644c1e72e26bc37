package collector

import (
	"time"

	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/models"
	"github.com/prabalesh/procview/internal/registry"
	"github.com/prabalesh/procview/internal/utilization"
)

// StatsCollector assembles a full system snapshot on every Refresh. It keeps
// the process registry and the previous CPU counters between calls; nothing
// else survives a refresh.
type StatsCollector struct {
	source   *Source
	registry *registry.Registry
	cpuCache *CPUCache
	log      *zap.Logger
}

// NewStatsCollector wires a collector over src. ticksPerSecond is normally
// ClockTicks().
func NewStatsCollector(src *Source, ticksPerSecond int64, log *zap.Logger) *StatsCollector {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsCollector{
		source:   src,
		registry: registry.New(src, ticksPerSecond, log.Named("registry")),
		cpuCache: NewCPUCache(),
		log:      log,
	}
}

// Refresh samples every record once and returns the assembled snapshot.
// Calls must not overlap.
func (s *StatsCollector) Refresh() models.SystemStats {
	start := time.Now()

	uptime := s.source.Uptime()
	counters := s.source.CPUCounters()

	var interval float64
	since := s.cpuCache.GetTimeSinceLastUsageUpdate()
	if prev, ok := s.cpuCache.Swap(counters); ok {
		interval = utilization.SystemInterval(prev, counters)
	}

	procs := s.registry.Refresh(s.source.PIDs(), uptime)

	stats := models.SystemStats{
		OS:     s.source.OSPrettyName(),
		Kernel: s.source.KernelVersion(),
		CPU: models.CPUStats{
			Usage:         utilization.System(counters),
			IntervalUsage: interval,
			Counters:      counters,
		},
		Memory: models.MemoryStats{
			Usage: s.source.MemoryUtilization(),
		},
		Uptime: uptime,
		Procs: models.ProcessList{
			Processes: procs,
			Total:     s.source.TotalProcesses(),
			Running:   s.source.RunningProcesses(),
		},
	}

	s.log.Debug("refreshed snapshot",
		zap.Int("processes", len(procs)),
		zap.Duration("since_previous", since),
		zap.Duration("took", time.Since(start)))
	return stats
}

// ClearCPUCache forgets the previous CPU sample; the next Refresh reports an
// IntervalUsage of 0.
func (s *StatsCollector) ClearCPUCache() {
	s.cpuCache.Clear()
}
