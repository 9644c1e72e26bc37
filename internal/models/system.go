package models

// CPU counter positions within the aggregate "cpu" line of the kernel stat
// record.
const (
	CPUUser = iota
	CPUNice
	CPUSystem
	CPUIdle
	CPUIOWait
	CPUIRQ
	CPUSoftIRQ
	CPUSteal
	CPUGuest
	CPUGuestNice

	CPUFieldCount
)

// CPUCounters is the aggregate jiffy tuple in kernel order.
type CPUCounters [CPUFieldCount]uint64

type SystemStats struct {
	OS     string      `json:"os" yaml:"os"`
	Kernel string      `json:"kernel" yaml:"kernel"`
	CPU    CPUStats    `json:"cpu" yaml:"cpu"`
	Memory MemoryStats `json:"memory" yaml:"memory"`
	Uptime int64       `json:"uptime_seconds" yaml:"uptime_seconds"`
	Procs  ProcessList `json:"procs" yaml:"procs"`
}

type CPUStats struct {
	// Usage is the busy fraction accumulated since boot, not current load.
	Usage float64 `json:"usage" yaml:"usage"`
	// IntervalUsage is the busy fraction between the last two refreshes.
	IntervalUsage float64     `json:"interval_usage" yaml:"interval_usage"`
	Counters      CPUCounters `json:"counters" yaml:"counters"`
}

type MemoryStats struct {
	Usage float64 `json:"usage" yaml:"usage"`
}
