package models

// Process is one tracked process. PID, User and Command are fixed when the
// record is created; the remaining fields are refreshed every cycle.
type Process struct {
	PID        int     `json:"pid" yaml:"pid"`
	User       string  `json:"user" yaml:"user"`
	Command    string  `json:"command" yaml:"command"`
	Memory     string  `json:"memory_kb" yaml:"memory_kb"`
	AgeSeconds int64   `json:"age_seconds" yaml:"age_seconds"`
	CPU        float64 `json:"cpu" yaml:"cpu"`
}

type ProcessList struct {
	Processes []Process `json:"processes" yaml:"processes"`
	Total     int       `json:"total" yaml:"total"`
	Running   int       `json:"running" yaml:"running"`
}

// Top returns a copy of l keeping only the first n processes. n <= 0 keeps
// all of them.
func (l ProcessList) Top(n int) ProcessList {
	if n > 0 && n < len(l.Processes) {
		l.Processes = l.Processes[:n:n]
	}
	return l
}

// ProcessTimes holds the CPU counters of one stat record, in clock ticks.
type ProcessTimes struct {
	UTime     uint64
	STime     uint64
	CUTime    uint64
	CSTime    uint64
	StartTime uint64
}
