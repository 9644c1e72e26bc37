package collector

import (
	"strconv"
	"strings"

	"github.com/prabalesh/procview/internal/models"
)

// CPUCounters returns the aggregate jiffy tuple from the "cpu" line of the
// stat record. Per-core "cpuN" lines are skipped. Kernels that report fewer
// than ten columns leave the trailing counters at zero; a malformed token
// yields the zero tuple.
func (s *Source) CPUCounters() models.CPUCounters {
	var counters models.CPUCounters
	s.scanLines(s.procPath("stat"), func(line string) bool {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "cpu" {
			return true
		}
		counters = parseCPULine(fields[1:])
		return false
	})
	return counters
}

func parseCPULine(fields []string) models.CPUCounters {
	var counters models.CPUCounters
	for i := 0; i < len(fields) && i < models.CPUFieldCount; i++ {
		val, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return models.CPUCounters{}
		}
		counters[i] = val
	}
	return counters
}
