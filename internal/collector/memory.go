package collector

import (
	"strconv"
	"strings"
)

// MemoryUtilization returns (MemTotal - MemFree) / MemTotal from the meminfo
// record, or 0 when either line is missing or unparsable or MemTotal is zero.
func (s *Source) MemoryUtilization() float64 {
	var total, free float64
	var haveTotal, haveFree bool

	s.scanLines(s.procPath("meminfo"), func(line string) bool {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return true
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return true
		}
		switch fields[0] {
		case "MemTotal:":
			total, haveTotal = value, true
		case "MemFree:":
			free, haveFree = value, true
		}
		return !(haveTotal && haveFree)
	})

	if !haveTotal || !haveFree || total <= 0 {
		return 0
	}
	return (total - free) / total
}
