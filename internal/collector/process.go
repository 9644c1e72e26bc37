package collector

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/models"
)

// Zero-based offsets into the per-process stat record.
const (
	statUTime     = 13
	statSTime     = 14
	statCUTime    = 15
	statCSTime    = 16
	statStartTime = 21
)

// PIDs lists the process directories under the proc root: entries whose
// names are entirely decimal digits.
func (s *Source) PIDs() map[int]struct{} {
	entries, err := afero.ReadDir(s.fs, s.procRoot)
	if err != nil {
		s.log.Debug("listing processes", zap.String("path", s.procRoot), zap.Error(err))
		return map[int]struct{}{}
	}

	pids := make(map[int]struct{}, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		pids[pid] = struct{}{}
	}
	return pids
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ProcessStatFields splits the process's stat record on whitespace. The
// parenthesized command name is kept as a single field even when it contains
// spaces, so kernel-documented offsets stay valid. It returns nil when the
// process is gone.
func (s *Source) ProcessStatFields(pid int) []string {
	line := strings.TrimSpace(s.firstLine(s.pidPath(pid, "stat")))
	if line == "" {
		return nil
	}

	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < l {
		return strings.Fields(line)
	}
	fields := strings.Fields(line[:l])
	fields = append(fields, line[l:r+1])
	return append(fields, strings.Fields(line[r+1:])...)
}

// ProcessTimes parses utime, stime, cutime, cstime and starttime from the
// stat record. ok is false when the record is missing or malformed.
func (s *Source) ProcessTimes(pid int) (times models.ProcessTimes, ok bool) {
	fields := s.ProcessStatFields(pid)
	if len(fields) <= statStartTime {
		return models.ProcessTimes{}, false
	}

	targets := []struct {
		offset int
		dst    *uint64
	}{
		{statUTime, &times.UTime},
		{statSTime, &times.STime},
		{statCUTime, &times.CUTime},
		{statCSTime, &times.CSTime},
		{statStartTime, &times.StartTime},
	}
	for _, t := range targets {
		val, err := strconv.ParseUint(fields[t.offset], 10, 64)
		if err != nil {
			return models.ProcessTimes{}, false
		}
		*t.dst = val
	}
	return times, true
}

// ProcessCommand returns the process's command line with argument separators
// shown as spaces. Kernel threads and exited processes yield "".
func (s *Source) ProcessCommand(pid int) string {
	cmdline := strings.ReplaceAll(s.firstLine(s.pidPath(pid, "cmdline")), "\x00", " ")
	return strings.TrimSpace(cmdline)
}

// ProcessMemory returns the VmSize token of the status record as written,
// in kB. Kernel threads have no VmSize and yield "".
func (s *Source) ProcessMemory(pid int) string {
	return s.labeledValue(s.pidPath(pid, "status"), "VmSize:")
}

// ProcessUID returns the real user id from the Uid line of the status record.
func (s *Source) ProcessUID(pid int) string {
	return s.labeledValue(s.pidPath(pid, "status"), "Uid:")
}
