// Package registry tracks the set of live processes across refreshes.
package registry

import (
	"sort"

	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/models"
	"github.com/prabalesh/procview/internal/utilization"
)

// Source is the per-process subset of the kernel record reader the registry
// depends on.
type Source interface {
	ProcessTimes(pid int) (models.ProcessTimes, bool)
	ProcessCommand(pid int) string
	ProcessMemory(pid int) string
	ProcessUID(pid int) string
	UserName(uid string) string
}

// Registry owns the tracked process records. It is not safe for concurrent
// use; callers must let one Refresh finish before starting the next.
type Registry struct {
	src   Source
	hz    int64
	procs map[int]*models.Process
	log   *zap.Logger
}

// New returns an empty registry. ticksPerSecond converts stat-record clock
// ticks to seconds.
func New(src Source, ticksPerSecond int64, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		src:   src,
		hz:    ticksPerSecond,
		procs: make(map[int]*models.Process),
		log:   log,
	}
}

// Len returns the number of tracked records.
func (r *Registry) Len() int { return len(r.procs) }

// Refresh reconciles the tracked records against live, the identifiers
// observed this cycle, and returns every record ordered by CPU descending
// then PID ascending.
//
// Records whose identifier left the live set are dropped. Records still
// present get fresh CPU, age and memory; if their stat record has already
// vanished they keep last cycle's values until the identifier disappears.
// New identifiers get a record only if their stat and status records can be
// read, otherwise they are skipped until a later cycle.
func (r *Registry) Refresh(live map[int]struct{}, uptimeSeconds int64) []models.Process {
	var removed, stale, created, skipped int

	for pid, rec := range r.procs {
		if _, ok := live[pid]; !ok {
			delete(r.procs, pid)
			removed++
			continue
		}
		if !r.sample(rec, uptimeSeconds) {
			stale++
		}
	}

	for pid := range live {
		if _, ok := r.procs[pid]; ok {
			continue
		}
		rec, ok := r.create(pid, uptimeSeconds)
		if !ok {
			skipped++
			continue
		}
		r.procs[pid] = rec
		created++
	}

	r.log.Debug("reconciled processes",
		zap.Int("tracked", len(r.procs)),
		zap.Int("created", created),
		zap.Int("removed", removed),
		zap.Int("skipped", skipped),
		zap.Int("stale", stale))

	return r.View()
}

// View returns copies of the tracked records in display order.
func (r *Registry) View() []models.Process {
	out := make([]models.Process, 0, len(r.procs))
	for _, rec := range r.procs {
		out = append(out, *rec)
	}
	SortByCPU(out)
	return out
}

// SortByCPU orders processes by CPU descending, breaking ties by PID so equal
// records keep the same order on every refresh.
func SortByCPU(procs []models.Process) {
	sort.Slice(procs, func(i, j int) bool {
		if procs[i].CPU != procs[j].CPU {
			return procs[i].CPU > procs[j].CPU
		}
		return procs[i].PID < procs[j].PID
	})
}

func (r *Registry) create(pid int, uptimeSeconds int64) (*models.Process, bool) {
	rec := &models.Process{PID: pid}
	if !r.sample(rec, uptimeSeconds) {
		return nil, false
	}
	uid := r.src.ProcessUID(pid)
	if uid == "" {
		return nil, false
	}
	rec.User = r.src.UserName(uid)
	rec.Command = r.src.ProcessCommand(pid)
	return rec, true
}

// sample refreshes the per-cycle fields of rec. It reports false, leaving rec
// untouched, when the stat record cannot be read.
func (r *Registry) sample(rec *models.Process, uptimeSeconds int64) bool {
	times, ok := r.src.ProcessTimes(rec.PID)
	if !ok {
		return false
	}
	active := utilization.ActiveTicks(times.UTime, times.STime, times.CUTime, times.CSTime)
	rec.CPU = utilization.Process(active, uptimeSeconds, r.hz)
	rec.AgeSeconds = utilization.ProcessAge(uptimeSeconds, times.StartTime, r.hz)
	rec.Memory = r.src.ProcessMemory(rec.PID)
	return true
}
