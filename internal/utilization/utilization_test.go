package utilization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabalesh/procview/internal/models"
)

func TestSystem(t *testing.T) {
	cases := []struct {
		name     string
		counters models.CPUCounters
		idle     uint64
		nonIdle  uint64
		want     float64
	}{
		{"mostlyIdle", models.CPUCounters{100, 0, 50, 850, 0, 0, 0, 0, 0, 0}, 850, 150, 0.15},
		{"allZero", models.CPUCounters{}, 0, 0, 0},
		{"iowaitIsIdle", models.CPUCounters{10, 0, 0, 40, 50, 0, 0, 0, 0, 0}, 90, 10, 0.1},
		{"guestIgnored", models.CPUCounters{50, 0, 0, 50, 0, 0, 0, 0, 1000, 1000}, 50, 50, 0.5},
		{"allBusy", models.CPUCounters{1, 2, 3, 0, 0, 4, 5, 6, 0, 0}, 0, 21, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.idle, Idle(tc.counters))
			assert.Equal(t, tc.nonIdle, NonIdle(tc.counters))
			assert.InDelta(t, tc.want, System(tc.counters), 1e-9)
		})
	}
}

func TestSystemInterval(t *testing.T) {
	prev := models.CPUCounters{100, 0, 50, 850, 0, 0, 0, 0, 0, 0}
	cur := models.CPUCounters{150, 0, 100, 900, 0, 0, 0, 0, 0, 0}
	require.InDelta(t, 100.0/150.0, SystemInterval(prev, cur), 1e-9)

	require.Zero(t, SystemInterval(cur, cur), "no elapsed time")
	require.Zero(t, SystemInterval(cur, prev), "counters went backwards")
	require.Zero(t, SystemInterval(models.CPUCounters{}, models.CPUCounters{}))
}

func TestProcess(t *testing.T) {
	active := ActiveTicks(200, 100, 150, 50)
	require.Equal(t, uint64(500), active)
	require.InDelta(t, 0.05, Process(active, 100, 100), 1e-9)

	require.Zero(t, Process(active, 0, 100))
	require.Zero(t, Process(active, 100, 0))
	require.Zero(t, Process(0, 100, 100))
}

func TestProcessAge(t *testing.T) {
	require.Equal(t, int64(90), ProcessAge(100, 1000, 100))
	require.Equal(t, int64(90), ProcessAge(100, 1099, 100))
	require.Equal(t, int64(100), ProcessAge(100, 0, 100))
	require.Zero(t, ProcessAge(100, 1000, 0))
	require.Zero(t, ProcessAge(0, 5000, 100), "unreadable uptime")
	require.Zero(t, ProcessAge(49, 5000, 100))
}
