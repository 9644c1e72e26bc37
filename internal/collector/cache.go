package collector

import (
	"sync"
	"time"

	"github.com/prabalesh/procview/internal/models"
)

// CPUCache remembers the previous aggregate counter tuple so the busy
// fraction between two refreshes can be derived.
type CPUCache struct {
	previous     models.CPUCounters
	previousTime time.Time
	valid        bool

	mutex sync.RWMutex
}

func NewCPUCache() *CPUCache {
	return &CPUCache{}
}

// Swap stores cur and returns the tuple it replaced. ok is false on the first
// call and after Clear.
func (c *CPUCache) Swap(cur models.CPUCounters) (prev models.CPUCounters, ok bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	prev, ok = c.previous, c.valid
	c.previous = cur
	c.previousTime = time.Now()
	c.valid = true
	return prev, ok
}

// GetTimeSinceLastUsageUpdate returns the time elapsed since the last Swap.
func (c *CPUCache) GetTimeSinceLastUsageUpdate() time.Duration {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if !c.valid {
		return 0
	}
	return time.Since(c.previousTime)
}

func (c *CPUCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.previous = models.CPUCounters{}
	c.previousTime = time.Time{}
	c.valid = false
}
