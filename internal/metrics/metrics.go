package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// GatewayStats accounts for contract gateway traffic.
type GatewayStats struct {
	Calls    Counter
	Sends    Counter
	Failures Counter
}

type Snapshot struct {
	Calls    uint64 `json:"calls"`
	Sends    uint64 `json:"sends"`
	Failures uint64 `json:"failures"`
}

func (s *GatewayStats) Snapshot() Snapshot {
	return Snapshot{
		Calls:    s.Calls.Load(),
		Sends:    s.Sends.Load(),
		Failures: s.Failures.Load(),
	}
}
