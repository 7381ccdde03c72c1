package ui

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/opensensorlab/sensordeck/pkg/compose"
)

// metricDef describes one synthetic channel: a slow sine drift around a
// midpoint with a little jitter on top.
type metricDef struct {
	name   string
	unit   string
	mid    float64
	spread float64
	period float64
}

var demoMetrics = []metricDef{
	{name: "cpu_temp", unit: "°C", mid: 58, spread: 14, period: 23},
	{name: "cpu_load", unit: "%", mid: 45, spread: 35, period: 11},
	{name: "gpu_temp", unit: "°C", mid: 64, spread: 10, period: 31},
	{name: "mem_used", unit: "%", mid: 62, spread: 12, period: 47},
	{name: "net_rx", unit: "MB/s", mid: 12, spread: 11, period: 7},
	{name: "fan_rpm", unit: "rpm", mid: 1400, spread: 500, period: 19},
}

// Simulator produces the demo metric snapshots the viewer feeds into the
// composer. It stands in for a real sensor backend.
type Simulator struct {
	rng     *rand.Rand
	start   time.Time
	last    compose.Snapshot
	updated time.Time
}

// NewSimulator seeds a simulator; a zero seed derives one from the
// clock.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		rng:   rand.New(rand.NewSource(seed)),
		start: time.Now(),
	}
}

// Sample returns the current snapshot and whether the values changed
// since the previous call. Values refresh at 2 Hz so the panel's
// data-change redraws stay distinguishable from animation redraws.
func (s *Simulator) Sample(now time.Time) (compose.Snapshot, bool) {
	if s.last != nil && now.Sub(s.updated) < 500*time.Millisecond {
		return s.last, false
	}

	t := now.Sub(s.start).Seconds()
	snap := make(compose.Snapshot, len(demoMetrics)+1)
	for _, m := range demoMetrics {
		v := m.mid + m.spread*math.Sin(2*math.Pi*t/m.period) + s.rng.Float64()*m.spread*0.08
		snap[m.name] = v
		snap[m.name+"_unit"] = m.unit
	}
	up := time.Duration(t) * time.Second
	snap["uptime"] = fmt.Sprintf("%dh %02dm %02ds", int(up.Hours()), int(up.Minutes())%60, int(up.Seconds())%60)

	s.last = snap
	s.updated = now
	return snap, true
}

// Range returns the expected value range for a metric name, used by the
// demo bar renderer to scale. Unknown metrics map to 0..100.
func Range(metric string) (lo, hi float64) {
	for _, m := range demoMetrics {
		if m.name == metric {
			return m.mid - m.spread*1.1, m.mid + m.spread*1.1
		}
	}
	return 0, 100
}
