package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as raw bits; zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

// Add applies delta with a CAS loop and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// MaxLabelLen fits a uuid session id
const MaxLabelLen = 40

// Label is a short string metric; longer values are cut at MaxLabelLen
type Label struct {
	v atomic.Pointer[string]
}

func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.v.Store(&s)
}

func (l *Label) Load() string {
	p := l.v.Load()
	if p == nil {
		return ""
	}
	return *p
}
