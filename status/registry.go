// Package status holds lock-free session metrics read by the monitor API.
package status

import "sync/atomic"

// Registry groups metric families by value kind
type Registry struct {
	Counters *Family[atomic.Int64]
	Gauges   *Family[Gauge]
	Labels   *Family[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: newFamily[atomic.Int64](),
		Gauges:   newFamily[Gauge](),
		Labels:   newFamily[Label](),
	}
}

// Len counts metrics across all families
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len() + r.Labels.Len()
}

// Snapshot flattens every metric into a name keyed map
// Each value is loaded on its own; the result is not a consistent cut
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Len())
	r.Counters.Range(func(name string, v *atomic.Int64) { out[name] = v.Load() })
	r.Gauges.Range(func(name string, v *Gauge) { out[name] = v.Get() })
	r.Labels.Range(func(name string, v *Label) { out[name] = v.Load() })
	return out
}
