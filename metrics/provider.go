// Package metrics defines the minimal instrument surface the uitask package
// records into, plus two implementations: a no-op provider (the default) and
// a concurrency-safe in-memory provider for tests and lightweight apps.
package metrics

// Provider constructs instruments by name. Asking twice for the same name
// must return the same instrument. Implementations must be safe for
// concurrent use.
//
// The interface is intentionally small; grow it with separate optional
// interfaces rather than new methods.
type Provider interface {
	Counter(name string, opts ...InstrumentOption) Counter
	UpDownCounter(name string, opts ...InstrumentOption) UpDownCounter
	Histogram(name string, opts ...InstrumentOption) Histogram
}

// Counter records monotonic counts (tasks submitted, continuations run).
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move both ways (current in-flight tasks).
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements (task durations
// in seconds).
type Histogram interface {
	Record(v float64)
}

// InstrumentConfig carries optional instrument metadata. Advisory only;
// implementations may ignore it.
type InstrumentConfig struct {
	Description string
	Unit        string
}

// InstrumentOption mutates InstrumentConfig.
type InstrumentOption func(*InstrumentConfig)

// WithDescription sets an advisory description for the instrument.
func WithDescription(desc string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Description = desc }
}

// WithUnit sets an advisory unit for the instrument (e.g., "1", "seconds").
func WithUnit(unit string) InstrumentOption {
	return func(c *InstrumentConfig) { c.Unit = unit }
}

func applyOptions(opts []InstrumentOption) InstrumentConfig {
	var cfg InstrumentConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
