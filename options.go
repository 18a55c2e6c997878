package uitask

import (
	"log/slog"

	"github.com/ygrebnov/errorc"

	"github.com/SegwiseHQ/clicky-sub000/metrics"
)

// config holds construction-time settings shared by the Dispatcher, the
// Executor, and the Pump.
type config struct {
	// Logger receives structured diagnostics (task start/end at Debug,
	// dropped outcomes and recovered continuation panics at Error).
	// Default: slog.Default().
	Logger *slog.Logger

	// Metrics constructs the instruments the component records into.
	// Default: metrics.NewNoopProvider().
	Metrics metrics.Provider

	// ErrorTagging wraps task errors with the submission's correlation ID
	// so continuations can attribute a failure to a specific Submit call.
	// Default: false (disabled).
	ErrorTagging bool
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Logger:       slog.Default(),
		Metrics:      metrics.NewNoopProvider(),
		ErrorTagging: false,
	}
}

// newConfig assembles a config from defaults and options.
func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// Option configures a constructor. Invalid input returns an error instead of
// panicking.
type Option func(*config) error

// WithLogger sets the structured logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.Logger = l
		return nil
	}
}

// WithMetrics sets the metrics provider. Use metrics.NewBasicProvider for an
// in-memory implementation suitable for tests and lightweight apps.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithErrorTagging enables wrapping task errors with the submission ID
// returned by Submit. Use ExtractTaskID to recover it.
func WithErrorTagging() Option {
	return func(cfg *config) error { cfg.ErrorTagging = true; return nil }
}
