package eosim

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// KernelConfig governs kernel tuning only: nothing here changes
// scheduling order, cancellation, or event delivery semantics. It is
// loaded through the feeders package (YAML, TOML, or environment
// variables), never hand-rolled per deployment.
type KernelConfig struct {
	// PlanQueueCapacityHint preallocates the plan heap's backing slice.
	// Purely a performance hint; zero means let append grow it.
	PlanQueueCapacityHint int `yaml:"planQueueCapacityHint" toml:"plan_queue_capacity_hint" env:"EOSIM_PLAN_QUEUE_CAPACITY_HINT"`

	// ImmediateQueueCapacityHint preallocates the immediate queue's
	// backing slice.
	ImmediateQueueCapacityHint int `yaml:"immediateQueueCapacityHint" toml:"immediate_queue_capacity_hint" env:"EOSIM_IMMEDIATE_QUEUE_CAPACITY_HINT"`

	// ContainerMapSizeHint preallocates the data-container registry's
	// backing map.
	ContainerMapSizeHint int `yaml:"containerMapSizeHint" toml:"container_map_size_hint" env:"EOSIM_CONTAINER_MAP_SIZE_HINT"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel" toml:"log_level" env:"EOSIM_LOG_LEVEL"`

	// IntrospectionEnabled turns on modules/introspection's read-only
	// HTTP surface. It never affects the run loop itself.
	IntrospectionEnabled bool `yaml:"introspectionEnabled" toml:"introspection_enabled" env:"EOSIM_INTROSPECTION_ENABLED"`

	// IntrospectionAddr is the listen address for the introspection
	// server, e.g. "127.0.0.1:6060".
	IntrospectionAddr string `yaml:"introspectionAddr" toml:"introspection_addr" env:"EOSIM_INTROSPECTION_ADDR"`
}

// ParseLogLevel maps a KernelConfig.LogLevel string to a slog.Level,
// defaulting to Info on an unrecognized or empty value.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ReloadableSettings is the narrow slice of KernelConfig that
// WatchConfigFile is permitted to change on a running context: logger
// level and whether introspection is enabled. Everything else (queue
// capacity hints, introspection address) requires a process restart,
// because changing it mid-run could perturb a simulation already in
// progress.
type ReloadableSettings struct {
	LogLevel             string
	IntrospectionEnabled bool
}

// EventConfigFileChanged is an event tag for config-file reloads.
// WatchConfigFile does not publish it: it has no Context and reports
// each successful reload only by calling its onChange function.
const EventConfigFileChanged = "com.eosim.config.changed"

// WatchConfigFile watches path for writes and invokes onChange with
// the freshly-fed ReloadableSettings each time it changes. It returns
// a stop function that closes the underlying watcher; callers that
// never opt in to hot-reload simply never call WatchConfigFile.
//
// reload is the caller-supplied function that re-runs the feeder
// chain and extracts the reloadable subset; WatchConfigFile itself
// knows nothing about YAML/TOML/env framing.
func WatchConfigFile(path string, reload func() (ReloadableSettings, error), onChange func(ReloadableSettings), logger Logger) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}
	if logger == nil {
		logger = noopLogger{}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				settings, err := reload()
				if err != nil {
					logger.Error("config reload failed", "path", path, "error", err)
					continue
				}
				logger.Info("config reloaded", "path", path, "log_level", settings.LogLevel, "introspection_enabled", settings.IntrospectionEnabled)
				onChange(settings)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("config watch error", "path", path, "error", watchErr)
			}
		}
	}()

	return watcher.Close, nil
}
