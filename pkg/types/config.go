package types

import "errors"

// Config validation errors.
var (
	ErrDataDirEmpty      = errors.New("data dir must not be empty")
	ErrWorkersInvalid    = errors.New("workers must be positive")
	ErrQueueDepthInvalid = errors.New("queue depth must be positive")
	ErrLogModeUnknown    = errors.New("unknown log mode")
)

// Default request pool sizing.
const (
	DefaultWorkers    = 10
	DefaultQueueDepth = 1000
)

// Log modes.
const (
	LogModeDev  = "dev"
	LogModeProd = "prod"
)

// Config holds store location and runtime parameters for the service.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	Workers    int    `json:"workers" yaml:"workers"`
	QueueDepth int    `json:"queue_depth" yaml:"queue_depth"`
	LogMode    string `json:"log_mode" yaml:"log_mode"`
}

// WithDefaults returns a copy of c with zero-valued fields replaced by
// their defaults. DataDir has no default; resolution is the caller's job.
func (c Config) WithDefaults() Config {
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueDepth == 0 {
		c.QueueDepth = DefaultQueueDepth
	}
	if c.LogMode == "" {
		c.LogMode = LogModeProd
	}
	return c
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.Workers <= 0 {
		return ErrWorkersInvalid
	}
	if c.QueueDepth <= 0 {
		return ErrQueueDepthInvalid
	}
	if c.LogMode != LogModeDev && c.LogMode != LogModeProd {
		return ErrLogModeUnknown
	}
	return nil
}
