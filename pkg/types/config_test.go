package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{DataDir: "/tmp/rolodex"}.WithDefaults()
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultQueueDepth, cfg.QueueDepth)
	assert.Equal(t, LogModeProd, cfg.LogMode)

	custom := Config{DataDir: "x", Workers: 2, QueueDepth: 5, LogMode: LogModeDev}.WithDefaults()
	assert.Equal(t, 2, custom.Workers)
	assert.Equal(t, 5, custom.QueueDepth)
	assert.Equal(t, LogModeDev, custom.LogMode)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{DataDir: "x"}.WithDefaults(),
		},
		{
			name:    "empty data dir",
			cfg:     Config{}.WithDefaults(),
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "negative workers",
			cfg:     Config{DataDir: "x", Workers: -1, QueueDepth: 1, LogMode: LogModeProd},
			wantErr: ErrWorkersInvalid,
		},
		{
			name:    "negative queue depth",
			cfg:     Config{DataDir: "x", Workers: 1, QueueDepth: -1, LogMode: LogModeProd},
			wantErr: ErrQueueDepthInvalid,
		},
		{
			name:    "unknown log mode",
			cfg:     Config{DataDir: "x", Workers: 1, QueueDepth: 1, LogMode: "verbose"},
			wantErr: ErrLogModeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
