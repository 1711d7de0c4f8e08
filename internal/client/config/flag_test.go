package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "both flags set",
			args:     []string{"cmd", "-d", "data/test.db", "-s", "top-secret"},
			expected: Config{DatabaseDSN: "data/test.db", DeviceSecret: "top-secret"},
		},
		{
			name:     "only dsn set, secret keeps default",
			args:     []string{"cmd", "-d", "other.db"},
			expected: Config{DatabaseDSN: "other.db", DeviceSecret: "framez-dev-secret"},
		},
		{
			name:     "no flags keeps defaults",
			args:     []string{"cmd"},
			expected: Config{DatabaseDSN: "framez.db", DeviceSecret: "framez-dev-secret"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()
			parseFlags(cfg)

			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
