package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-d", "postgres://localhost/db", "-x", "other"},
			allowedFlags: []string{"-d", "-s"},
			want:         []string{"-d", "postgres://localhost/db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-d=postgres://localhost/db", "-x", "other"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=postgres://localhost/db"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "flag followed by another flag keeps no value",
			args:         []string{"-s", "-notvalue"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "multiple allowed flags kept in order",
			args:         []string{"-p", "3000", "-d", "dsn", "--other", "x"},
			allowedFlags: []string{"-d", "-p"},
			want:         []string{"-p", "3000", "-d", "dsn"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}
