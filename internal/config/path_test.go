package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SPENDWISE_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute unchanged", "/tmp/spendwise.db", "/tmp/spendwise.db"},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/.local/share/spendwise.db", filepath.Join(home, ".local/share/spendwise.db")},
		{"env var", "$SPENDWISE_TEST_DIR/spendwise.db", "/var/data/spendwise.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
