package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSSHServerValidates(t *testing.T) {
	_, err := NewSSHServer(SSHServerConfig{Theme: "neon", HostKeyPath: filepath.Join(t.TempDir(), "key")})
	assert.ErrorContains(t, err, "unknown theme")

	_, err = NewSSHServer(SSHServerConfig{})
	assert.ErrorContains(t, err, "host key")
}

func TestNewSSHServer(t *testing.T) {
	srv, err := NewSSHServer(SSHServerConfig{
		Host:        "127.0.0.1",
		Port:        23234,
		HostKeyPath: filepath.Join(t.TempDir(), "keys", "host_ed25519"),
		IdleTimeout: time.Minute,
		MaxSessions: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:23234", srv.Addr())
	assert.Empty(t, srv.Sessions())
}
