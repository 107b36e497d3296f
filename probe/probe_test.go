package probe_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/osping/osping/platform"
	"github.com/osping/osping/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installFakePing writes a shell script named ping into a fresh temp
// directory and prepends it to PATH, so the probe resolves the fake ping
// while the script itself can still reach the usual utilities.
func installFakePing(t *testing.T, script string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake ping script requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "ping")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunCapturesExitCodeAndStreams(t *testing.T) {
	installFakePing(t, "echo out line\necho err line >&2\nexit 2\n")

	raw := probe.Run(context.Background(), "example.com", platform.Unix())

	require.Nil(t, raw.Spawn)
	assert.Equal(t, 2, raw.ExitCode)
	assert.Equal(t, "out line\n", string(raw.Stdout))
	assert.Equal(t, "err line\n", string(raw.Stderr))
}

func TestRunSuccess(t *testing.T) {
	installFakePing(t, "echo 3 packets transmitted\nexit 0\n")

	raw := probe.Run(context.Background(), "example.com", platform.Unix())

	require.Nil(t, raw.Spawn)
	assert.Equal(t, 0, raw.ExitCode)
	assert.Contains(t, string(raw.Stdout), "3 packets transmitted")
	assert.Empty(t, raw.Stderr)
}

func TestRunPassesProfileArgsAndHost(t *testing.T) {
	installFakePing(t, "echo \"$@\"\nexit 0\n")

	raw := probe.Run(context.Background(), "10.0.0.1", platform.Unix())

	require.Nil(t, raw.Spawn)
	assert.Equal(t, "-c 3 -i 0.2 10.0.0.1\n", string(raw.Stdout))
}

func TestRunNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH manipulation differs on windows")
	}

	t.Setenv("PATH", t.TempDir())

	raw := probe.Run(context.Background(), "example.com", platform.Unix())

	require.NotNil(t, raw.Spawn)
	assert.Equal(t, probe.SpawnNotFound, raw.Spawn.Kind)
	assert.NotEmpty(t, raw.Spawn.Message)
}

func TestRunNotFoundWithPingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH manipulation differs on windows")
	}

	// a directory named ping must not count as a permission problem
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ping"), 0o755))
	t.Setenv("PATH", dir)

	raw := probe.Run(context.Background(), "example.com", platform.Unix())

	require.NotNil(t, raw.Spawn)
	assert.Equal(t, probe.SpawnNotFound, raw.Spawn.Kind)
}

func TestRunPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits required")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "ping")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644))
	t.Setenv("PATH", dir)

	raw := probe.Run(context.Background(), "example.com", platform.Unix())

	require.NotNil(t, raw.Spawn)
	assert.Equal(t, probe.SpawnPermissionDenied, raw.Spawn.Kind)
}

func TestRunCancelledContext(t *testing.T) {
	installFakePing(t, "sleep 30\nexit 0\n")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	raw := probe.Run(ctx, "example.com", platform.Unix())

	// the child is killed, which surfaces as a signal termination
	require.Nil(t, raw.Spawn)
	assert.Equal(t, -1, raw.ExitCode)
}
