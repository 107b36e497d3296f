// Package probe runs a single reachability probe by spawning the OS ping
// executable and collecting its raw result. It does not interpret the
// result; that is the classify package's job.
package probe

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/osping/osping/platform"
)

// Command is the executable name resolved against the ambient PATH.
const Command = "ping"

// SpawnKind categorizes a failure to start the ping process, as opposed
// to the process exiting non-zero.
type SpawnKind int

const (
	// SpawnNotFound means the ping executable was not found on the PATH.
	SpawnNotFound SpawnKind = iota
	// SpawnPermissionDenied means the executable exists but the current
	// user may not execute it.
	SpawnPermissionDenied
	// SpawnOther covers every other spawn failure.
	SpawnOther
)

// SpawnError describes why the ping process could not be started.
type SpawnError struct {
	Kind    SpawnKind
	Message string
}

// Raw is the uninterpreted result of one probe. Either Spawn is non-nil
// and the process never ran, or it is nil and ExitCode/Stdout/Stderr hold
// the completed process's result. An exit code of -1 means the process
// terminated without a numeric code, such as being killed by a signal.
type Raw struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Spawn    *SpawnError
}

// Run spawns ping with the profile's argument fragment followed by host,
// waits for it to finish and returns the raw result. Both output streams
// are drained fully before the exit status is read, so the child never
// blocks on a full pipe. Cancelling ctx kills the child.
func Run(ctx context.Context, host string, profile platform.Profile) Raw {
	args := append(slices.Clone(profile.Args), host)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Raw{Spawn: newSpawnError(err)}
		}
		// ExitCode is -1 when the process was terminated by a signal
		return Raw{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
		}
	}

	return Raw{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
}

func newSpawnError(err error) *SpawnError {
	kind := SpawnOther

	switch {
	case errors.Is(err, exec.ErrNotFound):
		kind = SpawnNotFound
		if lookupFoundUnexecutable(Command) {
			kind = SpawnPermissionDenied
		}
	case errors.Is(err, fs.ErrPermission):
		kind = SpawnPermissionDenied
	}

	return &SpawnError{Kind: kind, Message: err.Error()}
}

// lookupFoundUnexecutable reports whether name exists in a PATH directory
// as a regular file that lacks execute permission. exec.LookPath folds
// such a candidate into its not-found error, which would steer the user
// to the wrong remedy.
func lookupFoundUnexecutable(name string) bool {
	if runtime.GOOS == "windows" {
		// windows has no execute bit; LookPath resolves via PATHEXT
		return false
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}

		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if info.Mode().Perm()&0o111 == 0 {
			return true
		}
	}

	return false
}
