// Package classify turns the raw result of an OS ping invocation into a
// tagged outcome. Classification is a total function: every raw result
// maps to exactly one outcome, and a failing ping is data here, never an
// error.
package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osping/osping/platform"
	"github.com/osping/osping/probe"
)

// Kind is the category of a probe outcome.
type Kind int

const (
	// Success means the host answered the echo requests.
	Success Kind = iota
	// ConnectionFailure means the host resolved but did not answer.
	ConnectionFailure
	// DNSIssue means the host could not be resolved to an address.
	DNSIssue
	// InvocationIssue means the ping executable could not be run at all.
	InvocationIssue
)

// Tag returns the category tag shown to the user.
func (k Kind) Tag() string {
	switch k {
	case Success:
		return "CONNECTION SUCCESS"
	case ConnectionFailure:
		return "CONNECTION FAILURE"
	case DNSIssue:
		return "DNS FAILURE"
	default:
		return "OS PING COMMAND ISSUE"
	}
}

// Outcome is the result of one probe. Detail is empty for Success and a
// non-empty diagnostic for every other kind.
type Outcome struct {
	Kind   Kind
	Detail string
}

// Classify maps a raw probe result to its outcome. The host string is
// embedded verbatim in diagnostics. Decision order: spawn failures first,
// then a successful exit status (which wins regardless of output), then
// the unix unreachable exit code, then the profile's DNS signal table,
// and finally a generic connection failure carrying the OS output.
func Classify(raw probe.Raw, host string, profile platform.Profile) Outcome {
	if raw.Spawn != nil {
		return Outcome{Kind: InvocationIssue, Detail: spawnDetail(raw.Spawn)}
	}

	if raw.ExitCode == 0 {
		return Outcome{Kind: Success}
	}

	// unix ping uses exit code 1 exclusively for an unreachable
	// destination and code 2 for everything else, so this shortcut is
	// sound for that family and fires before any substring scan
	if profile.Family == platform.FamilyUnix && raw.ExitCode == 1 {
		return Outcome{
			Kind:   ConnectionFailure,
			Detail: fmt.Sprintf("Host '%s' cannot be reached over a network ICMP Ping", host),
		}
	}

	stdout := lossyString(raw.Stdout)
	stderr := lossyString(raw.Stderr)

	for _, signal := range profile.Signals {
		output := stderr
		if signal.Stream == platform.StreamStdout {
			output = stdout
		}

		if !strings.Contains(output, signal.Substring) {
			continue
		}

		if signal.Meaning == platform.SignalNotHostname {
			return Outcome{
				Kind: DNSIssue,
				Detail: fmt.Sprintf("Ping returned error indicating the DNS entry is not "+
					"a hostname associated with an IP address.  OS OUTPUT RECEIVED: '%s'", output),
			}
		}

		return Outcome{
			Kind: DNSIssue,
			Detail: fmt.Sprintf("Ping returned error indicating no DNS entry for '%s'.  "+
				"OS OUTPUT RECEIVED: '%s'", host, output),
		}
	}

	output := stderr
	if profile.ErrorsOnStdout {
		// windows ping reports errors on either stream
		output = joinStreams(stdout, stderr)
	}

	return Outcome{
		Kind:   ConnectionFailure,
		Detail: fmt.Sprintf("Ping returned error.  OS OUTPUT RECEIVED: '%s'", output),
	}
}

func spawnDetail(spawn *probe.SpawnError) string {
	switch spawn.Kind {
	case probe.SpawnNotFound:
		return "Unable to locate 'ping' executable in the local OS environment - " +
			"ensure this executable is on your environment path"
	case probe.SpawnPermissionDenied:
		return "Unable to run the 'ping' executable in the local OS environment due to " +
			"lack of permissions - ensure the 'ping' command on your OS is assigned with " +
			"executable permissions for your OS user running this tool"
	default:
		return fmt.Sprintf("Unable to invoke the 'ping' executable on the underlying OS.  "+
			"OS OUTPUT RECEIVED: '%s'", spawn.Message)
	}
}

// lossyString decodes bytes as UTF-8, replacing invalid sequences instead
// of rejecting them.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

func joinStreams(stdout, stderr string) string {
	if stdout == "" {
		return stderr
	}
	if stderr == "" {
		return stdout
	}
	return stdout + " " + stderr
}
