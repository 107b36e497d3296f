// Package platform encodes the externally-observable differences between
// the ping implementations shipped by each OS family: the argument vector
// used to invoke them, the stream their diagnostics appear on, and the
// substrings that signal a DNS-layer failure.
package platform

import "runtime"

// Family identifies an OS family with its own ping conventions.
type Family int

const (
	// FamilyUnix covers Linux, the BSDs and macOS.
	FamilyUnix Family = iota
	// FamilyWindows covers Windows.
	FamilyWindows
)

// String returns a human-readable family name.
func (f Family) String() string {
	if f == FamilyWindows {
		return "windows"
	}
	return "unix"
}

// Stream identifies which output stream of the ping process a signal
// is matched against.
type Stream int

const (
	// StreamStdout matches against the standard output of ping.
	StreamStdout Stream = iota
	// StreamStderr matches against the standard error of ping.
	StreamStderr
)

// SignalMeaning is the DNS-layer condition a matched signal stands for.
type SignalMeaning int

const (
	// SignalNoEntry means the host has no DNS entry at all.
	SignalNoEntry SignalMeaning = iota
	// SignalNotHostname means the DNS entry exists but is not a
	// hostname-to-address mapping.
	SignalNotHostname
)

// Signal is a literal substring emitted by a platform ping on a DNS-layer
// failure. Matching is case-sensitive. The substrings are locale- and
// version-sensitive, which is why they live here as data rather than
// inline in the classifier: adapting to a new locale or ping variant is
// a table edit.
type Signal struct {
	Substring string
	Stream    Stream
	Meaning   SignalMeaning
}

// Profile is the set of invocation and output conventions for one OS
// family's ping. It is constant for the lifetime of the process and is
// never derived from the probed host.
type Profile struct {
	Family Family

	// Args is the argument vector fragment passed to ping before the
	// host argument.
	Args []string

	// ErrorsOnStdout reports whether this family's ping writes its
	// error diagnostics to standard output instead of standard error.
	ErrorsOnStdout bool

	// Signals are scanned in order by the classifier.
	Signals []Signal
}

// Unix returns the profile for Unix-family ping: three echo requests at
// 0.2-second intervals, diagnostics on stderr. Exit code 1 means the
// destination is unreachable; any other non-zero code means a DNS or
// operational error.
func Unix() Profile {
	return Profile{
		Family: FamilyUnix,
		Args:   []string{"-c", "3", "-i", "0.2"},
		Signals: []Signal{
			{Substring: "not known", Stream: StreamStderr, Meaning: SignalNoEntry},
			{Substring: "associated with hostname", Stream: StreamStderr, Meaning: SignalNotHostname},
		},
	}
}

// Windows returns the profile for Windows ping: three echo requests, no
// sub-second interval flag, diagnostics on stdout. Exit codes only
// distinguish success from non-success.
func Windows() Profile {
	return Profile{
		Family:         FamilyWindows,
		Args:           []string{"-n", "3"},
		ErrorsOnStdout: true,
		Signals: []Signal{
			{Substring: "could not find host", Stream: StreamStdout, Meaning: SignalNoEntry},
		},
	}
}

// Current returns the profile matching the OS this process runs on.
func Current() Profile {
	if runtime.GOOS == "windows" {
		return Windows()
	}
	return Unix()
}
