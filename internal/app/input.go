package app

import (
	"errors"
	"flag"
	"os"
)

var (
	// ErrHostMissing indicates no host argument was provided
	ErrHostMissing = errors.New("host argument missing")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Config holds the user-selected options for one run.
type Config struct {
	// Host is the DNS name or literal IP address to probe.
	Host string

	// Debug prints the raw ping process result before the classified line.
	Debug bool

	// NoColor disables colorized output.
	NoColor bool
}

// permuteArgs moves flag arguments in front of positional ones, because
// stdlib flag parsing stops at the first non-flag argument.
// see: https://pkg.go.dev/flag
func permuteArgs(args []string) {
	var flagArgs []string
	var nonFlagArgs []string

	// every osping flag is boolean, so no flag consumes a following value
	for _, v := range args {
		if len(v) > 0 && v[0] == '-' {
			flagArgs = append(flagArgs, v)
		} else {
			nonFlagArgs = append(nonFlagArgs, v)
		}
	}

	permuted := append(append([]string(nil), flagArgs...), nonFlagArgs...)
	copy(args, permuted)
}

// ProcessUserInput parses command-line flags and the host argument.
// Returns ErrHostMissing, ErrVersionRequested, or ErrUpdateCheckRequested
// for special control flow.
func ProcessUserInput() (Config, error) {
	debug := flag.Bool("d", false, "print the raw ping process result before the classified outcome.")
	noColor := flag.Bool("no-color", false, "do not colorize output.")
	showVer := flag.Bool("v", false, "show version and exit.")
	checkUpdates := flag.Bool("u", false, "check for updates and exit.")

	flag.CommandLine.Usage = PrintUsage

	permuteArgs(os.Args[1:])

	flag.Parse()

	// parsed flags are returned alongside sentinel errors so the caller
	// can still honor output options like -no-color
	config := Config{Debug: *debug, NoColor: *noColor}

	if *showVer {
		return config, ErrVersionRequested
	}

	if *checkUpdates {
		return config, ErrUpdateCheckRequested
	}

	args := flag.Args()
	if len(args) == 0 {
		return config, ErrHostMissing
	}

	// excess positional arguments are ignored
	config.Host = args[0]

	return config, nil
}
