// Package app wires the probe pipeline together: user input, platform
// profile, probe runner, outcome classifier and printer.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osping/osping/classify"
	"github.com/osping/osping/platform"
	"github.com/osping/osping/printers"
	"github.com/osping/osping/probe"
)

// Run executes one probe and returns the process exit code: 0 when the
// host answered the ICMP echo requests, 1 for every failure category.
func Run() int {
	config, err := ProcessUserInput()

	printer := printers.NewPrinter(printers.Config{NoColor: config.NoColor})

	if err != nil {
		return handleError(err, printer)
	}

	ctx := setupSignalHandler(context.Background())

	profile := platform.Current()
	raw := probe.Run(ctx, config.Host, profile)

	if config.Debug {
		debugPrintRaw(raw)
	}

	outcome := classify.Classify(raw, config.Host, profile)

	printer.PrintOutcome(config.Host, outcome)

	if outcome.Kind == classify.Success {
		return 0
	}

	return 1
}

func handleError(err error, printer printers.Printer) int {
	// the missing-host message is a fixed part of the CLI contract and
	// always goes to stderr
	if errors.Is(err, ErrHostMissing) {
		fmt.Fprintln(os.Stderr, "ERROR: A host must be provided as an argument")
		return 1
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion()
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		msg, checkErr := CheckForUpdates()
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printError(err error, printer printers.Printer) {
	if printer != nil {
		printer.PrintError("error: %v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// setupSignalHandler cancels the returned context on SIGINT or SIGTERM,
// which kills a still-running ping child.
func setupSignalHandler(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// debugPrintRaw dumps the uninterpreted process result before the
// classified line is printed.
func debugPrintRaw(raw probe.Raw) {
	fmt.Println("\n ---------------------")

	if raw.Spawn != nil {
		fmt.Println(" Process error:")
		fmt.Printf("  * Message: %s\n", raw.Spawn.Message)
	} else {
		fmt.Println(" Process result:")
		fmt.Printf("  * Status: %d\n", raw.ExitCode)
		fmt.Printf("  * Stdout: %s\n", raw.Stdout)
		fmt.Printf("  * Stderr: %s\n", raw.Stderr)
	}

	fmt.Print(" ---------------------\n\n")
}
