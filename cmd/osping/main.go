// Package main enables osping to execute as a CLI tool
package main

import (
	"os"

	"github.com/osping/osping/internal/app"
)

func main() {
	os.Exit(app.Run())
}
