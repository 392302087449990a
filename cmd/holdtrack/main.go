package main

import (
	"errors"
	"os"

	"github.com/rshade/holdtrack/internal/cli"
	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/pkg/version"
)

const (
	exitError     = 1
	exitTransport = 2
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCode maps an error from run to the process exit status. Failed requests
// get their own code so scripts can retry them.
func exitCode(err error) int {
	if errors.Is(err, holders.ErrTransport) {
		return exitTransport
	}
	return exitError
}

func main() {
	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}
