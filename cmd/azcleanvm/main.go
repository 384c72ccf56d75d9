// Package main is the entry point for the azcleanvm CLI.
//
// azcleanvm tears down a classic Azure virtual machine together with the
// blobs backing its OS and data disks and its primary network interface.
// The dependent resources may live in resource groups other than the VM's
// own; their owning groups and storage credentials are resolved on the fly.
//
// Commands: teardown, version, completion.
//
// For detailed usage information, run:
//
//	azcleanvm --help
package main

import (
	"fmt"
	"os"

	"github.com/azureautomation/clean-azure-vm-deletion/cmd/azcleanvm/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
