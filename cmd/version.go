// =============================================================================
// Corp Summary - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   corp-summary version
//
// OUTPUT:
//   Corp Summary
//   Version:    1.0.0
//   Build Date: 2024-01-01
//   Go Version: go1.24.0
//
// =============================================================================

package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/ginjaninja78/corp-summary/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Long:  `Display the application version, build date, and Go runtime version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			writeLine(out, "Corp Summary")
			writeLine(out, "Version:    %s", Version)
			writeLine(out, "Build Date: %s", BuildDate)
			writeLine(out, "Go Version: %s", runtime.Version())
		},
	}
}
