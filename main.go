// =============================================================================
// Corp Summary - Main Entry Point
// =============================================================================
//
// USAGE:
//   corp-summary              - Choose a report from the interactive menu
//   corp-summary hierarchy    - Print departments and their teams
//   corp-summary summary      - Print the per-department salary summary
//   corp-summary export       - Print and save the salary summary
//   corp-summary version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loading, aggregation, formatting and export
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/corp-summary/cmd"
)

func main() {
	cmd.Execute()
}
