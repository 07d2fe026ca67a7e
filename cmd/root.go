// =============================================================================
// Corp Summary - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every report command
// is attached to it.
//
// COBRA CLI STRUCTURE:
//   root (corp-summary)      - starts the interactive menu
//   ├── hierarchy            - print departments and their teams
//   ├── summary              - print the salary summary table
//   ├── export               - print and save the salary summary table
//   ├── menu                 - the interactive menu, explicitly
//   └── version              - print version information
//
// CONFIGURATION:
//   The root command owns the global flags. Each report command loads the
//   configuration, applies the flag overrides and builds the logger before
//   the pipeline runs.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/corp-summary/internal/config"
	"github.com/ginjaninja78/corp-summary/internal/logging"
	"github.com/ginjaninja78/corp-summary/internal/pipeline"
)

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// rootOptions holds the values of the persistent flags.
type rootOptions struct {
	// cfgFile is the main configuration file. A missing file is only an
	// error when the flag was given explicitly.
	cfgFile string

	// verbose forces debug logging.
	verbose bool

	// source, delimiter and output override the configuration file.
	source    string
	delimiter string
	output    string
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "corp-summary",
		Short: "Corp Summary - Department hierarchy and salary reports",
		Long: `Corp Summary reads an employee file and reports on it.

Reports:
  - Department hierarchy: every department with its teams
  - Salary summary: employee count and min/max/avg salary per department
  - Summary export: the salary summary saved as CSV, XLSX or XML

Example Usage:
  corp-summary                              # Choose a report from the menu
  corp-summary summary --source staff.csv   # Print the salary summary
  corp-summary export --output out/{date}.xlsx`,

		// Without a subcommand the root command starts the menu.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "config.yaml", "Path to the configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	flags.StringVarP(&opts.source, "source", "s", "", "Employee file to read (overrides source.path)")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", "", "Field delimiter of the employee file (overrides source.delimiter)")
	flags.StringVarP(&opts.output, "output", "o", "", "Export destination (overrides export.path)")

	for _, kind := range pipeline.Kinds() {
		rootCmd.AddCommand(newReportCmd(kind, opts))
	}
	rootCmd.AddCommand(newMenuCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// PIPELINE SETUP
// =============================================================================

// loadConfig reads the configuration file and applies the flag overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if o.source != "" {
		cfg.Source.Path = o.source
	}
	if o.delimiter != "" {
		cfg.Source.Delimiter = o.delimiter
	}
	if o.output != "" {
		cfg.Export.Path = o.output
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newPipeline builds a pipeline that prints to the command's output.
// The returned function closes the log file, if any.
func (o *rootOptions) newPipeline(cmd *cobra.Command) (*pipeline.Pipeline, func() error, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}

	return pipeline.New(cfg, cmd.OutOrStdout(), logger), closeLog, nil
}

// runReport runs one report to completion.
func runReport(cmd *cobra.Command, opts *rootOptions, kind pipeline.Kind) error {
	p, closeLog, err := opts.newPipeline(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = p.Run(kind)
	return err
}

// newReportCmd builds the subcommand for one report kind.
func newReportCmd(kind pipeline.Kind, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String(),
		Short: kind.Title(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, kind)
		},
	}
}

// writeLine writes to the command output, ignoring errors like fmt.Println.
func writeLine(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}
