package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/corp-summary/internal/pipeline"
)

// errNoChoice is returned when input ends before a valid menu choice.
var errNoChoice = errors.New("no report selected")

func newMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Choose a report interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

// runMenu loads the employee file, then asks for a report until the answer
// is valid and runs it against the loaded records.
func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	p, closeLog, err := opts.newPipeline(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := p.Load(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dataset := p.Dataset()
	writeLine(out, "Loaded %d records from %s", len(dataset.Records), dataset.SourceFile)
	writeLine(out, "Select a report:")
	for _, kind := range pipeline.Kinds() {
		writeLine(out, "%d) %s", int(kind), kind.Title())
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "Enter a number (1-%d): ", len(pipeline.Kinds()))
		if !scanner.Scan() {
			writeLine(out, "")
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read choice: %w", err)
			}
			return errNoChoice
		}

		kind, err := pipeline.ParseKind(scanner.Text())
		if err != nil {
			writeLine(out, "Invalid choice, try again.")
			continue
		}

		_, err = p.Run(kind)
		return err
	}
}
