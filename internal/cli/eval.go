package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/reckon"
)

// NewEvalCommand creates the eval command: compute one expression and
// print the result.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Shells split on spaces; rejoin so `reckon eval 2 + 3` works.
			expression := strings.Join(args, " ")
			value, err := reckon.Compute(expression)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), opts, expression, reckon.Format(value))
		},
	}
}
