package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/reckon/internal/compiler"
	"github.com/roach88/reckon/internal/engine"
	"github.com/roach88/reckon/internal/token"
)

// traceOutput is the JSON shape of a trace.
type traceOutput struct {
	Expression string             `json:"expression"`
	Program    []string           `json:"program"`
	Trace      []engine.TraceStep `json:"trace"`
	Result     string             `json:"result,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// NewTraceCommand creates the trace command: print the compiled postfix
// program and the per-step evaluation trace for an expression.
func NewTraceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <expression>",
		Short: "Show the compiled postfix program and evaluation steps",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")

			normalized, err := compiler.Normalize(expression)
			if err != nil {
				return err
			}
			tokens, err := compiler.Tokenize(normalized)
			if err != nil {
				return err
			}
			program, err := compiler.Compile(tokens)
			if err != nil {
				return err
			}

			spelled := make([]string, len(program))
			for i, ins := range program {
				spelled[i] = token.String(ins)
			}

			value, trace, evalErr := engine.EvaluateTrace(program)

			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				payload := traceOutput{
					Expression: expression,
					Program:    spelled,
					Trace:      trace,
				}
				if evalErr != nil {
					payload.Error = evalErr.Error()
				} else {
					payload.Result = engine.Format(value)
				}
				return json.NewEncoder(out).Encode(payload)
			}

			fmt.Fprintf(out, "program: %s\n", strings.Join(spelled, " "))
			for _, step := range trace {
				fmt.Fprintf(out, "%4d  %-10s depth=%d\n", step.Seq, step.Instruction, step.Depth)
			}
			if evalErr != nil {
				return evalErr
			}
			fmt.Fprintf(out, "result: %s\n", engine.Format(value))
			return nil
		},
	}
}
