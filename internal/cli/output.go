package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the JSON shape of a successful evaluation.
type Result struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// writeResult renders one evaluation in the selected output format.
func writeResult(w io.Writer, opts *RootOptions, expression, formatted string) error {
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		return enc.Encode(Result{Expression: expression, Result: formatted})
	}
	if opts.Verbose {
		_, err := fmt.Fprintf(w, "%s = %s\n", expression, formatted)
		return err
	}
	_, err := fmt.Fprintln(w, formatted)
	return err
}
