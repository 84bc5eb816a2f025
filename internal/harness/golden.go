package harness

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden evaluates a suite, fails the test on any case whose
// outcome does not match its expectation, and compares the rendered
// outcome table against a golden file in testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, suite *Suite) {
	t.Helper()

	outcomes := suite.Run()
	for i, out := range outcomes {
		if !out.Pass {
			c := suite.Cases[i]
			t.Errorf("case %q: got result=%q err=%q, want result=%q err=%q",
				out.Expr, out.Result, out.ErrCode, c.Want, c.WantErr)
		}
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, suite.Name, renderOutcomes(suite, outcomes))
}

// renderOutcomes produces the deterministic text table pinned by golden
// files: one line per case, expression on the left, formatted result or
// error code on the right.
func renderOutcomes(suite *Suite, outcomes []Outcome) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "suite: %s\n", suite.Name)
	for _, out := range outcomes {
		if out.ErrCode != "" {
			fmt.Fprintf(&buf, "%s => error %s\n", out.Expr, out.ErrCode)
		} else {
			fmt.Fprintf(&buf, "%s => %s\n", out.Expr, out.Result)
		}
	}
	return buf.Bytes()
}
