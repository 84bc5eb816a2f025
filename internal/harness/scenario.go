package harness

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/reckon"
	"github.com/roach88/reckon/internal/compiler"
	"github.com/roach88/reckon/internal/engine"
)

// Suite defines a conformance suite: a named list of expressions and the
// behavior each must produce.
type Suite struct {
	// Name uniquely identifies this suite; it is also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// Case is one expression with its expected outcome. Exactly one of Want
// and WantErr must be set.
type Case struct {
	// Expr is the expression source text.
	Expr string `yaml:"expr"`

	// Want is the expected formatted result.
	Want string `yaml:"want,omitempty"`

	// WantErr is the expected error code (compile or eval), e.g.
	// "DIVISION_BY_ZERO".
	WantErr string `yaml:"want_err,omitempty"`
}

// LoadSuite reads and validates a suite from a YAML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if err := suite.validate(); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}
	for i, c := range s.Cases {
		if c.Expr == "" {
			return fmt.Errorf("case %d has no expr", i)
		}
		if (c.Want == "") == (c.WantErr == "") {
			return fmt.Errorf("case %d (%q) must set exactly one of want and want_err", i, c.Expr)
		}
	}
	return nil
}

// Outcome is the observed behavior of one case.
type Outcome struct {
	Expr string

	// Result is the formatted value on success, empty on failure.
	Result string

	// ErrCode is the error code on failure, empty on success.
	ErrCode string

	// Pass reports whether the outcome matched the case's expectation.
	Pass bool
}

// Run evaluates every case and returns the outcomes in order.
func (s *Suite) Run() []Outcome {
	outcomes := make([]Outcome, len(s.Cases))
	for i, c := range s.Cases {
		outcomes[i] = runCase(c)
	}
	return outcomes
}

func runCase(c Case) Outcome {
	out := Outcome{Expr: c.Expr}
	value, err := reckon.Compute(c.Expr)
	if err != nil {
		out.ErrCode = errorCode(err)
		out.Pass = c.WantErr != "" && out.ErrCode == c.WantErr
		return out
	}
	out.Result = reckon.Format(value)
	out.Pass = c.Want != "" && out.Result == c.Want
	return out
}

// errorCode extracts the stable code from a compile or eval error.
// Unknown error types render as "UNKNOWN".
func errorCode(err error) string {
	var ce *compiler.CompileError
	if errors.As(err, &ce) {
		return string(ce.Code)
	}
	var ee *engine.EvalError
	if errors.As(err, &ee) {
		return string(ee.Code)
	}
	return "UNKNOWN"
}
