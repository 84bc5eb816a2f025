package harness

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/reckon/internal/compiler"
	"github.com/roach88/reckon/internal/engine"
)

func TestSuites_Golden(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		suite, err := LoadSuite(path)
		require.NoError(t, err, "load %s", path)
		t.Run(suite.Name, func(t *testing.T) {
			RunWithGolden(t, suite)
		})
	}
}

func TestLoadSuite_Validation(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "suite.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing name",
			content: "cases:\n  - expr: \"1\"\n    want: \"1\"\n",
		},
		{
			name:    "no cases",
			content: "name: empty\ncases: []\n",
		},
		{
			name:    "case without expr",
			content: "name: s\ncases:\n  - want: \"1\"\n",
		},
		{
			name:    "case with both want and want_err",
			content: "name: s\ncases:\n  - expr: \"1\"\n    want: \"1\"\n    want_err: \"X\"\n",
		},
		{
			name:    "case with neither want nor want_err",
			content: "name: s\ncases:\n  - expr: \"1\"\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSuite(write(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSuiteRun_Outcomes(t *testing.T) {
	suite := &Suite{
		Name: "inline",
		Cases: []Case{
			{Expr: "2+3", Want: "5"},
			{Expr: "2+3", Want: "6"},                      // wrong expectation
			{Expr: "5/0", WantErr: "DIVISION_BY_ZERO"},
			{Expr: "5/0", WantErr: "UNKNOWN_CHARACTER"},   // wrong code
			{Expr: "5/0", Want: "1"},                      // error where value expected
		},
	}

	outcomes := suite.Run()
	require.Len(t, outcomes, 5)
	assert.True(t, outcomes[0].Pass)
	assert.False(t, outcomes[1].Pass)
	assert.True(t, outcomes[2].Pass)
	assert.False(t, outcomes[3].Pass)
	assert.False(t, outcomes[4].Pass)
	assert.Equal(t, "5", outcomes[0].Result)
	assert.Equal(t, "DIVISION_BY_ZERO", outcomes[2].ErrCode)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "EMPTY_EXPRESSION",
		errorCode(&compiler.CompileError{Code: compiler.ErrCodeEmptyExpression}))
	assert.Equal(t, "DIVISION_BY_ZERO",
		errorCode(&engine.EvalError{Code: engine.ErrCodeDivisionByZero}))
	assert.Equal(t, "UNKNOWN", errorCode(errors.New("plain")))
}
