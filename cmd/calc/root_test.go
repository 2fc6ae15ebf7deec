package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+2", "3\n"},
		{"5/2", "2.5\n"},
		{"2+3*4", "20\n"},
		{"1/0", "+Inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			out, err := execute(t, "eval", tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCmd_JSON(t *testing.T) {
	out, err := execute(t, "eval", "1.5+2.5", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"expression":"1.5+2.5","result":4,"display":"4"}`, out)
}

func TestEvalCmd_Invalid(t *testing.T) {
	_, err := execute(t, "eval", "3+*2")
	assert.ErrorContains(t, err, "invalid expression")

	_, err = execute(t, "eval", "1+2", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = execute(t, "eval")
	assert.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate", "3.14+2")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = execute(t, "validate", "3..2")
	assert.ErrorIs(t, err, errSilent)
	assert.Equal(t, "invalid: decimal point follows another decimal point: '.' at position 2\n", out)
}

func TestValidateCmd_JSON(t *testing.T) {
	out, err := execute(t, "validate", "3+5*", "--format", "json")
	assert.ErrorIs(t, err, errSilent)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.Equal(t, float64(3), resp["position"])
	assert.Equal(t, "expression ends with an operator", resp["reason"])
}

func TestSuiteCmd_Default(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, "suite", "--output", report)
	require.NoError(t, err)
	assert.Contains(t, out, "0 failed")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"failed": 0`)
}

func TestSuiteCmd_FailingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\ncases:\n  - id: precedence\n    expression: \"2+3*4\"\n    expect: 14\n"), 0o600))

	out, err := execute(t, "suite", path)
	assert.ErrorContains(t, err, "1 of 1 cases failed")
	assert.Contains(t, out, "FAIL")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calc version dev\n", out)
}

func TestRootCmd_Quiet(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	out, err := execute(t, "--quiet", "--log-level", "debug", "eval", "1+2")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}

func TestRootCmd_LogLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := execute(t, "--log-level", "error", "eval", "1+2")
	require.NoError(t, err)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}
