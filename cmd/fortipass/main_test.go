package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fortipass/fortipass-go/internal/breach"
	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	out, err := run(t, "generate", "--length", "12", "--no-symbols", "--count", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		pw, _, ok := strings.Cut(line, "\t")
		require.True(t, ok, line)
		assert.Len(t, pw, 12)
		assert.NotContains(t, pw, "!")
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	out, err := run(t, "generate", "--json", "-n", "2", "-l", "20")
	require.NoError(t, err)

	var results []generated
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Len(t, r.Password, 20)
		assert.Equal(t, crypto.Analyze(r.Password).Score, r.Analysis.Score)
	}
}

func TestGenerateCommand_Invalid(t *testing.T) {
	tests := [][]string{
		{"generate", "--length", "4"},
		{"generate", "--length", "51"},
		{"generate", "--no-upper", "--no-lower", "--no-numbers", "--no-symbols"},
		{"generate", "--count", "0"},
		{"generate", "extra"},
	}

	for _, args := range tests {
		_, err := run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "password123")
	require.NoError(t, err)
	assert.Contains(t, out, "Score:        50/100 (fair)")
	assert.Contains(t, out, "Time to hack: 2 years")
	assert.Contains(t, out, "  - Add uppercase letters")

	out, err = run(t, "analyze", "--json", "password123")
	require.NoError(t, err)
	var result crypto.StrengthResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 57, result.Entropy)

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestBreachCommand(t *testing.T) {
	out, err := run(t, "breach", "letmein")
	require.NoError(t, err)
	assert.Contains(t, out, "DataBreach2023, MegaCorp Leak")

	out, err = run(t, "breach", "kX9#mQ2$vL7!pR4&")
	require.NoError(t, err)
	assert.Equal(t, "Not found in known breaches\n", out)

	out, err = run(t, "--json", "breach", "qwerty")
	require.NoError(t, err)
	var result breach.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.IsBreached)
}
