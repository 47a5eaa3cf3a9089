package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeAddress(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeAddress(t, dir, "good.txt", "US2John Smith\n\n1 Main St\n\nNew York\n10001\nNY\n")
	bad := writeAddress(t, dir, "bad.txt", "US2John Smith\n\n1 Main St\n\nNew York\n99999\nNY\n")

	var stdout, stderr bytes.Buffer
	status := run([]string{good, bad, filepath.Join(dir, "missing.txt")}, false, false, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, status)

	assert.Equal(t, "OK "+good+"\nUS2John Smith\n\n1 Main St\n\nNew York\n10001\n32\n", stdout.String())
	assert.Contains(t, stderr.String(), "INVALID "+bad+" [field]")
	assert.Contains(t, stderr.String(), "ERROR "+filepath.Join(dir, "missing.txt"))
}

func TestRunStdinDisplay(t *testing.T) {
	in := strings.NewReader("GB2Jane Doe\r\n\r\n10 Downing Street\r\nWestminster\r\n\r\nsw1a2aa\r\nLondon\r\n")
	var stdout, stderr bytes.Buffer
	status := run(nil, false, true, in, &stdout, &stderr)
	require.Equal(t, 0, status, stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "OK -\nGB2Jane Doe\n"))
	assert.Contains(t, out, "\nSW1A 2AA\nLondon\n---\n")
	assert.Contains(t, out, "LONDON\nSW1A 2AA\n")
	assert.Empty(t, stderr.String())
}

func TestRunOptional(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-"}, true, false, strings.NewReader("\n"), &stdout, &stderr))
	assert.Equal(t, "OK -\n\n", stdout.String())

	stdout.Reset()
	assert.Equal(t, 1, run([]string{"-"}, false, false, strings.NewReader("\n"), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "[empty]")
	assert.Empty(t, stdout.String())
}

func TestReadInput(t *testing.T) {
	tests := map[string]string{
		"a\nb\n":   "a\nb",
		"a\nb\r\n": "a\nb",
		"a\nb\n\n": "a\nb\n",
		"a\nb":     "a\nb",
	}
	for in, want := range tests {
		got, err := readInput("-", strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", in)
	}
}
