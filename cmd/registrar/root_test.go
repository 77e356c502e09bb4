package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SEED_FILE", "")
	t.Setenv("REJECT_DUPLICATE_REGISTRATION", "")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &stdout, &stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultCatalogScenario(t *testing.T) {
	out, _, err := execute(t, "1\n3 S001 CSE101\n4 S001 MAT201\n4 S001 CSE101\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Course Code: CSE101, Title: Introduction to Computer Science, Description: Fundamentals of programming, Capacity: 30, Schedule: Mon/Wed/Fri 10:00 AM, Enrolled Students: 0/30")
	assert.Contains(t, out, "Course Code: PHY301, Title: Modern Physics")
	assert.Contains(t, out, "Student Alice registered successfully for course Introduction to Computer Science")
	assert.Contains(t, out, "Student Alice is not registered for course Calculus I")
	assert.Contains(t, out, "Student Alice dropped course Introduction to Computer Science")
	assert.Contains(t, out, "Exiting program. Goodbye!")
}

func TestRoot_SeedFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses:\n  - code: ART110\n    title: Drawing\n    capacity: 1\nstudents:\n  - id: S010\n    name: Dana\n"), 0o600))

	out, _, err := execute(t, "3 S010 art110\n2\n5\n", "--seed", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Student Dana registered successfully for course Drawing")
	assert.NotContains(t, out, "CSE101")
}

func TestRoot_RejectDuplicatesFlag(t *testing.T) {
	out, _, err := execute(t, "3 S002 PHY301\n3 S002 PHY301\n5\n", "--reject-duplicates")
	require.NoError(t, err)
	assert.Contains(t, out, "Student Bob is already registered for course Modern Physics")
}

func TestRoot_BadSeedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses:\n  - code: NEG\n    title: Negative\n    capacity: -1\n"), 0o600))

	out, logs, err := execute(t, "5\n", "--seed", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply seed catalog")
	assert.NotContains(t, out, "Select an option:")
	assert.Contains(t, logs, "Failed to apply seed catalog")
}
