package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestExecute_ErrorExitsNonZero re-runs the test binary so Execute can call os.Exit.
func TestExecute_ErrorExitsNonZero(t *testing.T) {
	if os.Getenv("GO_WANT_EXECUTE_CHILD") == "1" {
		os.Args = []string{"solstats", os.Getenv("GO_EXECUTE_CHILD_INPUT")}
		Execute()
		return
	}
	dir := t.TempDir()
	inputs := map[string]string{
		"missing file":   filepath.Join(dir, "missing.csv"),
		"negative value": writeCSV(t, "Solution", "-1", "2", "3"),
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			c := exec.Command(os.Args[0], "-test.run=^TestExecute_ErrorExitsNonZero$")
			c.Env = append(os.Environ(),
				"GO_WANT_EXECUTE_CHILD=1",
				"GO_EXECUTE_CHILD_INPUT="+input,
				"HOME="+t.TempDir(),
			)
			var stdout, stderr bytes.Buffer
			c.Stdout = &stdout
			c.Stderr = &stderr
			err := c.Run()
			var ee *exec.ExitError
			if !errors.As(err, &ee) {
				t.Fatalf("expected non-zero exit, got %v (stderr: %s)", err, stderr.String())
			}
			if ee.ExitCode() != 1 {
				t.Fatalf("exit code = %d, want 1", ee.ExitCode())
			}
			if !strings.Contains(stderr.String(), "✗ Error: ") {
				t.Fatalf("stderr missing error line: %q", stderr.String())
			}
			if strings.Contains(stdout.String(), "The geometric mean") {
				t.Fatalf("no report expected on failure, got:\n%s", stdout.String())
			}
		})
	}
}
