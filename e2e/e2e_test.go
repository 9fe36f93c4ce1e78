package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bradleyjkemp/cupaloy/v2"
)

func binaryPath(t *testing.T) string {
	t.Helper()
	for _, candidate := range []string{"./i18ngrd", "bin/i18ngrd"} {
		if _, err := os.Stat(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				t.Fatalf("Failed to resolve binary path: %v", err)
			}
			return abs
		}
	}
	t.Skip("i18ngrd binary not built; run go build -o e2e/i18ngrd ./cmd/i18ngrd first")
	return ""
}

func mockRepoPath(t *testing.T) string {
	t.Helper()
	absPath, err := filepath.Abs(filepath.Join("testdata", "mock-repo"))
	if err != nil {
		t.Fatalf("Failed to get absolute path: %v", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		t.Fatalf("Testdata directory not found: %s", absPath)
	}
	return absPath
}

// runScan runs the binary against the mock repo and returns the report
// printed to stdout with the scan directory normalized. Exit code 1 is
// expected whenever the mock repo has issues.
func runScan(t *testing.T, extraArgs ...string) string {
	t.Helper()
	binary := binaryPath(t)
	repo := mockRepoPath(t)

	args := append([]string{"scan", repo, "--silent", "--output", "-"}, extraArgs...)
	cmd := exec.Command(binary, args...)
	out, err := cmd.Output()
	if err != nil {
		exitError, ok := err.(*exec.ExitError)
		if !ok || exitError.ExitCode() != 1 {
			t.Fatalf("Unexpected error running scan: %v\nOutput: %s", err, out)
		}
	}

	return strings.ReplaceAll(string(out), repo, "[SCAN_DIR]")
}

func TestScanMockRepo(t *testing.T) {
	cupaloy.SnapshotT(t, runScan(t))
}

func TestScanMockRepoWithFix(t *testing.T) {
	cupaloy.SnapshotT(t, runScan(t, "--fix"))
}

func TestScanExitCode(t *testing.T) {
	binary := binaryPath(t)
	repo := mockRepoPath(t)

	cmd := exec.Command(binary, "scan", repo, "--silent", "--output", "-")
	if err := cmd.Run(); err == nil {
		t.Error("Expected exit code 1 for a repo with missing and unused keys")
	}
}
