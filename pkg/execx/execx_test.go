// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses /bin/sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCheck_Success(t *testing.T) {
	requireShell(t)

	if err := Check(exec.Command("sh", "-c", "true"), "true"); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestCheck_NonZeroExit(t *testing.T) {
	requireShell(t)

	err := Check(exec.Command("sh", "-c", "exit 7"), "failing-tool")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	var statusErr *ExitStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *ExitStatusError, got %T", err)
	}
	if statusErr.Code != 7 {
		t.Errorf("Code = %d, want 7", statusErr.Code)
	}
	if !strings.Contains(err.Error(), "failing-tool") {
		t.Errorf("error should carry the command name, got %q", err)
	}
}

func TestCheckOutput_CapturesStderr(t *testing.T) {
	requireShell(t)

	_, err := CheckOutput(exec.Command("sh", "-c", "echo oops >&2; exit 1"), "noisy")
	if err == nil {
		t.Fatal("expected error")
	}

	var statusErr *ExitStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *ExitStatusError, got %T", err)
	}
	if !strings.Contains(string(statusErr.Stderr), "oops") {
		t.Errorf("Stderr = %q, want it to contain %q", statusErr.Stderr, "oops")
	}
	if !strings.Contains(statusErr.Error(), "oops") {
		t.Errorf("Error() should include the first stderr line, got %q", statusErr.Error())
	}
}

func TestCheck_MissingBinary(t *testing.T) {
	err := Check(exec.Command("definitely-not-a-real-binary-xyz"), "missing")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	var statusErr *ExitStatusError
	if errors.As(err, &statusErr) {
		t.Error("a start failure is not an exit status error")
	}
}
