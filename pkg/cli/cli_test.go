// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type greetArgs struct {
	name string
}

// newGreet builds the scenario command: one required --name flag and a user
// function that records the decoded arguments.
func newGreet(t *testing.T, run func(context.Context, *greetArgs) error) *cobra.Command {
	t.Helper()
	return New("greet", func(cmd *cobra.Command, a *greetArgs) {
		cmd.Flags().StringVar(&a.name, "name", "", "who to greet")
		if err := cmd.MarkFlagRequired("name"); err != nil {
			t.Fatalf("MarkFlagRequired: %v", err)
		}
	}, run)
}

func TestExecute_Success(t *testing.T) {
	var got string
	root := newGreet(t, func(_ context.Context, a *greetArgs) error {
		got = a.name
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs([]string{"--name=Alice"}),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
	)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d (stderr: %q)", code, ExitSuccess, stderr.String())
	}
	if got != "Alice" {
		t.Errorf("decoded name = %q, want %q", got, "Alice")
	}
}

func TestExecute_MissingRequiredFlag(t *testing.T) {
	called := false
	root := newGreet(t, func(context.Context, *greetArgs) error {
		called = true
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs(nil),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
	)

	if code == ExitSuccess {
		t.Error("exit code should be non-zero for missing required flag")
	}
	if called {
		t.Error("user function must not run when decoding fails")
	}
	if !strings.Contains(stderr.String(), "name") {
		t.Errorf("stderr should mention the missing flag, got %q", stderr.String())
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	called := false
	root := newGreet(t, func(context.Context, *greetArgs) error {
		called = true
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs([]string{"--bogus"}),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
	)

	if code == ExitSuccess {
		t.Error("exit code should be non-zero for unknown flag")
	}
	if called {
		t.Error("user function must not run when decoding fails")
	}
}

func TestExecute_FailureChain(t *testing.T) {
	root := New[struct{}]("report", nil, func(context.Context, *struct{}) error {
		return fmt.Errorf("disk full: %w", errors.New("write failed"))
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs(nil),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
	)

	if code != ExitFailure {
		t.Errorf("exit code = %d, want %d", code, ExitFailure)
	}
	// Message first, then causes, innermost last, one per line.
	out := stderr.String()
	diskIdx := strings.Index(out, "disk full\n")
	writeIdx := strings.Index(out, "write failed\n")
	if diskIdx < 0 || writeIdx < 0 {
		t.Fatalf("stderr missing diagnostic lines, got %q", out)
	}
	if diskIdx > writeIdx {
		t.Errorf("cause should be printed after the message, got %q", out)
	}
}

func TestExecute_ExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "bare code",
			err:      &ExitError{Code: 3},
			wantCode: 3,
			wantOut:  "",
		},
		{
			name:     "code with diagnostic",
			err:      &ExitError{Code: 2, Err: errors.New("bad input")},
			wantCode: 2,
			wantOut:  "bad input\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New[struct{}]("tool", nil, func(context.Context, *struct{}) error {
				return tt.err
			})

			var stdout, stderr bytes.Buffer
			code := Execute(context.Background(), root,
				WithArgs(nil),
				WithOutput(&stdout),
				WithErrOutput(&stderr),
			)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if stderr.String() != tt.wantOut {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantOut)
			}
		})
	}
}

func TestExecute_HelpExitsZero(t *testing.T) {
	called := false
	root := newGreet(t, func(context.Context, *greetArgs) error {
		called = true
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs([]string{"--help"}),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
	)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d for --help", code, ExitSuccess)
	}
	if called {
		t.Error("user function must not run for --help")
	}
}

func TestExecute_VersionExitsZero(t *testing.T) {
	root := New[struct{}]("tool", nil, func(context.Context, *struct{}) error {
		t.Error("user function must not run for --version")
		return nil
	})

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), root,
		WithArgs([]string{"--version"}),
		WithOutput(&stdout),
		WithErrOutput(&stderr),
		WithVersion("1.2.3"),
	)

	if code != ExitSuccess {
		t.Errorf("exit code = %d, want %d for --version", code, ExitSuccess)
	}
}

func TestExecute_VerboseEnablesDebugLogging(t *testing.T) {
	prevLevel := Logger().GetLevel()
	prevDefault := log.GetLevel()
	t.Cleanup(func() {
		Logger().SetLevel(prevLevel)
		log.SetLevel(prevDefault)
	})

	root := New[struct{}]("tool", nil, func(context.Context, *struct{}) error {
		if Logger().GetLevel() != log.DebugLevel {
			t.Error("package logger should be at debug level under --verbose")
		}
		if log.GetLevel() != log.DebugLevel {
			t.Error("default logger should be at debug level under --verbose")
		}
		return nil
	})

	var stdout bytes.Buffer
	if code := Execute(context.Background(), root, WithArgs([]string{"--verbose"}), WithOutput(&stdout)); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}

func TestNew_VerboseFlagIsPersistent(t *testing.T) {
	root := New[struct{}]("tool", nil, func(context.Context, *struct{}) error { return nil })

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("--verbose should be a persistent flag so subcommands inherit it")
	}
}

func TestExecute_ContextReachesRun(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")

	root := New[struct{}]("tool", nil, func(runCtx context.Context, _ *struct{}) error {
		if runCtx.Value(key{}) != "marker" {
			t.Error("command context should derive from the Execute context")
		}
		return nil
	})

	var stdout bytes.Buffer
	if code := Execute(ctx, root, WithArgs(nil), WithOutput(&stdout)); code != ExitSuccess {
		t.Errorf("exit code = %d, want %d", code, ExitSuccess)
	}
}
