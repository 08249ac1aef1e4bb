// SPDX-License-Identifier: MPL-2.0

package execx

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/axlekit/axle/pkg/diag"
)

// ScriptOption configures Script.
type ScriptOption func(*scriptConfig)

type scriptConfig struct {
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	params []string
}

// WithDir sets the script's working directory.
func WithDir(dir string) ScriptOption {
	return func(c *scriptConfig) { c.dir = dir }
}

// WithEnv replaces the script's environment with the given KEY=VALUE pairs.
// Without this option the script inherits the process environment.
func WithEnv(env []string) ScriptOption {
	return func(c *scriptConfig) { c.env = env }
}

// WithStdio sets the script's standard streams. Nil writers default to the
// process streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) ScriptOption {
	return func(c *scriptConfig) {
		c.stdin = stdin
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithParams sets the script's positional parameters ($1, $2, ...).
func WithParams(params ...string) ScriptOption {
	return func(c *scriptConfig) { c.params = params }
}

// Script parses and runs a POSIX shell snippet in-process, with no external
// shell involved. A non-zero script exit becomes an *ExitStatusError named
// "script"; a syntax error is reported as a parse failure.
func Script(ctx context.Context, src string, opts ...ScriptOption) error {
	cfg := scriptConfig{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(src), "script")
	if err != nil {
		return diag.Wrap(err, "parse script")
	}

	runnerOpts := []interp.RunnerOption{
		interp.StdIO(cfg.stdin, cfg.stdout, cfg.stderr),
	}
	if cfg.dir != "" {
		runnerOpts = append(runnerOpts, interp.Dir(cfg.dir))
	}
	if cfg.env != nil {
		runnerOpts = append(runnerOpts, interp.Env(expand.ListEnviron(cfg.env...)))
	}
	if len(cfg.params) > 0 {
		// "--" keeps params that look like options (e.g. "-v") from being
		// interpreted as shell options.
		runnerOpts = append(runnerOpts, interp.Params(append([]string{"--"}, cfg.params...)...))
	}

	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return diag.Wrap(err, "create interpreter")
	}

	log.Debug("running script", "dir", cfg.dir, "params", len(cfg.params))
	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &ExitStatusError{Name: "script", Code: int(exitStatus)}
		}
		return diag.Wrap(err, "run script")
	}
	return nil
}
