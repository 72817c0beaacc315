package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// OS is the Executor backed by os/exec.
type OS struct {
	// Logger receives debug lines for every spawn. Nil uses the global logger.
	Logger *zerolog.Logger
}

var _ Executor = (*OS)(nil)

func (o *OS) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return &log.Logger
}

// Run executes c and waits for it.
func (o *OS) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	configure(cmd, c)

	o.logger().Debug().Str("cmd", c.String()).Str("dir", c.Dir).Msg("running")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.Name, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with code %d: %w", c.Name, exitErr.ExitCode(), err)
		}
		return fmt.Errorf("waiting for %s: %w", c.Name, err)
	}
	return nil
}

// Start spawns c and returns without waiting. ctx only gates the spawn:
// a child that has started is not killed when ctx is cancelled.
func (o *OS) Start(ctx context.Context, c Command) (*Detached, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c.Name, err)
	}

	cmd := exec.Command(c.Name, c.Args...)
	configure(cmd, c)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c.Name, err)
	}

	d := newDetached(cmd.Process.Pid)
	// The reaper keeps its own copy; the global logger may be replaced later.
	l := *o.logger()
	l.Debug().Str("cmd", c.String()).Int("pid", d.pid).Msg("spawned detached")

	go func() {
		err := cmd.Wait()
		l.Debug().Int("pid", d.pid).Err(err).Msg("detached process exited")
		d.finish(err)
	}()
	return d, nil
}

func configure(cmd *exec.Cmd, c Command) {
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if len(c.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), c.Env)
	}
}
