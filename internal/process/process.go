package process

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// Command describes a program invocation.
type Command struct {
	Name string
	Args []string
	// Env is added on top of the current process environment.
	Env map[string]string
	Dir string
	// A nil Stdout or Stderr is connected to the null device.
	Stdout io.Writer
	Stderr io.Writer
}

// String returns the command line as it would be typed in a shell,
// without quoting.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Executor spawns commands.
type Executor interface {
	// Run starts the command and waits for it to exit. Both a failure to
	// start and a non-zero exit status are returned as errors.
	Run(ctx context.Context, cmd Command) error
	// Start spawns the command without waiting for it. The returned handle
	// is never required to be waited on.
	Start(ctx context.Context, cmd Command) (*Detached, error)
}

// Detached is a handle to a child that was started without waiting.
type Detached struct {
	pid  int
	done chan struct{}
	once sync.Once
	err  error
}

func newDetached(pid int) *Detached {
	return &Detached{pid: pid, done: make(chan struct{})}
}

// Exited returns a handle for a child that has already finished with err.
// Fake executors use it to hand back completed processes.
func Exited(pid int, err error) *Detached {
	d := newDetached(pid)
	d.finish(err)
	return d
}

func (d *Detached) finish(err error) {
	d.once.Do(func() {
		d.err = err
		close(d.done)
	})
}

// PID returns the operating system process id.
func (d *Detached) PID() int { return d.pid }

// Done is closed once the child has exited and been reaped.
func (d *Detached) Done() <-chan struct{} { return d.done }

// Err returns the exit error. It is only meaningful after Done is closed.
func (d *Detached) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Wait blocks until the child exits or ctx is done.
func (d *Detached) Wait(ctx context.Context) error {
	select {
	case <-d.done:
		return d.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mergeEnv overlays extra onto base in sorted key order.
func mergeEnv(base []string, extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := append([]string(nil), base...)
	for _, k := range keys {
		env = setEnv(env, k, extra[k])
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
