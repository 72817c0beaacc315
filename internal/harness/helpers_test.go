package harness

import (
	"context"
	"sync"

	"github.com/zowe-tools/zedc/internal/process"
	"github.com/zowe-tools/zedc/internal/report"
)

// fakeExec records commands instead of spawning them.
type fakeExec struct {
	mu     sync.Mutex
	runs   []process.Command
	starts []process.Command

	// onRun is called for each Run and its error returned.
	onRun func(process.Command) error
	// startErrs are returned by successive Start calls; nil entries succeed.
	startErrs []error
}

func (f *fakeExec) Run(_ context.Context, c process.Command) error {
	f.mu.Lock()
	f.runs = append(f.runs, c)
	f.mu.Unlock()
	if f.onRun != nil {
		return f.onRun(c)
	}
	return nil
}

func (f *fakeExec) Start(_ context.Context, c process.Command) (*process.Detached, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.starts)
	f.starts = append(f.starts, c)
	if i < len(f.startErrs) && f.startErrs[i] != nil {
		return nil, f.startErrs[i]
	}
	return process.Exited(1000+i, nil), nil
}

func newTestHarness(exec *fakeExec) (*Harness, *recorder) {
	rec := newRecorder()
	h := New(rec.Recorder)
	h.Exec = exec
	h.NpmBin = "npm"
	return h, rec
}

type recorder struct {
	*report.Recorder
}

func newRecorder() *recorder {
	return &recorder{Recorder: &report.Recorder{}}
}

// kinds returns the entry kinds in order.
func (r *recorder) kinds() []report.Kind {
	var out []report.Kind
	for _, e := range r.Entries() {
		out = append(out, e.Kind)
	}
	return out
}
