package report

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Kind classifies a report entry.
type Kind int

const (
	KindStep Kind = iota
	KindSuccess
	KindFailure
	KindLaunch
)

func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindLaunch:
		return "launch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Icons used for step entries.
const (
	IconWait   = "⌛"
	IconSearch = "🔍"
)

// Entry is a single progress line.
type Entry struct {
	Kind    Kind
	Icon    string // step entries only
	Message string
	Item    bool // per-item line, rendered indented
}

// Reporter receives progress entries. Output is where subprocesses that
// inherit the console should write.
type Reporter interface {
	Report(e Entry)
	Output() io.Writer
}

// Step reports the start of a phase.
func Step(r Reporter, icon, msg string) {
	r.Report(Entry{Kind: KindStep, Icon: icon, Message: msg})
}

// Success reports a completed operation.
func Success(r Reporter, msg string) {
	r.Report(Entry{Kind: KindSuccess, Message: msg})
}

// Failure reports a failed operation.
func Failure(r Reporter, msg string) {
	r.Report(Entry{Kind: KindFailure, Message: msg})
}

// Accepted reports an input item that passed validation.
func Accepted(r Reporter, msg string) {
	r.Report(Entry{Kind: KindSuccess, Message: msg, Item: true})
}

// Rejected reports an input item that was dropped.
func Rejected(r Reporter, msg string) {
	r.Report(Entry{Kind: KindFailure, Message: msg, Item: true})
}

// Launched reports a spawned application.
func Launched(r Reporter, msg string) {
	r.Report(Entry{Kind: KindLaunch, Message: msg})
}

// Console renders entries as lines on W.
type Console struct {
	W io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

// Report writes e as one line.
func (c *Console) Report(e Entry) {
	indent := ""
	if e.Item {
		indent = "  "
	}
	switch e.Kind {
	case KindStep:
		fmt.Fprintf(c.W, "\n%s %s\n", e.Icon, e.Message)
	case KindSuccess:
		fmt.Fprintf(c.W, "%s✔️  %s\n", indent, e.Message)
	case KindFailure:
		fmt.Fprintf(c.W, "%s❌ %s\n", indent, e.Message)
	case KindLaunch:
		fmt.Fprintf(c.W, "%s🚀 %s\n", indent, e.Message)
	}
}

// Output returns the console writer.
func (c *Console) Output() io.Writer { return c.W }

// Recorder collects entries in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	out     bytes.Buffer
}

// Report appends e.
func (r *Recorder) Report(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Output returns a buffer capturing subprocess output.
func (r *Recorder) Output() io.Writer { return &lockedWriter{mu: &r.mu, w: &r.out} }

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Captured returns everything written to Output.
func (r *Recorder) Captured() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.out.String()
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Discard drops every entry and all output.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(Entry)      {}
func (discard) Output() io.Writer { return io.Discard }
