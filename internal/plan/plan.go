package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultFile is the plan file looked up in the working directory.
const DefaultFile = "zedc.yaml"

// Plan is a decoded test plan.
type Plan struct {
	CLIVersion string   `yaml:"cli_version"`
	VSCodeBin  string   `yaml:"vscode_bin"`
	Files      []string `yaml:"files"`

	// Dir is the directory holding the plan file. Relative paths in the
	// plan are resolved against it.
	Dir string `yaml:"-"`
}

// InvalidError reports schema violations in a plan file.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	var b strings.Builder
	b.WriteString(printer.Sprintf("%s: %d schema violation(s)", e.Path, len(e.Issues)))
	for _, issue := range e.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(&b, "\n  %s: %s", loc, issue.Message)
	}
	return b.String()
}

// Load reads, validates and decodes the plan at path.
func Load(path string) (*Plan, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating plan %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving plan path %s: %w", path, err)
	}
	p.Dir = filepath.Dir(abs)
	return &p, nil
}

// LoadIfExists loads path, returning nil without error when it is absent.
func LoadIfExists(path string) (*Plan, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return Load(path)
}

// ResolvedFiles returns Files with relative entries joined to Dir.
func (p *Plan) ResolvedFiles() []string {
	out := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		out = append(out, p.resolve(f))
	}
	return out
}

// ResolvedVSCodeBin returns VSCodeBin joined to Dir when relative.
func (p *Plan) ResolvedVSCodeBin() string {
	if p.VSCodeBin == "" {
		return ""
	}
	return p.resolve(p.VSCodeBin)
}

func (p *Plan) resolve(path string) string {
	if filepath.IsAbs(path) || p.Dir == "" {
		return path
	}
	return filepath.Join(p.Dir, path)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", path, err)
	}
	return data, nil
}
