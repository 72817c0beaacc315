package harness

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zowe-tools/zedc/internal/report"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("archive"), 0644); err != nil {
		t.Fatal(err)
	}
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	p, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestIsArchive(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"zowe-explorer-3.0.0.vsix", true},
		{"zowe-explorer-api-3.0.0.tgz", true},
		{"bundle.tar.gz", true},
		{"setup.exe", false},
		{"README", false},
		{"archive.VSIX", false},
		{"vsix", false},
		{"dir.vsix/file.zip", false},
		{".vsix", false},
		{"dir/.tgz", false},
		{"/tmp/x/.gz", false},
		{"..vsix", true},
	}
	for _, tt := range tests {
		if got := IsArchive(tt.path); got != tt.want {
			t.Errorf("IsArchive(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolvePaths_MixedInput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	touch(t, "a.vsix")
	touch(t, "b.exe")

	h, rec := newTestHarness(&fakeExec{})
	got := h.ResolvePaths([]string{"a.vsix", "b.exe", "missing.tgz"})

	want := []string{canonical(t, filepath.Join(dir, "a.vsix"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvePaths mismatch (-want +got):\n%s", diff)
	}

	entries := rec.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 report entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Kind != report.KindStep || entries[0].Icon != report.IconSearch {
		t.Errorf("first entry = %+v, want search step", entries[0])
	}
	if e := entries[1]; e.Kind != report.KindSuccess || !e.Item || e.Message != "a.vsix" {
		t.Errorf("entry for a.vsix = %+v", e)
	}
	if e := entries[2]; e.Kind != report.KindFailure || e.Message != "b.exe: invalid extension" {
		t.Errorf("entry for b.exe = %+v", e)
	}
	if e := entries[3]; e.Kind != report.KindFailure || !strings.HasPrefix(e.Message, "missing.tgz: ") {
		t.Errorf("entry for missing.tgz = %+v", e)
	}
}

func TestResolvePaths_PreservesOrderAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.tgz", "two.vsix", "three.tar.gz"} {
		touch(t, filepath.Join(dir, name))
	}

	h, _ := newTestHarness(&fakeExec{})
	in := []string{
		filepath.Join(dir, "two.vsix"),
		filepath.Join(dir, "missing.vsix"),
		filepath.Join(dir, "one.tgz"),
		filepath.Join(dir, "two.vsix"),
		filepath.Join(dir, "three.tar.gz"),
	}
	got := h.ResolvePaths(in)

	want := []string{
		canonical(t, in[0]),
		canonical(t, in[2]),
		canonical(t, in[3]),
		canonical(t, in[4]),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvePaths mismatch (-want +got):\n%s", diff)
	}
	for _, p := range got {
		if !IsArchive(p) || !filepath.IsAbs(p) {
			t.Errorf("result %q is not an absolute archive path", p)
		}
	}
}

func TestResolvePaths_Empty(t *testing.T) {
	h, rec := newTestHarness(&fakeExec{})
	if got := h.ResolvePaths(nil); len(got) != 0 {
		t.Errorf("ResolvePaths(nil) = %v, want empty", got)
	}
	if diff := cmp.Diff([]report.Kind{report.KindStep}, rec.kinds()); diff != "" {
		t.Errorf("report kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePaths_ChecksExtensionAfterSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "real.vsix"))
	touch(t, filepath.Join(dir, "real.zip"))
	if err := os.Symlink(filepath.Join(dir, "real.vsix"), filepath.Join(dir, "latest")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "real.zip"), filepath.Join(dir, "fake.vsix")); err != nil {
		t.Fatal(err)
	}

	h, _ := newTestHarness(&fakeExec{})
	got := h.ResolvePaths([]string{filepath.Join(dir, "latest"), filepath.Join(dir, "fake.vsix")})

	want := []string{canonical(t, filepath.Join(dir, "real.vsix"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvePaths mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePaths_RejectsDotfiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	touch(t, ".vsix")
	touch(t, ".tgz")
	touch(t, "real.vsix")

	h, rec := newTestHarness(&fakeExec{})
	got := h.ResolvePaths([]string{".vsix", ".tgz", "real.vsix"})

	want := []string{canonical(t, filepath.Join(dir, "real.vsix"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvePaths mismatch (-want +got):\n%s", diff)
	}
	for _, e := range rec.Entries()[1:3] {
		if e.Kind != report.KindFailure || !strings.HasSuffix(e.Message, ": invalid extension") {
			t.Errorf("dotfile entry = %+v, want invalid extension failure", e)
		}
	}
}

func TestResolvePaths_ConsoleOutput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	touch(t, "ok.vsix")

	var out strings.Builder
	h := New(report.NewConsole(&out))
	h.ResolvePaths([]string{"ok.vsix", "bad.txt"})

	text := out.String()
	for _, want := range []string{"🔍 Resolving files...", "  ✔️  ok.vsix", "  ❌ bad.txt: "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}
