package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, cwd, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(func() (string, error) { return cwd, nil })
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no extensions", args: nil, want: "<EXTENSIONS>"},
		{name: "preset with extensions", args: []string{"--preset", "x", "txt"}, want: "cannot be used with"},
		{name: "presets with preset", args: []string{"--presets", "--preset", "x"}, want: "--preset cannot be used with --presets"},
		{name: "unknown flag", args: []string{"--nope", "txt"}, want: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, t.TempDir(), "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDefaultPathIsWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.rs")

	stdout, _, err := execute(t, dir, "", "-n", "txt")
	if err != nil {
		t.Fatal(err)
	}
	if stdout != filepath.Join(dir, "a.txt")+"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestShortFlags(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", ".b.txt", "sub/c.txt", "keep.md")

	stdout, _, err := execute(t, "/nonexistent", "", "-r", "-a", "-f", "-l", "-p", dir, "txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", ".b.txt", filepath.Join("sub", "c.txt")} {
		p := filepath.Join(dir, name)
		if !strings.Contains(stdout, p+"\n") {
			t.Errorf("%s not listed in %q", p, stdout)
		}
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s still exists", p)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.md")); err != nil {
		t.Errorf("keep.md: %v", err)
	}
	if !strings.HasSuffix(stdout, "Deleting files...\nDone!\n") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestInvertKeepsGivenExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.txt", "b.rs", "c")

	_, _, err := execute(t, dir, "y\n", "-i", "txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Errorf("a.txt: %v", err)
	}
	for _, name := range []string{"b.rs", "c"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s still exists", name)
		}
	}
}

func TestInvertKeepsDotfileNamedLikeExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".bashrc", "notes.md")

	if _, _, err := execute(t, dir, "", "-a", "-i", "-f", "bashrc"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".bashrc")); err != nil {
		t.Errorf(".bashrc: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.md")); !errors.Is(err, os.ErrNotExist) {
		t.Error("notes.md still exists")
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "", "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, version) {
		t.Errorf("stdout = %q", stdout)
	}
}
