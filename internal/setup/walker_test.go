package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/rmx/internal/walker"
)

func TestConfigureWalkerExclude(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "keep.txt", filepath.Join("build", "b.txt")} {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tracker := walker.NewSkippedTracker(4)
	opts, err := ConfigureWalker(WalkerConfig{
		RootDir:  dir,
		Exclude:  "keep.txt, build/",
		OnSelect: func(string) {},
		Tracker:  tracker,
	})
	if err != nil {
		t.Fatal(err)
	}

	files, err := walker.Collect([]string{"txt"}, dir, walker.CollectOptions{Recurse: true}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "a.txt") {
		t.Errorf("got %v, want only a.txt", files)
	}

	ignored := 0
	for _, item := range tracker.Items() {
		if item.Reason == walker.ReasonIgnoredRule {
			ignored++
		}
	}
	if ignored != 2 {
		t.Errorf("expected 2 entries ignored by rule, got %+v", tracker.Items())
	}
}

func TestConfigureWalkerWithoutRules(t *testing.T) {
	opts, err := ConfigureWalker(WalkerConfig{RootDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	var wo walker.WalkOptions
	for _, opt := range opts {
		opt(&wo)
	}
	if wo.Ignore != nil {
		t.Error("no ignore checker expected without rules")
	}
	if wo.Fs != nil {
		t.Error("nil Fs must leave the option untouched")
	}
}

func TestConfigureWalkerGitignore(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		".gitignore":  "scratch*\n",
		"scratch.txt": "",
		"notes.txt":   "",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	opts, err := ConfigureWalker(WalkerConfig{
		RootDir:      dir,
		UseGitignore: true,
		OnSelect:     func(string) {},
	})
	if err != nil {
		t.Fatal(err)
	}

	files, err := walker.Collect([]string{"txt"}, dir, walker.CollectOptions{}, opts...)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "notes.txt")}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", files, want)
	}
}
