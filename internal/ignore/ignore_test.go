package ignore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewWithoutRulesReturnsNil(t *testing.T) {
	m, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Fatalf("expected nil matcher, got %+v", m)
	}
	if m.ShouldIgnore("anything.log", false) {
		t.Error("nil matcher must ignore nothing")
	}
}

func TestCustomRules(t *testing.T) {
	m, err := New(t.TempDir(), WithCustomRules([]string{"*.log", " ", "build/", "!keep.log"}))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"root.log", false, true},
		{"keep.log", false, false},
		{"root.txt", false, false},
		{"build", true, true},
		{".", true, false},
		{"", true, false},
	}
	for _, tt := range tests {
		if got := m.ShouldIgnore(tt.path, tt.isDir); got != tt.want {
			t.Errorf("ShouldIgnore(%q, %v) = %v, want %v", tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestGitignoreFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.tmp\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := NewFromConfig(Config{RootDir: dir, UseGitignore: true})
	if err != nil {
		t.Fatal(err)
	}
	if !m.ShouldIgnore("scratch.tmp", false) {
		t.Error("scratch.tmp should be ignored by .gitignore")
	}
	if m.ShouldIgnore("notes.txt", false) {
		t.Error("notes.txt should not be ignored")
	}
	if m.Root() != dir {
		t.Errorf("Root() = %q, want %q", m.Root(), dir)
	}
}

func TestSplitPatterns(t *testing.T) {
	got := SplitPatterns(" *.log, build/ ,,tmp")
	want := []string{"*.log", "build/", "tmp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitPatterns = %v, want %v", got, want)
	}
	if SplitPatterns("  ") != nil {
		t.Error("blank input should give nil")
	}
}
