package highlight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryMatch(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"util.h", "c"},
		{"view.cpp", "c"},
		{"notes.txt", ""},
		{"", ""},
	}

	for _, tt := range tests {
		p := r.Match(tt.filename)
		got := ""
		if p != nil {
			got = p.Name
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestRegistryUserProfilePrecedence(t *testing.T) {
	r := NewRegistry()
	r.Register(&Profile{Name: "myc", FileMatch: []string{".c"}})

	if p := r.Match("main.c"); p == nil || p.Name != "myc" {
		t.Errorf("user profile should shadow the built-in, got %+v", p)
	}
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	src := `
name: shell
filematch: [".sh", ".bash"]
keywords: ["if", "then", "fi", "for", "done"]
line_comment: "#"
strings: true
`
	if err := os.WriteFile(filepath.Join(dir, "shell.yaml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	p := r.Match("build.sh")
	if p == nil || p.Name != "shell" {
		t.Fatalf("expected shell profile, got %+v", p)
	}
	if !p.Flags.Has(FlagStrings) || p.Flags.Has(FlagNumbers) {
		t.Errorf("unexpected flags: %b", p.Flags)
	}
	if p.LineComment != "#" {
		t.Errorf("unexpected line comment: %q", p.LineComment)
	}
}

func TestRegistryLoadDirMissing(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
}

func TestRegistryLoadDirMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("name: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadDir(dir); err == nil {
		t.Error("expected an error for malformed profile")
	}
}
