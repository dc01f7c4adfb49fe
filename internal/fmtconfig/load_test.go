package fmtconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesOverridesOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte("line_length_maximum = 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.LineLengthMaximum != 80 {
		t.Fatalf("LineLengthMaximum = %d, want 80", got.LineLengthMaximum)
	}
	if got.IndentInMultilineBlock != 0 {
		t.Fatalf("IndentInMultilineBlock = %d, want default 0", got.IndentInMultilineBlock)
	}
}

func TestFindWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, manifestName), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected to find manifest in ancestor directory")
	}
	want := filepath.Join(root, manifestName)
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}

func TestFindNoneFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected no manifest to be found")
	}
}

func TestLoadFromDirDefaultsWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	got, err := LoadFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != Default() {
		t.Fatalf("LoadFromDir without manifest = %+v, want %+v", got, Default())
	}
}
