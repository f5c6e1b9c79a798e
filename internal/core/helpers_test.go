package core

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyDirectory_CopiesEverything(t *testing.T) {
	src := t.TempDir()
	// Nothing is excluded, including files other tools tend to skip.
	for _, name := range []string{"SKILL.md", "README.md", "metadata.json", "_draft.md", ".skill-meta.json"} {
		writeFile(t, filepath.Join(src, name), name)
	}
	writeFile(t, filepath.Join(src, "references", "a", "b.md"), "deep")

	dst := t.TempDir()
	if err := copyDirectory(src, dst); err != nil {
		t.Fatalf("copyDirectory() error: %v", err)
	}

	for _, rel := range []string{"SKILL.md", "README.md", "metadata.json", "_draft.md", ".skill-meta.json", "references/a/b.md"} {
		assertSameFile(t, filepath.Join(src, rel), filepath.Join(dst, filepath.FromSlash(rel)))
	}
}

func TestCopyDirectory_PreservesSymlinks(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "SKILL.md"), "# x\n")
	if err := os.Symlink("SKILL.md", filepath.Join(src, "alias.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	dst := t.TempDir()
	if err := copyDirectory(src, dst); err != nil {
		t.Fatalf("copyDirectory() error: %v", err)
	}

	target, err := os.Readlink(filepath.Join(dst, "alias.md"))
	if err != nil {
		t.Fatalf("alias.md is not a symlink: %v", err)
	}
	if target != "SKILL.md" {
		t.Errorf("symlink target = %q, want %q", target, "SKILL.md")
	}
}

func TestCopyFile_KeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755)
	dst := filepath.Join(dir, "copy.sh")
	os.WriteFile(dst, []byte("older and longer content"), 0o600)

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile() error: %v", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %o, want 755", info.Mode().Perm())
	}
	assertSameFile(t, src, dst)
}

func TestReplaceDirectory(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "new.md"), "new")

	dst := filepath.Join(t.TempDir(), "skill")
	writeFile(t, filepath.Join(dst, "old.md"), "old")

	if err := replaceDirectory(src, dst); err != nil {
		t.Fatalf("replaceDirectory() error: %v", err)
	}
	if got := listNames(t, dst); !equalStrings(got, []string{"new.md"}) {
		t.Errorf("contents = %v, want [new.md]", got)
	}
}

func TestReplaceDirectory_MissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "skill")
	if err := replaceDirectory(filepath.Join(t.TempDir(), "missing"), dst); err == nil {
		t.Error("expected error for missing source")
	}
}

func TestCheckOverlap(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"a/skill", "a/skill/inner", "b/skill", "ab"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		src, dst string
		wantErr  bool
	}{
		{"a/skill", "a/skill", true},
		{"a/skill", "a/skill/inner", true},
		{"a/skill/inner", "a/skill", true},
		{"a/skill", "b/skill", false},
		{"a", "ab", false},
	}
	for _, tt := range tests {
		err := checkOverlap(filepath.Join(root, tt.src), filepath.Join(root, tt.dst))
		if (err != nil) != tt.wantErr {
			t.Errorf("checkOverlap(%s, %s) error = %v, wantErr %v", tt.src, tt.dst, err, tt.wantErr)
		}
	}
}

func TestCheckOverlap_Symlink(t *testing.T) {
	root := t.TempDir()
	dst := filepath.Join(root, "dest")
	if err := os.MkdirAll(dst, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(dst, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := checkOverlap(link, dst); err == nil {
		t.Error("expected overlap error through symlink")
	}
}
