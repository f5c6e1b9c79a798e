//go:build unix

package core

import (
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

func TestCopyDirectory_RejectsFIFO(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "SKILL.md"), "# x\n")
	if err := syscall.Mkfifo(filepath.Join(src, "pipe"), 0o644); err != nil {
		t.Skipf("mkfifo not supported: %v", err)
	}

	err := copyDirectory(src, t.TempDir())
	if err == nil {
		t.Fatal("copyDirectory() succeeded on a FIFO")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("error = %v, want unsupported file type", err)
	}
}
