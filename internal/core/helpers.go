package core

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// copyDirectory copies the contents of src to dst byte for byte.
// Nothing is excluded. Symlinks below src are recreated as symlinks; src
// itself may be a symlink to a directory.
func copyDirectory(src, dst string) error {
	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(dstPath, 0o755)
		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, dstPath)
		case d.Type().IsRegular():
			return copyFile(path, dstPath)
		default:
			return fmt.Errorf("unsupported file type %s: %s", d.Type(), path)
		}
	})
}

// copyFile copies a single file from src to dst, truncating dst and keeping
// the source permission bits.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	if err := dstFile.Close(); err != nil {
		return err
	}
	// OpenFile only applies the mode on create; keep it in sync on overwrite.
	return os.Chmod(dst, info.Mode().Perm())
}

// copySymlink recreates the symlink at src as dst, replacing whatever dst was.
func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return err
	}
	_ = os.RemoveAll(dst)
	return os.Symlink(target, dst)
}

// replaceDirectory deletes dst and copies src in its place. The result is
// a mirror of src, not a merge with what dst held before.
func replaceDirectory(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing %s: %w", dst, err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if err := copyDirectory(src, dst); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}

// checkOverlap fails when src and dst resolve to the same directory or one
// contains the other. Both paths must exist.
func checkOverlap(src, dst string) error {
	realSrc, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	realDst, err := filepath.EvalSymlinks(dst)
	if err != nil {
		return err
	}
	if within(realSrc, realDst) || within(realDst, realSrc) {
		return fmt.Errorf("source %s overlaps destination %s", src, dst)
	}
	return nil
}

// within reports whether path is base or lies below it.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// isHidden reports whether a directory entry name starts with a dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// dirExists returns true if the path exists and is a directory, following
// symlinks.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists returns true if the path exists and is a regular file,
// following symlinks.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
