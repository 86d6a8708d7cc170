// Where: cli-rt/internal/infra/fileops/file_ops.go
// What: Filesystem operations for template copying.
// Why: Keep the non-clobbering copy policy in one place.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyFunc copies one regular file and reports whether it wrote anything.
// Returning false with a nil error means the destination was left untouched.
type CopyFunc func(src, dst string, mode fs.FileMode) (bool, error)

// CopyStats summarizes a tree copy.
type CopyStats struct {
	Written int
	Skipped int
}

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// CheckReadableDir returns an error unless path is a directory that can be opened.
func CheckReadableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	return dir.Close()
}

// CopyTree walks src and mirrors its directories under dst, delegating each
// regular file to copyFile. Symlinks are recreated, never followed, and an
// existing destination entry is left alone.
func CopyTree(src, dst string, copyFile CopyFunc) (CopyStats, error) {
	var stats CopyStats
	if err := EnsureDir(dst); err != nil {
		return stats, err
	}
	err := filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		switch {
		case entry.IsDir():
			return EnsureDir(target)
		case entry.Type()&fs.ModeSymlink != 0:
			written, err := copySymlinkNoClobber(path, target)
			if err != nil {
				return err
			}
			stats.count(written)
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		written, err := copyFile(path, target, info.Mode())
		if err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		stats.count(written)
		return nil
	})
	return stats, err
}

func (s *CopyStats) count(written bool) {
	if written {
		s.Written++
		return
	}
	s.Skipped++
}

// CopyFileNoClobber copies src to dst unless dst already exists.
func CopyFileNoClobber(src, dst string, mode fs.FileMode) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()
	return WriteNoClobber(dst, in, mode)
}

// WriteNoClobber creates dst exclusively and fills it from r. It reports
// false without error when dst already exists.
func WriteNoClobber(dst string, r io.Reader, mode fs.FileMode) (bool, error) {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return false, err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		// A partial file would be skipped forever by later runs.
		_ = os.Remove(dst)
		return false, err
	}
	if err := out.Close(); err != nil {
		return false, err
	}
	// OpenFile applies the umask; restore the template's permission bits.
	return true, os.Chmod(dst, mode.Perm())
}

func copySymlinkNoClobber(src, dst string) (bool, error) {
	if _, err := os.Lstat(dst); err == nil {
		return false, nil
	}
	link, err := os.Readlink(src)
	if err != nil {
		return false, err
	}
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return false, err
	}
	if err := os.Symlink(link, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
