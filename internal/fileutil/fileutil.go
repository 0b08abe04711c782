// Package fileutil provides file and path helpers for site builds.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrUnsafeClean = errors.New("refusing to clean directory")
	ErrNotDir      = errors.New("not a directory")
	ErrOverlap     = errors.New("directories overlap")
)

// Markdown file extensions, compared case-insensitively.
var markdownExtensions = []string{".md", ".markdown"}

// WriteFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so readers never see a partial page.
// Parent directories are created as needed.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".md2site-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// CopyStats summarizes a CopyTree run.
type CopyStats struct {
	Files   int
	Bytes   int64
	Skipped int // symlinks and special files
}

// CopyTree copies regular files and directories from src into dst.
// Symlinks and special files are skipped. A missing src copies nothing.
// Returns ErrOverlap when dst is src or either contains the other.
func CopyTree(src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDir, src)
	}
	if err := CheckDisjoint(src, dst); err != nil {
		return stats, err
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0o755)
		case d.Type().IsRegular():
			n, err := copyFile(path, target)
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
		default:
			stats.Skipped++
		}
		return nil
	})
	return stats, err
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src) // #nosec G304 -- walked from the static dir
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304 -- mirrors the walked path
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

// ResetDir removes dir and everything below it, then recreates it empty.
// It refuses the filesystem root, the working directory and any of its
// ancestors, and any directory that is or contains one of the protected paths.
func ResetDir(dir string, protected ...string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if filepath.Dir(abs) == abs {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeClean, dir)
	}
	if wd, err := os.Getwd(); err == nil && isWithin(wd, abs) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeClean, dir)
	}
	for _, p := range protected {
		if p == "" {
			continue
		}
		pAbs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		if isWithin(pAbs, abs) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeClean, dir, p)
		}
	}

	if info, err := os.Lstat(abs); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDir, dir)
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return os.MkdirAll(abs, 0o755)
}

// CheckDisjoint fails with ErrOverlap when a and b are the same directory
// or one lies below the other.
func CheckDisjoint(a, b string) error {
	absA, err := filepath.Abs(a)
	if err != nil {
		return err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return err
	}
	if isWithin(absA, absB) || isWithin(absB, absA) {
		return fmt.Errorf("%w: %s and %s", ErrOverlap, a, b)
	}
	return nil
}

// isWithin reports whether path equals base or lies below it.
// Both must be absolute and clean.
func isWithin(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// IsMarkdown reports whether path has a Markdown extension.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// ReplaceExt swaps the extension of path for ext (including the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// FileExists returns true if the path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "md2site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/md2site/blog.yaml" -> true (absolute)
//   - "C:\sites\blog.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
