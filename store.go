package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// loadLines reads a memo file. A missing file is not an error: it yields no lines and exists=false.
func loadLines(file string) (lines []string, exists bool, err error) {
	b, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", file, err)
	}
	return splitLines(b), true, nil
}

// writeTarget resolves symlinks in file and returns the path to replace and the mode to keep.
// A new file gets 0644.
func writeTarget(file string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(file)
	if errors.Is(err, fs.ErrNotExist) {
		// dangling link: write through to where it points
		if dest, lerr := os.Readlink(file); lerr == nil {
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(file), dest)
			}
			return dest, 0644, nil
		}
		return file, 0644, nil
	}
	if err != nil {
		return "", 0, err
	}
	fi, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, fi.Mode().Perm(), nil
}

// writeLines replaces file with lines. The content is written to a temp file alongside the
// real file and renamed into place, so the original is untouched if anything fails.
// Symlinks are followed and the existing file mode is kept.
func writeLines(file string, lines []string) error {
	target, mode, err := writeTarget(file)
	if err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(joinLines(lines)); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
