// Package fsutil holds the file helpers shared by config saving and the
// export command.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// dirPerm is used for any parent directory WriteFileAtomic has to create.
const dirPerm = 0o700

// WriteFileAtomic replaces path with data. Missing parent directories are
// created. The data lands in a temp file next to path, is synced, and is
// renamed into place so readers never see a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndSync(tmp, data, perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := replace(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return syncDir(dir)
}

func writeAndSync(f *os.File, data []byte, perm os.FileMode) error {
	if err := f.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", f.Name(), err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", f.Name(), err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("fsync %s: %w", f.Name(), err)
	}
	return nil
}

// replace renames src over dst. Windows refuses to rename onto an existing
// file, so there dst is removed first.
func replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if runtime.GOOS == "windows" {
		if rmErr := os.Remove(dst); rmErr == nil {
			if err = os.Rename(src, dst); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("rename %s -> %s: %w", src, dst, err)
}

// BestEffortBackup copies the current contents of path to path+".bak".
// It reports whether a backup was written; a missing source is not an error.
func BestEffortBackup(path string, perm os.FileMode) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return WriteFileAtomic(path+".bak", data, perm) == nil
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return nil
	}
	defer f.Close()
	// Some platforms do not support fsync on directories.
	_ = f.Sync()
	return nil
}
