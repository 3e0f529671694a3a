package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	filePerm = 0o600
	dirPerm  = 0o700
)

// readFile reads the file at path; ok is false when it does not exist.
func readFile(path string) (b []byte, ok bool, err error) {
	b, err = os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read keystore %s: %w", path, err)
	}
	return b, true, nil
}

// writeFile writes b to a temp sibling, syncs it, then renames it over path
// so readers see either the old or the new content.
func writeFile(path string, b []byte, mode os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create keystore dir: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp keystore: %w", err)
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp keystore: %w", err)
	}
	if err = f.Chmod(mode); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp keystore: %w", err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp keystore: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp keystore: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace keystore %s: %w", path, err)
	}
	return nil
}
