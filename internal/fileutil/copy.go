// Package fileutil duplicates files byte for byte.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CopyFile duplicates src to dst, replacing any file already at dst. A fresh
// destination is cloned copy-on-write when the platform supports it.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source %q is a directory", src)
	}
	dstInfo, err := os.Stat(dst)
	switch {
	case err == nil:
		if dstInfo.IsDir() {
			return fmt.Errorf("destination %q is a directory", dst)
		}
		if os.SameFile(info, dstInfo) {
			return fmt.Errorf("source and destination are the same file: %q", dst)
		}
	case errors.Is(err, fs.ErrNotExist):
		if cloneFile(src, dst) == nil {
			return nil
		}
	default:
		return fmt.Errorf("stat destination: %w", err)
	}
	return streamCopy(src, dst, info.Mode().Perm())
}

func streamCopy(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close destination: %w", closeErr)
		}
	}()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %q to %q: %w", src, dst, err)
	}
	return nil
}
