package vfs

import (
	"io/fs"
	"syscall"
)

// NotFound reports a missing file the way the platform would: a PathError
// carrying ENOENT, so errors.Is(err, fs.ErrNotExist) holds for callers
// written against the real filesystem's error contract.
func NotFound(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: syscall.ENOENT}
}
