// fileutils.go
package fileutils

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// Readable reports whether the current process may read path.
func Readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// Writable reports whether the current process may write to path. Deleting
// or renaming a file requires write permission on its parent directory, not
// on the file itself.
func Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// IsCrossDevice reports whether err is an EXDEV rename failure. Renames
// across filesystems cannot be atomic; callers must fail instead of falling
// back to copy+delete.
func IsCrossDevice(err error) bool {
	if errors.Is(err, syscall.EXDEV) {
		return true
	}
	var le *os.LinkError
	return errors.As(err, &le) && errors.Is(le.Err, syscall.EXDEV)
}
