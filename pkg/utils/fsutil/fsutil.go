package fsutil

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
	}
	return nil
}

// WriteFileAtomic writes data to dir/name through a uniquely named temporary
// file and a rename, so an interrupted run never leaves a truncated file
// under its final name. Returns the path of the written file.
func WriteFileAtomic(dir, name string, data []byte) (string, error) {
	tmp := filepath.Join(dir, "."+uuid.NewString()+".part")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write temporary file", goerr.V("path", tmp))
	}

	dst := filepath.Join(dir, name)
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return "", goerr.Wrap(err, "failed to rename temporary file", goerr.V("path", dst))
	}
	return dst, nil
}
