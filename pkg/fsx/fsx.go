// SPDX-License-Identifier: MPL-2.0

package fsx

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/axlekit/axle/pkg/diag"
)

// Open opens the named file for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.WrapPath(err, "open file", path)
	}
	return f, nil
}

// Create creates or truncates the named file.
func Create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, diag.WrapPath(err, "create file", path)
	}
	return f, nil
}

// ReadFile reads the named file and returns its contents.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.WrapPath(err, "read file", path)
	}
	return data, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	return diag.WrapPath(os.WriteFile(path, data, perm), "write file", path)
}

// ReadDir reads the named directory and returns its entries sorted by name.
func ReadDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, diag.WrapPath(err, "read directory", path)
	}
	return entries, nil
}

// MkdirAll creates the named directory along with any missing parents.
// An already existing directory is not an error.
func MkdirAll(path string, perm os.FileMode) error {
	return diag.WrapPath(os.MkdirAll(path, perm), "create directory", path)
}

// Remove removes the named file or empty directory.
func Remove(path string) error {
	return diag.WrapPath(os.Remove(path), "remove", path)
}

// RemoveAll removes the named path and any children it contains.
func RemoveAll(path string) error {
	return diag.WrapPath(os.RemoveAll(path), "remove", path)
}

// Rename renames (moves) src to dst.
func Rename(src, dst string) error {
	return diag.WrapPath2(os.Rename(src, dst), "rename", src, dst)
}

// Stat returns the FileInfo for the named file.
func Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, diag.WrapPath(err, "stat", path)
	}
	return info, nil
}

// Exists reports whether the named path exists. Errors other than
// fs.ErrNotExist are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, diag.WrapPath(err, "stat", path)
	}
}

// Copy copies the contents and permissions of src to dst, creating or
// truncating dst. It returns the number of bytes copied.
func Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, diag.WrapPath2(err, "copy", src, dst)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, diag.WrapPath2(err, "copy", src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, diag.WrapPath2(err, "copy", src, dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, diag.WrapPath2(err, "copy", src, dst)
	}
	return n, diag.WrapPath2(out.Close(), "copy", src, dst)
}

// ExistOK converts an "already exists" error to nil and passes everything
// else through.
func ExistOK(err error) error {
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

// MissingOK converts a "not found" error to nil and passes everything else
// through.
func MissingOK(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
