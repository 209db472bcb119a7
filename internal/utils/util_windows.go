//go:build windows

package utils

import (
	"bytes"
	"os"
	"path/filepath"
)

func convertToNativeLineEndings(b []byte) []byte {
	if len(b) == 0 {
		return b
	}
	return bytes.ReplaceAll(b, []byte{'\n'}, []byte{'\r', '\n'})
}

func atomicWriteFile(name string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmpName, perm)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, name)
}
