//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"errors"
	"io/fs"
	"os"
)

// EnsureDir makes sure that path exists and is a directory, creating it if
// missing. Parent directories are not created.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return &FileSystemError{Op: "ensure dir", Path: path, Err: errors.New("not a directory")}
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &FileSystemError{Op: "stat", Path: path, Err: err}
	}

	if err := os.Mkdir(path, 0755); err != nil {
		// Someone else may have created it in the meantime
		if errors.Is(err, fs.ErrExist) {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}
		return &FileSystemError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}
