//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"fmt"
)

// NetworkError is returned when a texture could not be retrieved: malformed
// URL, unreachable host, broken transfer or non-2xx response.
type NetworkError struct {
	URL string
	// StatusCode is the HTTP status returned by the server, or 0 if no
	// response was received.
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FileSystemError is returned when the texture directory or a texture file
// could not be created or written.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
