//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
)

// Downloader copies a single remote resource into a local file
type Downloader struct {
	URL           string
	File          string
	Done          chan struct{}
	Resp          *http.Response
	out           *os.File
	wd            watchdog
	completed     int64
	completedLock sync.Mutex
	size          int64
	err           error
}

// Close the download
func (d *Downloader) Close() error {
	defer d.wd.Cancel()
	err1 := d.out.Close()
	err2 := d.Resp.Body.Close()
	if err1 != nil {
		return &FileSystemError{Op: "close", Path: d.File, Err: err1}
	}
	if err2 != nil {
		return &NetworkError{URL: d.URL, Err: fmt.Errorf("closing input stream: %w", err2)}
	}
	return nil
}

// Size return the size of the download (or -1 if the server doesn't provide it)
func (d *Downloader) Size() int64 {
	return d.size
}

// Run performs the copy-loop and waits until the download completes.
// The Done channel is closed when the download is completed or an error occurs.
func (d *Downloader) Run() error {
	defer close(d.Done)

	in := d.Resp.Body
	buff := [4096]byte{}
	for {
		n, err := in.Read(buff[:])
		if n > 0 {
			d.wd.Kick()
			if _, werr := d.out.Write(buff[:n]); werr != nil {
				d.err = &FileSystemError{Op: "write", Path: d.File, Err: werr}
				break
			}
			d.completedLock.Lock()
			d.completed += int64(n)
			d.completedLock.Unlock()
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			if cause := context.Cause(d.wd.ctx); cause != nil && !errors.Is(cause, context.Canceled) {
				err = cause
			}
			d.err = &NetworkError{URL: d.URL, Err: err}
			break
		}
	}
	if err := d.Close(); err != nil && d.err == nil {
		d.err = err
	}
	slog.Debug("Download finished", "url", d.URL, "file", d.File, "bytes", d.Completed(), "error", d.err)
	return d.Error()
}

// Error returns the error during download or nil if no errors happened
func (d *Downloader) Error() error {
	return d.err
}

// Completed returns the bytes written so far
func (d *Downloader) Completed() int64 {
	d.completedLock.Lock()
	res := d.completed
	d.completedLock.Unlock()
	return res
}

// Download returns a downloader that will download the specified url
// in the specified file. An existing file is overwritten.
func Download(file string, reqURL string) (*Downloader, error) {
	return DownloadWithConfig(file, reqURL, GetDefaultConfig())
}

// DownloadWithConfig is like Download but uses the given configuration instead
// of the default one.
func DownloadWithConfig(file string, reqURL string, config Config) (*Downloader, error) {
	return DownloadWithConfigAndContext(context.Background(), file, reqURL, config)
}

// DownloadWithConfigAndContext performs the GET request for reqURL and opens
// the output file, truncating it if it already exists. The body is not read
// until Run is called.
// Request, transport and status failures are reported as *NetworkError,
// failures to open the output file as *FileSystemError.
func DownloadWithConfigAndContext(ctx context.Context, file string, reqURL string, config Config) (*Downloader, error) {
	client := config.HttpClient
	if client == nil {
		client = http.DefaultClient
	}

	ctx, wd := newWatchdog(ctx, config.InactivityTimeout)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		wd.Cancel()
		return nil, &NetworkError{URL: reqURL, Err: fmt.Errorf("setting up HTTP request: %w", err)}
	}
	for k, v := range config.ExtraHeaders {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			err = cause
		}
		wd.Cancel()
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	slog.Debug("Server responded", "url", reqURL, "status", resp.StatusCode, "size", resp.ContentLength)

	abort := func(err error) (*Downloader, error) {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		wd.Cancel()
		return nil, err
	}
	if !config.DoNotErrorOnNon2xxStatusCode && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return abort(&NetworkError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server returned %s", resp.Status),
		})
	}
	if config.AcceptFunc != nil {
		if err := config.AcceptFunc(resp); err != nil {
			return abort(err)
		}
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return abort(&FileSystemError{Op: "open", Path: file, Err: err})
	}

	return &Downloader{
		URL:  reqURL,
		File: file,
		Done: make(chan struct{}),
		Resp: resp,
		out:  f,
		wd:   wd,
		size: resp.ContentLength,
	}, nil
}
