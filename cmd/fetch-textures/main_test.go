//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/texturefetch"
)

func TestCommandDownloadsIntoDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("texture:" + r.URL.Path))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "out")
	fetcher := &texturefetch.Fetcher{
		Dir: texturefetch.DefaultDir,
		Entries: []texturefetch.TextureEntry{
			{Filename: "earth.jpg", URL: srv.URL + "/earth"},
		},
	}
	cmd := newCommand(fetcher)
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{"--dir", dir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "earth.jpg"))
	require.NoError(t, err)
	require.Equal(t, "texture:/earth", string(data))
	require.Equal(t, "Downloading earth.jpg...\nDownloaded earth.jpg\nAll textures downloaded successfully!\n", stdout.String())
}

func TestCommandRejectsArgs(t *testing.T) {
	cmd := newCommand(&texturefetch.Fetcher{Dir: t.TempDir()})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())
}

func TestCommandReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	fetcher := &texturefetch.Fetcher{
		Dir:     filepath.Join(t.TempDir(), "out"),
		Entries: []texturefetch.TextureEntry{{Filename: "earth.jpg", URL: srv.URL}},
	}
	cmd := newCommand(fetcher)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	var netErr *texturefetch.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, http.StatusNotFound, netErr.StatusCode)
}
