//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Fetcher downloads a list of textures into a directory
type Fetcher struct {
	// Dir is the destination directory, created if missing.
	Dir string
	// Entries are downloaded in order.
	Entries []TextureEntry
	// Config is used for every download.
	Config Config
	// Out receives the progress messages.
	Out io.Writer
}

// NewFetcher returns a Fetcher for the built-in textures, saving them in
// DefaultDir and reporting progress on standard output.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Dir:     DefaultDir,
		Entries: Textures(),
		Config:  GetDefaultConfig(),
		Out:     os.Stdout,
	}
}

// Run creates the destination directory and downloads every entry, one
// after the other. It stops at the first failure and returns it; files
// downloaded before the failure are kept.
func (f *Fetcher) Run(ctx context.Context) error {
	out := f.Out
	if out == nil {
		out = io.Discard
	}

	if err := EnsureDir(f.Dir); err != nil {
		return err
	}

	for _, entry := range f.Entries {
		fmt.Fprintf(out, "Downloading %s...\n", entry.Filename)
		if err := f.fetch(ctx, entry); err != nil {
			return err
		}
		fmt.Fprintf(out, "Downloaded %s\n", entry.Filename)
	}

	fmt.Fprintln(out, "All textures downloaded successfully!")
	return nil
}

func (f *Fetcher) fetch(ctx context.Context, entry TextureEntry) error {
	target := filepath.Join(f.Dir, entry.Filename)
	slog.Debug("Fetching texture", "url", entry.URL, "target", target)

	d, err := DownloadWithConfigAndContext(ctx, target, entry.URL, f.Config)
	if err != nil {
		return err
	}
	return d.Run()
}
