//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.bug.st/texturefetch"
)

func newCommand(fetcher *texturefetch.Fetcher) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "fetch-textures",
		Short:         "Download the planet textures into a local directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		RunE: func(c *cobra.Command, args []string) error {
			fetcher.Out = c.OutOrStdout()
			return fetcher.Run(c.Context())
		},
	}
	cmd.Flags().StringVar(&fetcher.Dir, "dir", fetcher.Dir, "destination directory")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func main() {
	if err := newCommand(texturefetch.NewFetcher()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
