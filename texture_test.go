//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextures(t *testing.T) {
	list := Textures()
	require.Len(t, list, 2)
	require.Equal(t, "earth.jpg", list[0].Filename)
	require.Equal(t, "clouds.png", list[1].Filename)

	for _, entry := range list {
		u, err := url.Parse(entry.URL)
		require.NoError(t, err)
		require.Equal(t, "https", u.Scheme)
	}
}

func TestTexturesReturnsCopy(t *testing.T) {
	list := Textures()
	list[0].Filename = "changed"
	require.Equal(t, "earth.jpg", Textures()[0].Filename)
}
