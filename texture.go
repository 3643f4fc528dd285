//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

// DefaultDir is the directory, relative to the working directory, where
// textures are stored.
const DefaultDir = "textures"

// TextureEntry is a remote texture and the filename it is saved as.
type TextureEntry struct {
	Filename string
	URL      string
}

var textures = []TextureEntry{
	{
		Filename: "earth.jpg",
		URL:      "https://raw.githubusercontent.com/mrdoob/three.js/dev/examples/textures/planets/earth_atmos_2048.jpg",
	},
	{
		Filename: "clouds.png",
		URL:      "https://raw.githubusercontent.com/mrdoob/three.js/dev/examples/textures/planets/earth_clouds_1024.png",
	},
}

// Textures returns a copy of the textures to download, in download order.
func Textures() []TextureEntry {
	res := make([]TextureEntry, len(textures))
	copy(res, textures)
	return res
}
