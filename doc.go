//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package texturefetch downloads the fixed set of planet textures used by the
// overview scene into a local directory.
//
// The downloads are sequential and fail-fast: the first error aborts the run
// and files already written are left in place.
package texturefetch
