//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"net/http"
	"sync"
	"time"
)

// Config contains the configuration for the downloader
type Config struct {
	// HttpClient to use to perform HTTP requests. If nil, http.DefaultClient
	// is used.
	HttpClient *http.Client
	// ExtraHeaders to add to the HTTP requests.
	ExtraHeaders map[string]string
	// AcceptFunc is an optional function that will be called with the
	// response of the GET request, before the output file is opened.
	// If the function returns an error, the download is aborted.
	AcceptFunc func(resp *http.Response) error
	// DoNotErrorOnNon2xxStatusCode set to true to not return an error
	// if the server returns a non-2xx status code.
	DoNotErrorOnNon2xxStatusCode bool
	// InactivityTimeout is the duration after which, if no data is received,
	// the download is aborted. If set to 0, no timeout is applied.
	InactivityTimeout time.Duration
}

var defaultConfig Config = Config{}
var defaultConfigLock sync.Mutex

// SetDefaultConfig sets the configuration that will be used by the Download
// function and by NewFetcher.
func SetDefaultConfig(newConfig Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	defaultConfig = newConfig
}

// GetDefaultConfig returns a copy of the default configuration. The default
// configuration can be changed using the SetDefaultConfig function.
func GetDefaultConfig() Config {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	return defaultConfig
}
