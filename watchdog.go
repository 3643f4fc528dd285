//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package texturefetch

import (
	"context"
	"os"
	"time"
)

// watchdog cancels its context when it is not kicked for longer than timeout.
// A zero timeout disables it, leaving only explicit cancellation.
type watchdog struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	timer   *time.Timer
	timeout time.Duration
}

func newWatchdog(parent context.Context, timeout time.Duration) (context.Context, watchdog) {
	ctx, cancel := context.WithCancelCause(parent)
	var timer *time.Timer
	if timeout > 0 {
		timer = time.AfterFunc(timeout, func() {
			cancel(os.ErrDeadlineExceeded)
		})
	}
	return ctx, watchdog{
		ctx:     ctx,
		cancel:  cancel,
		timer:   timer,
		timeout: timeout,
	}
}

// Kick postpones the timeout, must be called whenever data is received.
func (wd *watchdog) Kick() {
	if wd.timer != nil {
		wd.timer.Reset(wd.timeout)
	}
}

// Cancel stops the timer and releases the context.
func (wd *watchdog) Cancel() {
	if wd.timer != nil {
		wd.timer.Stop()
	}
	wd.cancel(nil)
}
