package networkd

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sys/unix"
)

// cancellation is checked between polls, so this bounds how long a
// Watch goroutine outlives its context.
const watchPollInterval = 200 // milliseconds

// Watch is the channel-shaped convenience over Monitor for callers
// without their own poll loop. It constructs a monitor for the given
// category and returns a channel that receives a signal whenever the
// observed state may have changed, starting with one immediate signal
// so callers can load initial state. Signals are level-triggered and
// coalesced: receipt means "re-query now", nothing more.
//
// The monitor is owned by the watch goroutine and released when ctx is
// done, at which point the channel closes.
func Watch(ctx context.Context, category Category, opts ...Option) (<-chan struct{}, error) {
	m, err := NewMonitor(category, opts...)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	logger := o.logger.With(slog.String("component", "watch"))

	out := make(chan struct{}, 1)
	out <- struct{}{}

	go func() {
		defer close(out)
		defer m.Close()

		fds := []unix.PollFd{{Fd: int32(m.Descriptor()), Events: m.Events()}}
		for {
			if ctx.Err() != nil {
				return
			}
			fds[0].Revents = 0
			n, err := unix.Poll(fds, watchPollInterval)
			if errors.Is(err, unix.EINTR) {
				continue
			}
			if err != nil {
				logger.Error("poll failed", slog.Any("error", err))
				return
			}
			if n == 0 {
				continue
			}
			if err := m.Flush(); err != nil {
				logger.Error("flush failed", slog.Any("error", err))
				return
			}
			select {
			case out <- struct{}{}:
			default:
				// A signal is already pending; coalesce.
			}
		}
	}()

	return out, nil
}
