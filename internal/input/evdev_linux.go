//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// StartKeyboard watches Linux evdev devices under /dev/input/event* and sends
// arrow keys, Escape and F4 to sink until ctx is done.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartKeyboard(ctx context.Context, logger Logger, sink Sender) {
	if sink == nil {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found, keyboard disabled")
		}
		return
	}
	if logger != nil {
		logger.Infof("input", "watching %d evdev devices", len(paths))
	}

	for _, path := range paths {
		go readDevice(ctx, logger, path, tvSize, sink)
	}
}

func readDevice(ctx context.Context, logger Logger, path string, tvSize int, sink Sender) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			if logger != nil {
				logger.Errorf("input", "poll %s: %v", path, err)
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, raw := range decodeEvents(buf[:n], tvSize) {
			if ev, ok := translate(raw); ok {
				sink.Send(ev)
			}
		}
	}
}
