//go:build !windows

// Package stderr captures output that C libraries (ALSA through the audio
// backend) write straight to file descriptor 2, so it lands in the log
// instead of on top of the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

var (
	mu      sync.Mutex
	started bool
)

// Capture redirects fd 2 to logger until the returned restore function is
// called. Each non-empty line is logged at warn level. Only one capture can
// be active; a second call returns a no-op restore.
func Capture(logger *zap.Logger) (restore func(), err error) {
	mu.Lock()
	defer mu.Unlock()
	if started {
		return func() {}, nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}
	started = true

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				logger.Warn("stderr", zap.String("line", line))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()

			_ = syscall.Dup2(orig, int(os.Stderr.Fd()))
			_ = syscall.Close(orig)
			w.Close()
			<-done
			r.Close()
			started = false
		})
	}, nil
}
