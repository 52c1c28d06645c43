//go:build windows

// Package stderr is a no-op on Windows, whose audio backend does not write to fd 2.
package stderr

import "go.uber.org/zap"

// Capture does nothing on Windows.
func Capture(_ *zap.Logger) (restore func(), err error) {
	return func() {}, nil
}
