//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext wraps parent so that SIGINT or SIGTERM cancels it.
// Build workers stop taking pages once it fires, the pages left over are
// reported as failed and md2site exits 1.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
