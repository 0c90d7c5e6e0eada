// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about conversions and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which keeps the clock
// core free of any logging or metrics framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetClockHooks(&myClockHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Clock().OnConvertStart(ctx, rows, nanos)
//	// ... convert ...
//	observability.Clock().OnConvertComplete(ctx, rows, remainder, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Clock Hooks
// =============================================================================

// ClockHooks receives events from time-to-lamp conversions.
type ClockHooks interface {
	// OnConvertStart is called once validation has passed.
	OnConvertStart(ctx context.Context, rows int, nanos int64)

	// OnConvertComplete reports the nanoseconds no row could represent.
	OnConvertComplete(ctx context.Context, rows int, remainder int64, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the presentation layer.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopClockHooks is a no-op implementation of ClockHooks.
type NoopClockHooks struct{}

func (NoopClockHooks) OnConvertStart(context.Context, int, int64)                   {}
func (NoopClockHooks) OnConvertComplete(context.Context, int, int64, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	clockHooks  ClockHooks  = NoopClockHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetClockHooks registers custom clock hooks.
// This should be called once at application startup before any conversion.
func SetClockHooks(h ClockHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		clockHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Clock returns the registered clock hooks.
func Clock() ClockHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return clockHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	clockHooks = NoopClockHooks{}
	renderHooks = NoopRenderHooks{}
}
