// Package nfc abstracts the optional badge-scanning capability behind one
// fixed interface. When no hardware provider is registered every caller sees
// the Unavailable stub and falls back to manual selection; nothing in the
// core flows depends on NFC being present.
package nfc

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned by Scan when the capability is absent.
var ErrUnavailable = errors.New("nfc: not available")

// Provider is the badge-scanning capability.
type Provider interface {
	// Available reports whether the device can scan tags right now.
	Available() bool

	// Scan blocks until a tag is read, the context ends, or Cancel is
	// called, and returns the tag serial.
	Scan(ctx context.Context) (string, error)

	// Cancel aborts an in-flight Scan, best effort.
	Cancel()
}

// Unavailable is the stub selected when no hardware provider exists.
type Unavailable struct{}

// Available implements Provider.
func (Unavailable) Available() bool { return false }

// Scan implements Provider.
func (Unavailable) Scan(context.Context) (string, error) { return "", ErrUnavailable }

// Cancel implements Provider.
func (Unavailable) Cancel() {}

var active Provider = Unavailable{}

// Register installs a hardware provider at startup. Passing nil restores the
// stub.
func Register(p Provider) {
	if p == nil {
		active = Unavailable{}
		return
	}
	active = p
}

// Active returns the current provider, never nil.
func Active() Provider {
	return active
}

// ScanWithTimeout scans with an upper bound on the wait.
func ScanWithTimeout(ctx context.Context, p Provider, timeout time.Duration) (string, error) {
	if !p.Available() {
		return "", ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Scan(ctx)
}
