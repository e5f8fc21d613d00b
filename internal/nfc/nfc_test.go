package nfc

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	serial string
	delay  time.Duration
}

func (f *fakeProvider) Available() bool { return true }

func (f *fakeProvider) Scan(ctx context.Context) (string, error) {
	select {
	case <-time.After(f.delay):
		return f.serial, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (f *fakeProvider) Cancel() {}

func TestUnavailableStub(t *testing.T) {
	var p Provider = Unavailable{}
	if p.Available() {
		t.Error("stub reports availability")
	}
	if _, err := p.Scan(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Scan() error = %v, expected ErrUnavailable", err)
	}
}

func TestRegisterAndRestore(t *testing.T) {
	defer Register(nil)

	hw := &fakeProvider{serial: "04AB"}
	Register(hw)
	if Active() != hw {
		t.Error("Active() did not return the registered provider")
	}

	Register(nil)
	if Active().Available() {
		t.Error("Register(nil) did not restore the stub")
	}
}

func TestScanWithTimeoutReturnsSerial(t *testing.T) {
	serial, err := ScanWithTimeout(context.Background(), &fakeProvider{serial: "04AB"}, time.Second)
	if err != nil {
		t.Fatalf("ScanWithTimeout() error = %v", err)
	}
	if serial != "04AB" {
		t.Errorf("serial = %q, expected 04AB", serial)
	}
}

func TestScanWithTimeoutExpires(t *testing.T) {
	_, err := ScanWithTimeout(context.Background(), &fakeProvider{serial: "04AB", delay: time.Second}, 10*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, expected deadline exceeded", err)
	}
}

func TestScanWithTimeoutUnavailable(t *testing.T) {
	_, err := ScanWithTimeout(context.Background(), Unavailable{}, time.Second)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, expected ErrUnavailable", err)
	}
}
