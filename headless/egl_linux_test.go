//go:build linux

package headless

import (
	"errors"
	"testing"
)

func TestFailReleasesDisplay(t *testing.T) {
	h := &Headless{width: 4, height: 4}

	err := h.fail("eglInitialize")
	var eglErr *EGLError
	if !errors.As(err, &eglErr) {
		t.Fatalf("expected an *EGLError; got %T", err)
	}
	if eglErr.Op != "eglInitialize" {
		t.Fatalf("expected op eglInitialize; got %q", eglErr.Op)
	}
	if h.display != noDisplay() {
		t.Fatal("expected the display to be released after a failure")
	}

	// a second Shutdown on a released context is a no-op
	h.Shutdown()
}
