// Package dispatch serialises host document access through a single
// executor goroutine. Host applications require document mutations to run
// in their own execution context; callers on other goroutines hand their
// request over and wait. Exactly one request is in flight at a time.
package dispatch

import (
	"context"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
)

// Ensure Host implements the interface.
var _ driven.HostDocument = (*Host)(nil)

// request is the single-slot handoff between a caller and the executor.
type request struct {
	run    func() error
	result chan error
}

// Host wraps an inner HostDocument and funnels every call through one
// executor goroutine.
type Host struct {
	inner    driven.HostDocument
	requests chan request
	stop     chan struct{}
}

// Wrap starts the executor and returns the serialising host.
// Call Close when the host is no longer needed.
func Wrap(inner driven.HostDocument) *Host {
	h := &Host{
		inner:    inner,
		requests: make(chan request),
		stop:     make(chan struct{}),
	}
	go h.loop()
	return h
}

// Close stops the executor. Requests submitted after Close fail with
// context semantics: they block until their own ctx is done.
func (h *Host) Close() {
	close(h.stop)
}

func (h *Host) loop() {
	for {
		select {
		case req := <-h.requests:
			req.result <- req.run()
		case <-h.stop:
			return
		}
	}
}

// do hands fn to the executor and waits for its result. Cancellation is
// honoured while waiting to submit; once the executor picks the request
// up, the call completes in host context and the outcome is returned.
func (h *Host) do(ctx context.Context, fn func() error) error {
	req := request{run: fn, result: make(chan error, 1)}

	select {
	case h.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	return <-req.result
}

// ActiveSheet returns the active sheet, read in host context.
func (h *Host) ActiveSheet(ctx context.Context) (*domain.Sheet, error) {
	var sheet *domain.Sheet
	err := h.do(ctx, func() error {
		var err error
		sheet, err = h.inner.ActiveSheet(ctx)
		return err
	})
	return sheet, err
}

// Sheet returns a sheet by ID, read in host context.
func (h *Host) Sheet(ctx context.Context, id string) (*domain.Sheet, error) {
	var sheet *domain.Sheet
	err := h.do(ctx, func() error {
		var err error
		sheet, err = h.inner.Sheet(ctx, id)
		return err
	})
	return sheet, err
}

// SheetAttribute reads an attribute in host context.
func (h *Host) SheetAttribute(ctx context.Context, sheetID, name string) (string, error) {
	var value string
	err := h.do(ctx, func() error {
		var err error
		value, err = h.inner.SheetAttribute(ctx, sheetID, name)
		return err
	})
	return value, err
}

// RunTransaction executes the transaction in host context.
func (h *Host) RunTransaction(ctx context.Context, name string, fn func(tx driven.HostTransaction) error) error {
	return h.do(ctx, func() error {
		return h.inner.RunTransaction(ctx, name, fn)
	})
}
