package apiclient

import (
	"context"
	"sync"

	"github.com/wesleyorama2/apiclient/apierr"
)

// ErrorHandler is one link in the client's chain of responsibility for
// failure reporting. CanHandle is the predicate; Handle is the action.
//
// Handle's boolean is a control contract, not a success flag: returning
// true stops the chain (no further handlers run and the default message is
// not shown), returning false passes the error on.
type ErrorHandler interface {
	CanHandle(err *apierr.Error) bool
	Handle(ctx context.Context, err *apierr.Error) bool
}

// NewErrorHandler builds an ErrorHandler from two functions. A nil
// canHandle matches every error.
func NewErrorHandler(canHandle func(*apierr.Error) bool, handle func(context.Context, *apierr.Error) bool) ErrorHandler {
	return &funcHandler{canHandle: canHandle, handle: handle}
}

type funcHandler struct {
	canHandle func(*apierr.Error) bool
	handle    func(context.Context, *apierr.Error) bool
}

func (h *funcHandler) CanHandle(err *apierr.Error) bool {
	if h.canHandle == nil {
		return true
	}
	return h.canHandle(err)
}

func (h *funcHandler) Handle(ctx context.Context, err *apierr.Error) bool {
	if h.handle == nil {
		return false
	}
	return h.handle(ctx, err)
}

// handlerChain dispatches normalized errors to registered handlers in
// registration order, falling back to the configured message handler.
// One chain is owned by one Client and never shared.
type handlerChain struct {
	mu             sync.Mutex
	entries        []*handlerEntry
	showMessage    bool
	messageHandler func(string)
}

// handlerEntry wraps a handler so that registering the same ErrorHandler
// value twice yields two independently removable registrations.
type handlerEntry struct {
	handler ErrorHandler
}

func newHandlerChain(showMessage bool, messageHandler func(string)) *handlerChain {
	return &handlerChain{
		showMessage:    showMessage,
		messageHandler: messageHandler,
	}
}

// register appends the handler and returns its unregister closure. The
// closure removes exactly this registration, is idempotent, and is a no-op
// once the registration is gone.
func (c *handlerChain) register(h ErrorHandler) func() {
	entry := &handlerEntry{handler: h}
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, e := range c.entries {
			if e == entry {
				c.entries = append(c.entries[:i], c.entries[i+1:]...)
				return
			}
		}
	}
}

// updateConfig swaps the default-message flag and, when non-nil, the
// message handler. Registered handlers are untouched.
func (c *handlerChain) updateConfig(showMessage bool, messageHandler func(string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showMessage = showMessage
	if messageHandler != nil {
		c.messageHandler = messageHandler
	}
}

// dispatch routes err through the chain. The suppress flag (per-call
// hideErrorTip) takes precedence over everything: nothing runs at all.
// Otherwise handlers run in registration order until one claims the error
// by returning true; if none does and showMessage is set, the message
// handler reports err.Message.
func (c *handlerChain) dispatch(ctx context.Context, err *apierr.Error, suppress bool) {
	if suppress || err == nil {
		return
	}

	// Snapshot under the lock; handlers run without it so they may
	// register or unregister freely.
	c.mu.Lock()
	handlers := make([]ErrorHandler, len(c.entries))
	for i, e := range c.entries {
		handlers[i] = e.handler
	}
	show := c.showMessage
	report := c.messageHandler
	c.mu.Unlock()

	for _, h := range handlers {
		if !h.CanHandle(err) {
			continue
		}
		if h.Handle(ctx, err) {
			return
		}
	}
	if show && report != nil {
		report(err.Message)
	}
}
