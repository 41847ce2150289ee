package apiclient

import (
	"context"
	"sync"

	"github.com/wesleyorama2/apiclient/apierr"
)

// pendingCall is one live registry entry. Its identity (pointer) is what
// release checks, so a superseded call can never evict its successor.
type pendingCall struct {
	id     string
	cancel context.CancelCauseFunc
}

// pendingRequests maps caller-supplied request identifiers to the
// cancellation of the in-flight call. At most one live entry exists per
// identifier. All mutation is synchronous under the mutex; entries are
// removed on settlement via deferred release on every exit path.
type pendingRequests struct {
	mu    sync.Mutex
	calls map[string]*pendingCall
}

func newPendingRequests() *pendingRequests {
	return &pendingRequests{calls: make(map[string]*pendingCall)}
}

// register inserts a new entry under id and returns it. With
// cancelPrevious, any existing entry is canceled with a supersession
// reason and evicted first; without it, the prior entry is evicted but
// left running (it can no longer be canceled by id).
func (p *pendingRequests) register(id string, cancel context.CancelCauseFunc, cancelPrevious bool) *pendingCall {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prev, ok := p.calls[id]; ok && cancelPrevious {
		prev.cancel(apierr.Canceled(id, "superseded by a newer request"))
	}
	call := &pendingCall{id: id, cancel: cancel}
	p.calls[id] = call
	return call
}

// release removes the entry if and only if it still belongs to call.
func (p *pendingRequests) release(call *pendingCall) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur, ok := p.calls[call.id]; ok && cur == call {
		delete(p.calls, call.id)
	}
}

// cancel aborts the call registered under id with the given reason and
// evicts it. It reports whether an entry existed.
func (p *pendingRequests) cancel(id, reason string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	call, ok := p.calls[id]
	if !ok {
		return false
	}
	call.cancel(apierr.Canceled(id, reason))
	delete(p.calls, id)
	return true
}

// pending reports whether id currently has a live entry.
func (p *pendingRequests) pending(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.calls[id]
	return ok
}
