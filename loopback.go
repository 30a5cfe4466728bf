package socketcan

import (
	"sync"
)

// LoopbackBus is an in-memory CAN bus for tests and simulations. Endpoints
// opened from the same bus exchange frames without any kernel socket, so
// bus-level code can run on platforms without native SocketCAN.
type LoopbackBus struct {
	mu        sync.RWMutex
	closed    bool
	endpoints map[*loopEndpoint]struct{}
}

// NewLoopbackBus creates an empty loopback bus.
func NewLoopbackBus() *LoopbackBus {
	return &LoopbackBus{endpoints: make(map[*loopEndpoint]struct{})}
}

// Open attaches a new endpoint. Endpoints opened on a closed bus are
// already closed.
func (b *LoopbackBus) Open() Bus {
	ep := &loopEndpoint{
		bus:    b,
		ch:     make(chan Frame, 64),
		closed: make(chan struct{}),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		ep.dead = true
		close(ep.closed)
		return ep
	}
	b.endpoints[ep] = struct{}{}
	return ep
}

// Close closes the bus and detaches all endpoints.
func (b *LoopbackBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for ep := range b.endpoints {
		ep.closeLocked()
	}
	b.endpoints = nil
	return nil
}

// loopEndpoint delivers over ch and signals shutdown over closed. The
// delivery channel is never closed; a send racing Close must stay safe.
type loopEndpoint struct {
	bus    *LoopbackBus
	ch     chan Frame
	mu     sync.Mutex
	dead   bool
	closed chan struct{}
}

// Send validates the frame and broadcasts it to every other endpoint on
// the bus.
func (e *loopEndpoint) Send(frame Frame) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	dead := e.dead
	e.mu.Unlock()
	if dead {
		return ErrClosed
	}

	// Snapshot the peers so delivery happens outside the bus lock.
	e.bus.mu.RLock()
	if e.bus.closed {
		e.bus.mu.RUnlock()
		return ErrClosed
	}
	peers := make([]*loopEndpoint, 0, len(e.bus.endpoints))
	for ep := range e.bus.endpoints {
		if ep != e {
			peers = append(peers, ep)
		}
	}
	e.bus.mu.RUnlock()

	for _, p := range peers {
		select {
		case p.ch <- frame:
		case <-p.closed:
		}
	}
	return nil
}

// Receive waits for the next frame or ErrClosed.
func (e *loopEndpoint) Receive() (Frame, error) {
	select {
	case f := <-e.ch:
		return f, nil
	case <-e.closed:
		return Frame{}, ErrClosed
	}
}

// Close detaches the endpoint from the bus.
func (e *loopEndpoint) Close() error {
	e.bus.mu.Lock()
	e.closeLocked()
	e.bus.mu.Unlock()
	return nil
}

// closeLocked requires the bus lock.
func (e *loopEndpoint) closeLocked() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return
	}
	e.dead = true
	close(e.closed)
	if e.bus.endpoints != nil {
		delete(e.bus.endpoints, e)
	}
}
