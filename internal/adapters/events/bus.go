// Package events implements the lifecycle notifiers that connect loaders, the view cache and the stats ledger.
package events

import (
	"sync"

	"go.trai.ch/starview/internal/core/domain"
)

// Notifier delivers messages of one kind to its listeners.
// Delivery is synchronous, in registration order, on the caller's goroutine.
type Notifier[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
}

// AddListener registers fn. Listeners cannot be removed.
func (n *Notifier[T]) AddListener(fn func(T)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Notify calls every listener with msg.
func (n *Notifier[T]) Notify(msg T) {
	n.mu.RLock()
	listeners := make([]func(T), len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn(msg)
	}
}

// Len returns the number of registered listeners.
func (n *Notifier[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

// Bus groups the notifiers for the three lifecycle events.
type Bus struct {
	NewDataset  Notifier[domain.NewDatasetMessage]
	PhaseChange Notifier[domain.PhaseChangeMessage]
	Binning     Notifier[domain.BinningResult]
}

// NewBus creates a Bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}
