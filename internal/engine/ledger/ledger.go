// Package ledger keeps labelled statistics text for display.
package ledger

import (
	"sync"

	"go.trai.ch/starview/internal/core/domain"
)

// Ledger is an ordered key to text map. A key keeps the position of its first insertion;
// later writes replace the text only.
type Ledger struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{values: make(map[string]string)}
}

// Put stores text under key.
func (l *Ledger) Put(key, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.values[key]; !ok {
		l.order = append(l.order, key)
	}
	l.values[key] = text
}

// Get returns the text stored under key.
func (l *Ledger) Get(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	text, ok := l.values[key]
	return text, ok
}

// Entries returns a snapshot of all entries in insertion order.
func (l *Ledger) Entries() []domain.LedgerEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]domain.LedgerEntry, len(l.order))
	for i, key := range l.order {
		entries[i] = domain.LedgerEntry{Key: key, Text: l.values[key]}
	}
	return entries
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// Clear drops every entry.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.order = nil
	clear(l.values)
}

// RecordBinningResult stores the mean source series and the ANOVA text of a binning result.
func (l *Ledger) RecordBinningResult(result domain.BinningResult) {
	l.Put(domain.MeanSourceSeriesKey, result.Series)
	l.Put(domain.AnovaKey, result.Anova.Text())
}

// BinningListener returns the listener that records binning results.
func (l *Ledger) BinningListener() func(domain.BinningResult) {
	return l.RecordBinningResult
}

// NewDatasetListener returns the listener that clears the ledger on a dataset load,
// so statistics of the previous dataset are never shown against the new one.
func (l *Ledger) NewDatasetListener() func(domain.NewDatasetMessage) {
	return func(domain.NewDatasetMessage) {
		l.Clear()
	}
}
