// Package ledger implements the sidechain's mutable state machine:
// the committed header chain, the output store, and the unspent
// subset, along with the operations that connect and disconnect both
// sidechain blocks and main-chain peg events against that state.
package ledger

import (
	"sync"

	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/rules"
	"github.com/decred/dcrsidechain/wire"
)

// Ledger owns the chain's mutable state. The zero value is not usable;
// construct one with New. A single RWMutex guards all four state
// components: connect/disconnect operations take the write lock and
// run to completion synchronously (no suspension points), matching the
// single-threaded-with-respect-to-mutable-state contract; read-only
// operations take the read lock and may run concurrently with one
// another as long as no writer holds it.
type Ledger struct {
	mu sync.RWMutex

	blockOrder []chainhash.BlockHash
	headers    map[chainhash.BlockHash]wire.Header
	outputs    map[wire.OutPoint]wire.Output
	unspent    map[wire.OutPoint]struct{}

	// hook, when non-nil, runs ahead of the regular validator for
	// every transaction, per rules.Hook.
	hook rules.Hook
}

// New returns an empty Ledger. hook may be nil.
func New(hook rules.Hook) *Ledger {
	return &Ledger{
		headers: make(map[chainhash.BlockHash]wire.Header),
		outputs: make(map[wire.OutPoint]wire.Output),
		unspent: make(map[wire.OutPoint]struct{}),
		hook:    hook,
	}
}

// BestBlockHash returns the hash of the most recently connected block,
// or the zero hash if the ledger is empty.
func (l *Ledger) BestBlockHash() chainhash.BlockHash {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bestBlockHashLocked()
}

func (l *Ledger) bestBlockHashLocked() chainhash.BlockHash {
	if len(l.blockOrder) == 0 {
		return chainhash.BlockHash(chainhash.ZeroHash)
	}
	return l.blockOrder[len(l.blockOrder)-1]
}

// resolve looks up op in the committed state, distinguishing a never-seen
// outpoint from a known-but-spent one. Caller must hold at least the
// read lock.
func (l *Ledger) resolve(op wire.OutPoint) (wire.Output, error) {
	out, ok := l.outputs[op]
	if !ok {
		return wire.Output{}, &OutputDoesNotExistError{OutPoint: op}
	}
	if _, unspent := l.unspent[op]; !unspent {
		return wire.Output{}, &OutputSpentError{OutPoint: op}
	}
	return out, nil
}

// GetFee resolves tx's inputs and returns value_in - value_out. It
// reports an error (rather than an "unknown" sentinel value, since Go
// has typed errors to spend) if any input fails to resolve.
func (l *Ledger) GetFee(tx wire.Transaction) (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	spent := make([]wire.Output, len(tx.Inputs))
	for i, op := range tx.Inputs {
		out, err := l.resolve(op)
		if err != nil {
			return 0, err
		}
		spent[i] = out
	}

	var valueIn, valueOut uint64
	for _, out := range spent {
		valueIn += out.GetValue()
	}
	for _, out := range tx.Outputs {
		valueOut += out.GetValue()
	}
	if valueIn < valueOut {
		return 0, &rules.ValueInLessThanValueOutError{ValueIn: valueIn, ValueOut: valueOut}
	}
	return valueIn - valueOut, nil
}
