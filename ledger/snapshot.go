package ledger

import (
	"github.com/decred/dcrsidechain/chainhash"
	"github.com/decred/dcrsidechain/wire"
)

// Snapshot is a read-only copy of the ledger's persisted state: the
// committed header chain in order, the full output store, and the
// unspent subset. The ledger core does not define an on-disk encoding;
// Snapshot exists for callers that want to persist state themselves
// between process restarts.
type Snapshot struct {
	BlockOrder []chainhash.BlockHash
	Headers    map[chainhash.BlockHash]wire.Header
	Outputs    map[wire.OutPoint]wire.Output
	Unspent    map[wire.OutPoint]struct{}
}

// Snapshot returns a deep copy of the ledger's current state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	order := make([]chainhash.BlockHash, len(l.blockOrder))
	copy(order, l.blockOrder)

	headers := make(map[chainhash.BlockHash]wire.Header, len(l.headers))
	for k, v := range l.headers {
		headers[k] = v
	}

	outputs := make(map[wire.OutPoint]wire.Output, len(l.outputs))
	for k, v := range l.outputs {
		outputs[k] = v
	}

	unspent := make(map[wire.OutPoint]struct{}, len(l.unspent))
	for k := range l.unspent {
		unspent[k] = struct{}{}
	}

	return Snapshot{
		BlockOrder: order,
		Headers:    headers,
		Outputs:    outputs,
		Unspent:    unspent,
	}
}
